package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

const (
	recentListSize = 10 // transacciones en los listados de actividad
	lowStockTopN   = 10 // productos en el reporte de inventario
	trendDays      = 7  // días de la tendencia del dashboard
)

// UnknownOperatorLabel se usa en listados cuando el cajero de una venta ya
// no existe. Simétrico a UnknownProductLabel: el listado nunca falla por un
// nombre irresoluble.
const UnknownOperatorLabel = "Unknown Operator"

// UseCase ensambla los cinco reportes del back office a partir de las
// instantáneas que entregan los repositorios. Cada reporte es un pipeline
// lineal filtrar → agregar → rankear/serializar; no hay estado compartido
// entre llamadas, así que las invocaciones concurrentes no se coordinan.
//
// Los fallos de repositorio se propagan sin reintentos ni resultados
// parciales: un reporte se computa completo o falla completo.
type UseCase struct {
	txRepo       repository.TransactionRepository
	productRepo  repository.ProductRepository
	operatorRepo repository.OperatorRepository
	now          func() time.Time
}

// Option configura el UseCase en construcción.
type Option func(*UseCase)

// WithNow fija el reloj del motor (para tests con fecha de referencia fija).
func WithNow(now func() time.Time) Option {
	return func(uc *UseCase) { uc.now = now }
}

// NewUseCase construye el motor de reportes.
func NewUseCase(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	operatorRepo repository.OperatorRepository,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		txRepo:       txRepo,
		productRepo:  productRepo,
		operatorRepo: operatorRepo,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// ── Resumen de ventas ─────────────────────────────────────────────────────────

// SalesSummary genera el resumen de ventas del período: totales, promedio y
// Top-10 de productos por ingreso.
func (uc *UseCase) SalesSummary(ctx context.Context, req dto.ReportRequest) (*dto.SalesSummaryDTO, error) {
	w, err := uc.parsePeriod(req)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txRepo.QueryWindow(ctx, w.Start, w.End, entity.StatusCompleted, "")
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas del período: %w", err)
	}

	top := TopProducts(txns, DefaultTopN, uc.productNameLookup(ctx))

	return &dto.SalesSummaryDTO{
		Period:             periodDTO(w),
		TotalSales:         Sum(txns),
		TotalTransactions:  Count(txns),
		AverageTransaction: Average(txns),
		TopProducts:        topProductDTOs(top),
	}, nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryOverview genera el estado del inventario activo: conteos de stock
// bajo y agotado, valoración total y los 10 productos más urgentes.
func (uc *UseCase) InventoryOverview(ctx context.Context) (*dto.InventoryOverviewDTO, error) {
	snapshot, err := uc.productRepo.ActiveSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reportes: inventario: %w", err)
	}
	products := ActiveProducts(snapshot)

	low := LowStock(products)
	out := OutOfStock(products)

	topLow := low
	if len(topLow) > lowStockTopN {
		topLow = topLow[:lowStockTopN]
	}
	lowDTOs := make([]dto.LowStockProductDTO, 0, len(topLow))
	for _, item := range topLow {
		lowDTOs = append(lowDTOs, dto.LowStockProductDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			Current:   item.Current,
			Minimum:   item.Minimum,
			Category:  item.Category,
		})
	}

	return &dto.InventoryOverviewDTO{
		TotalProducts:    len(products),
		LowStockCount:    len(low),
		OutOfStockCount:  len(out),
		TotalValue:       InventoryValue(products),
		LowStockProducts: lowDTOs,
	}, nil
}

// ── Ventas por cajero ─────────────────────────────────────────────────────────

// OperatorSales genera el desempeño de un cajero: totales históricos, del día
// y de la semana (inicio domingo), más sus últimas 10 transacciones.
//
// La ventana del request se valida pero no acota los totales: el sistema
// anterior siempre reportó el histórico completo del cajero y este motor
// conserva esa semántica (decisión registrada en DESIGN.md).
func (uc *UseCase) OperatorSales(ctx context.Context, operatorID string, req dto.ReportRequest) (*dto.OperatorSalesDTO, error) {
	if _, err := uc.parsePeriod(req); err != nil {
		return nil, err
	}

	all, err := uc.txRepo.ListByOperator(ctx, operatorID)
	if err != nil {
		return nil, fmt.Errorf("reportes: ventas del cajero %s: %w", operatorID, err)
	}

	now := uc.now()
	completed := WithStatus(all, entity.StatusCompleted)
	today := InWindow(completed, Day(now))
	week := InWindow(completed, WeekToDate(now))

	name := UnknownOperatorLabel
	if op, opErr := uc.operatorRepo.GetByID(ctx, operatorID); opErr == nil && op != nil {
		name = op.Name
	}

	recent := recentTransactions(all, recentListSize)
	recentDTOs := make([]dto.TransactionSummaryDTO, 0, len(recent))
	for _, tx := range recent {
		recentDTOs = append(recentDTOs, dto.TransactionSummaryDTO{
			ID:        tx.ID,
			Total:     tx.Total,
			Status:    tx.Status,
			ItemCount: tx.UnitCount(),
			CreatedAt: tx.CreatedAt,
		})
	}

	return &dto.OperatorSalesDTO{
		OperatorID:         operatorID,
		OperatorName:       name,
		TotalSales:         Sum(completed),
		TotalTransactions:  Count(completed),
		TodaySales:         Sum(today),
		TodayTransactions:  Count(today),
		WeekSales:          Sum(week),
		RecentTransactions: recentDTOs,
	}, nil
}

// ── Transacciones diarias ─────────────────────────────────────────────────────

// DailyTransactions genera la actividad del período. Los subconjuntos de hoy
// y de la semana se recalculan sobre el mismo conjunto ya traído de la
// ventana: una sola consulta, el resto es refiltrado puro.
func (uc *UseCase) DailyTransactions(ctx context.Context, req dto.ReportRequest) (*dto.DailyTransactionsDTO, error) {
	w, err := uc.parsePeriod(req)
	if err != nil {
		return nil, err
	}

	txns, err := uc.txRepo.QueryWindow(ctx, w.Start, w.End, "", "")
	if err != nil {
		return nil, fmt.Errorf("reportes: transacciones del período: %w", err)
	}

	now := uc.now()
	completed := WithStatus(txns, entity.StatusCompleted)
	today := InWindow(completed, Day(now))
	week := InWindow(completed, WeekToDate(now))

	recent := recentTransactions(txns, recentListSize)
	names := uc.operatorNames(ctx, recent)
	recentDTOs := make([]dto.TransactionSummaryDTO, 0, len(recent))
	for _, tx := range recent {
		recentDTOs = append(recentDTOs, dto.TransactionSummaryDTO{
			ID:           tx.ID,
			Total:        tx.Total,
			Status:       tx.Status,
			ItemCount:    tx.UnitCount(),
			OperatorName: names[tx.OperatorID],
			CreatedAt:    tx.CreatedAt,
		})
	}

	return &dto.DailyTransactionsDTO{
		Period:             periodDTO(w),
		TotalSales:         Sum(completed),
		TotalTransactions:  Count(completed),
		TodaySales:         Sum(today),
		TodayTransactions:  Count(today),
		WeekSales:          Sum(week),
		WeekTransactions:   Count(week),
		RecentTransactions: recentDTOs,
	}, nil
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// DashboardAnalytics genera los KPIs del mes en curso y la tendencia de los
// últimos 7 días. A inicio de mes la semana móvil cruza el límite del mes,
// así que el mes y la cola de 7 días se consultan por separado (en paralelo).
func (uc *UseCase) DashboardAnalytics(ctx context.Context) (*dto.DashboardAnalyticsDTO, error) {
	now := uc.now()
	month := MonthToDate(now)
	trailing := TrailingDays(now, trendDays)

	type queryResult struct {
		txns []entity.Transaction
		err  error
	}
	monthCh := make(chan queryResult, 1)
	trendCh := make(chan queryResult, 1)

	go func() {
		txns, err := uc.txRepo.QueryWindow(ctx, month.Start, month.End, "", "")
		monthCh <- queryResult{txns, err}
	}()
	go func() {
		txns, err := uc.txRepo.QueryWindow(ctx, trailing.Start, trailing.End, entity.StatusCompleted, "")
		trendCh <- queryResult{txns, err}
	}()

	monthRes := <-monthCh
	trendRes := <-trendCh

	if monthRes.err != nil {
		return nil, fmt.Errorf("dashboard: mes en curso: %w", monthRes.err)
	}
	if trendRes.err != nil {
		return nil, fmt.Errorf("dashboard: últimos %d días: %w", trendDays, trendRes.err)
	}

	completed := WithStatus(monthRes.txns, entity.StatusCompleted)
	series := DailySeries(trendRes.txns, trendDays, now)

	trend := make([]dto.TrendPointDTO, 0, len(series))
	for _, point := range series {
		trend = append(trend, dto.TrendPointDTO{
			Date:  point.Date.Format("2006-01-02"),
			Label: point.Label,
			Total: point.Total,
		})
	}

	return &dto.DashboardAnalyticsDTO{
		MonthlyRevenue:  Sum(completed),
		MonthlyOrders:   Count(completed),
		ActiveCustomers: DistinctOperators(monthRes.txns),
		UnitsSold:       UnitsSold(completed),
		WeeklyTrend:     trend,
		DateLabel:       monthLabel(now),
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// parsePeriod convierte los strings de fecha en una Window; aplica valores
// por defecto (primer día del mes – hoy) si están vacíos.
func (uc *UseCase) parsePeriod(req dto.ReportRequest) (Window, error) {
	now := uc.now()

	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if req.StartDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.StartDate, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("start_date inválido: %w: %s", domain.ErrInvalidInput, req.StartDate)
		}
		start = parsed
	}

	end := now
	if req.EndDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.EndDate, now.Location())
		if err != nil {
			return Window{}, fmt.Errorf("end_date inválido: %w: %s", domain.ErrInvalidInput, req.EndDate)
		}
		end = parsed
	}

	return NewWindow(start, end)
}

// productNameLookup resuelve nombres contra el catálogo. Un producto borrado
// no interrumpe el reporte: el ranking lo etiqueta como desconocido.
func (uc *UseCase) productNameLookup(ctx context.Context) ProductNameLookup {
	return func(productID string) (string, bool) {
		p, err := uc.productRepo.GetByID(ctx, productID)
		if err != nil || p == nil {
			return "", false
		}
		return p.Name, true
	}
}

// operatorNames resuelve una sola vez el nombre de cada cajero presente en el
// listado. Memoización acotada a esta computación; no sobrevive la llamada.
func (uc *UseCase) operatorNames(ctx context.Context, txns []entity.Transaction) map[string]string {
	names := make(map[string]string)
	for _, tx := range txns {
		if _, ok := names[tx.OperatorID]; ok {
			continue
		}
		name := UnknownOperatorLabel
		if op, err := uc.operatorRepo.GetByID(ctx, tx.OperatorID); err == nil && op != nil {
			name = op.Name
		}
		names[tx.OperatorID] = name
	}
	return names
}

// recentTransactions devuelve las n más recientes, de la más nueva a la más
// vieja, sin mutar la entrada.
func recentTransactions(txns []entity.Transaction, n int) []entity.Transaction {
	sorted := make([]entity.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func periodDTO(w Window) dto.PeriodDTO {
	return dto.PeriodDTO{
		StartDate: w.Start.Format("2006-01-02"),
		EndDate:   w.End.Format("2006-01-02"),
	}
}

func topProductDTOs(ranking []TopProduct) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, len(ranking))
	for _, p := range ranking {
		out = append(out, dto.TopProductDTO{
			ProductID:    p.ProductID,
			Name:         p.Name,
			TotalRevenue: p.TotalRevenue,
			TotalUnits:   p.TotalUnits,
		})
	}
	return out
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
