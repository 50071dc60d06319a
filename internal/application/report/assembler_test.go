package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTxRepo struct {
	txns []entity.Transaction
	err  error
}

func (f *fakeTxRepo) QueryWindow(_ context.Context, start, end time.Time, status, operatorID string) ([]entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Transaction, 0)
	for _, tx := range f.txns {
		if tx.CreatedAt.Before(start) || tx.CreatedAt.After(end) {
			continue
		}
		if status != "" && tx.Status != status {
			continue
		}
		if operatorID != "" && tx.OperatorID != operatorID {
			continue
		}
		out = append(out, tx)
	}
	return out, nil
}

func (f *fakeTxRepo) ListByOperator(_ context.Context, operatorID string) ([]entity.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Transaction, 0)
	for _, tx := range f.txns {
		if tx.OperatorID == operatorID {
			out = append(out, tx)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products []entity.Product
	err      error
}

func (f *fakeProductRepo) ActiveSnapshot(_ context.Context) ([]entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Product, 0)
	for _, p := range f.products {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeOperatorRepo struct {
	operators map[string]string // ID -> nombre
}

func (f *fakeOperatorRepo) GetByID(_ context.Context, id string) (*entity.Operator, error) {
	if name, ok := f.operators[id]; ok {
		return &entity.Operator{ID: id, Name: name}, nil
	}
	return nil, domain.ErrNotFound
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

// Reloj fijo de los tests: jueves 2026-08-20, 12:00 local.
var testNow = time.Date(2026, time.August, 20, 12, 0, 0, 0, time.Local)

func newTestUseCase(txns []entity.Transaction, products []entity.Product, operators map[string]string) *report.UseCase {
	return report.NewUseCase(
		&fakeTxRepo{txns: txns},
		&fakeProductRepo{products: products},
		&fakeOperatorRepo{operators: operators},
		report.WithNow(func() time.Time { return testNow }),
	)
}

func fullTx(id, operatorID string, total float64, status string, createdAt time.Time, items ...entity.TransactionItem) entity.Transaction {
	return entity.Transaction{
		ID:         id,
		OperatorID: operatorID,
		Total:      decimal.NewFromFloat(total),
		Status:     status,
		Items:      items,
		CreatedAt:  createdAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesSummary
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de referencia: completed 100 + pending 50 + completed 25 →
// totalSales 125, totalTransactions 2, promedio 62.5.
func TestSalesSummary_SoloCompletedSuma(t *testing.T) {
	txns := []entity.Transaction{
		fullTx("t1", "op-1", 100, entity.StatusCompleted, date(2026, time.August, 10)),
		fullTx("t2", "op-1", 50, entity.StatusPending, date(2026, time.August, 11)),
		fullTx("t3", "op-1", 25, entity.StatusCompleted, date(2026, time.August, 12)),
	}
	uc := newTestUseCase(txns, nil, nil)

	got, err := uc.SalesSummary(context.Background(), dto.ReportRequest{
		StartDate: "2026-08-01", EndDate: "2026-08-20",
	})
	require.NoError(t, err)

	assert.True(t, got.TotalSales.Equal(decimal.NewFromInt(125)))
	assert.Equal(t, 2, got.TotalTransactions)
	assert.True(t, got.AverageTransaction.Equal(decimal.NewFromFloat(62.5)))
}

func TestSalesSummary_TopProductsConNombres(t *testing.T) {
	txns := []entity.Transaction{
		fullTx("t1", "op-1", 30, entity.StatusCompleted, date(2026, time.August, 10),
			item("p1", 3, 10)),
		fullTx("t2", "op-1", 20, entity.StatusCompleted, date(2026, time.August, 11),
			item("p1", 2, 10), item("borrado", 1, 7)),
	}
	products := []entity.Product{{ID: "p1", Name: "Café molido", Active: true}}
	uc := newTestUseCase(txns, products, nil)

	got, err := uc.SalesSummary(context.Background(), dto.ReportRequest{
		StartDate: "2026-08-01", EndDate: "2026-08-20",
	})
	require.NoError(t, err)
	require.Len(t, got.TopProducts, 2)

	assert.Equal(t, "Café molido", got.TopProducts[0].Name)
	assert.Equal(t, 5, got.TopProducts[0].TotalUnits)
	assert.True(t, got.TopProducts[0].TotalRevenue.Equal(decimal.NewFromInt(50)))

	// El producto borrado del catálogo cuenta igual, con etiqueta de desconocido.
	assert.Equal(t, report.UnknownProductLabel, got.TopProducts[1].Name)
}

func TestSalesSummary_SinVentasTodoCero(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	got, err := uc.SalesSummary(context.Background(), dto.ReportRequest{
		StartDate: "2026-08-01", EndDate: "2026-08-20",
	})
	require.NoError(t, err)

	assert.True(t, got.TotalSales.IsZero())
	assert.Equal(t, 0, got.TotalTransactions)
	assert.True(t, got.AverageTransaction.IsZero())
	assert.Empty(t, got.TopProducts)
}

func TestSalesSummary_RangoInvalido(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.SalesSummary(context.Background(), dto.ReportRequest{
		StartDate: "2026-08-20", EndDate: "2026-08-01",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestSalesSummary_FechaMalFormada(t *testing.T) {
	uc := newTestUseCase(nil, nil, nil)

	_, err := uc.SalesSummary(context.Background(), dto.ReportRequest{StartDate: "20/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesSummary_ErrorDeRepositorioSePropaga(t *testing.T) {
	repoErr := errors.New("conexión caída")
	uc := report.NewUseCase(
		&fakeTxRepo{err: repoErr},
		&fakeProductRepo{},
		&fakeOperatorRepo{},
		report.WithNow(func() time.Time { return testNow }),
	)

	_, err := uc.SalesSummary(context.Background(), dto.ReportRequest{})
	assert.ErrorIs(t, err, repoErr)
}

// ──────────────────────────────────────────────────────────────────────────────
// InventoryOverview
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryOverview(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Name: "Harina", Price: decimal.NewFromInt(10), Stock: 5, MinStock: 10, Active: true},
		{ID: "p2", Name: "Azúcar", Price: decimal.NewFromInt(8), Stock: 0, MinStock: 5, Active: true},
		{ID: "p3", Name: "Sal", Price: decimal.NewFromInt(3), Stock: 50, MinStock: 10, Active: true},
		{ID: "p4", Name: "Retirado", Price: decimal.NewFromInt(99), Stock: 0, MinStock: 5, Active: false},
	}
	uc := newTestUseCase(nil, products, nil)

	got, err := uc.InventoryOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, got.TotalProducts) // solo activos
	assert.Equal(t, 2, got.LowStockCount)
	assert.Equal(t, 1, got.OutOfStockCount)
	// 10*5 + 8*0 + 3*50 = 200; el inactivo no vale.
	assert.True(t, got.TotalValue.Equal(decimal.NewFromInt(200)))

	require.Len(t, got.LowStockProducts, 2)
	assert.Equal(t, "Azúcar", got.LowStockProducts[0].Name) // el más urgente primero
	assert.Equal(t, report.UncategorizedLabel, got.LowStockProducts[0].Category)
}

func TestInventoryOverview_TruncaADiez(t *testing.T) {
	products := make([]entity.Product, 0, 15)
	for i := 0; i < 15; i++ {
		products = append(products, entity.Product{
			ID: string(rune('a' + i)), Name: "p", Stock: i, MinStock: 100, Active: true,
		})
	}
	uc := newTestUseCase(nil, products, nil)

	got, err := uc.InventoryOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, got.LowStockCount)
	assert.Len(t, got.LowStockProducts, 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// OperatorSales
// ──────────────────────────────────────────────────────────────────────────────

func TestOperatorSales(t *testing.T) {
	txns := []entity.Transaction{
		// Histórico viejo (fuera de la semana en curso).
		fullTx("t1", "op-1", 100, entity.StatusCompleted, date(2026, time.June, 1)),
		// Esta semana (inicio domingo 2026-08-16), antes de hoy.
		fullTx("t2", "op-1", 40, entity.StatusCompleted, date(2026, time.August, 17)),
		// Hoy.
		fullTx("t3", "op-1", 60, entity.StatusCompleted, time.Date(2026, time.August, 20, 9, 0, 0, 0, time.Local)),
		// Pendiente: aparece en actividad pero no suma.
		fullTx("t4", "op-1", 999, entity.StatusPending, time.Date(2026, time.August, 20, 10, 0, 0, 0, time.Local)),
		// Otro cajero: no cuenta.
		fullTx("t5", "op-2", 500, entity.StatusCompleted, date(2026, time.August, 20)),
	}
	uc := newTestUseCase(txns, nil, map[string]string{"op-1": "María"})

	got, err := uc.OperatorSales(context.Background(), "op-1", dto.ReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, "María", got.OperatorName)
	assert.True(t, got.TotalSales.Equal(decimal.NewFromInt(200))) // histórico completo
	assert.Equal(t, 3, got.TotalTransactions)
	assert.True(t, got.TodaySales.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 1, got.TodayTransactions)
	assert.True(t, got.WeekSales.Equal(decimal.NewFromInt(100))) // t2 + t3

	// Actividad: incluye la pendiente, de la más nueva a la más vieja.
	require.Len(t, got.RecentTransactions, 4)
	assert.Equal(t, "t4", got.RecentTransactions[0].ID)
	assert.Equal(t, entity.StatusPending, got.RecentTransactions[0].Status)
}

func TestOperatorSales_CajeroDesconocido(t *testing.T) {
	txns := []entity.Transaction{
		fullTx("t1", "op-borrado", 10, entity.StatusCompleted, date(2026, time.August, 10)),
	}
	uc := newTestUseCase(txns, nil, nil)

	got, err := uc.OperatorSales(context.Background(), "op-borrado", dto.ReportRequest{})
	require.NoError(t, err)
	assert.Equal(t, report.UnknownOperatorLabel, got.OperatorName)
	assert.True(t, got.TotalSales.Equal(decimal.NewFromInt(10)))
}

func TestOperatorSales_LimitaActividadADiez(t *testing.T) {
	txns := make([]entity.Transaction, 0, 14)
	for i := 0; i < 14; i++ {
		txns = append(txns, fullTx(
			string(rune('a'+i)), "op-1", 10, entity.StatusCompleted,
			date(2026, time.August, 1).Add(time.Duration(i)*time.Hour),
		))
	}
	uc := newTestUseCase(txns, nil, nil)

	got, err := uc.OperatorSales(context.Background(), "op-1", dto.ReportRequest{})
	require.NoError(t, err)
	assert.Len(t, got.RecentTransactions, 10)
	// La más reciente primero.
	assert.Equal(t, string(rune('a'+13)), got.RecentTransactions[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// DailyTransactions
// ──────────────────────────────────────────────────────────────────────────────

func TestDailyTransactions(t *testing.T) {
	txns := []entity.Transaction{
		fullTx("t1", "op-1", 100, entity.StatusCompleted, date(2026, time.August, 5),
			item("p1", 2, 50)),
		fullTx("t2", "op-2", 40, entity.StatusCompleted, date(2026, time.August, 18)), // esta semana
		fullTx("t3", "op-1", 60, entity.StatusCompleted, time.Date(2026, time.August, 20, 9, 0, 0, 0, time.Local)), // hoy
		fullTx("t4", "op-1", 999, entity.StatusRefunded, date(2026, time.August, 19)),
	}
	uc := newTestUseCase(txns, nil, map[string]string{"op-1": "María", "op-2": "Pedro"})

	got, err := uc.DailyTransactions(context.Background(), dto.ReportRequest{
		StartDate: "2026-08-01", EndDate: "2026-08-20",
	})
	require.NoError(t, err)

	assert.True(t, got.TotalSales.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 3, got.TotalTransactions)
	assert.True(t, got.TodaySales.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, 1, got.TodayTransactions)
	assert.True(t, got.WeekSales.Equal(decimal.NewFromInt(100))) // t2 + t3
	assert.Equal(t, 2, got.WeekTransactions)

	// Actividad con nombre del cajero; la devuelta también aparece.
	require.Len(t, got.RecentTransactions, 4)
	assert.Equal(t, "t3", got.RecentTransactions[0].ID)
	assert.Equal(t, "María", got.RecentTransactions[0].OperatorName)
	assert.Equal(t, 2, got.RecentTransactions[3].ItemCount)
}

func TestDailyTransactions_PeriodoPorDefectoMesEnCurso(t *testing.T) {
	txns := []entity.Transaction{
		fullTx("viejo", "op-1", 500, entity.StatusCompleted, date(2026, time.July, 15)),
		fullTx("nuevo", "op-1", 80, entity.StatusCompleted, date(2026, time.August, 10)),
	}
	uc := newTestUseCase(txns, nil, nil)

	got, err := uc.DailyTransactions(context.Background(), dto.ReportRequest{})
	require.NoError(t, err)

	assert.Equal(t, "2026-08-01", got.Period.StartDate)
	assert.Equal(t, "2026-08-20", got.Period.EndDate)
	assert.True(t, got.TotalSales.Equal(decimal.NewFromInt(80)))
}

// ──────────────────────────────────────────────────────────────────────────────
// DashboardAnalytics
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardAnalytics(t *testing.T) {
	txns := []entity.Transaction{
		// Mes en curso.
		fullTx("t1", "op-1", 100, entity.StatusCompleted, date(2026, time.August, 3),
			item("p1", 2, 50)),
		fullTx("t2", "op-2", 50, entity.StatusCompleted, date(2026, time.August, 15),
			item("p2", 1, 50)),
		// Pendiente del mes: el cajero cuenta como activo, el monto no suma.
		fullTx("t3", "op-3", 999, entity.StatusPending, date(2026, time.August, 16)),
		// Mes anterior: fuera de todo.
		fullTx("t4", "op-4", 700, entity.StatusCompleted, date(2026, time.July, 30)),
	}
	uc := newTestUseCase(txns, nil, nil)

	got, err := uc.DashboardAnalytics(context.Background())
	require.NoError(t, err)

	assert.True(t, got.MonthlyRevenue.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, 2, got.MonthlyOrders)
	assert.Equal(t, 3, got.ActiveCustomers) // op-1, op-2, op-3 (nombre legado)
	assert.Equal(t, 3, got.UnitsSold)
	assert.Equal(t, "Agosto 2026", got.DateLabel)

	require.Len(t, got.WeeklyTrend, 7)
	assert.Equal(t, "2026-08-20", got.WeeklyTrend[6].Date)
}

// La tendencia usa la cola de 7 días aunque cruce el mes: una venta del mes
// pasado dentro de la cola aparece en la serie pero no en los KPIs del mes.
func TestDashboardAnalytics_TendenciaCruzaMes(t *testing.T) {
	nowAtMonthStart := time.Date(2026, time.September, 2, 12, 0, 0, 0, time.Local)
	txns := []entity.Transaction{
		fullTx("t1", "op-1", 120, entity.StatusCompleted, date(2026, time.August, 30)),
		fullTx("t2", "op-1", 45, entity.StatusCompleted, date(2026, time.September, 1)),
	}
	uc := report.NewUseCase(
		&fakeTxRepo{txns: txns},
		&fakeProductRepo{},
		&fakeOperatorRepo{},
		report.WithNow(func() time.Time { return nowAtMonthStart }),
	)

	got, err := uc.DashboardAnalytics(context.Background())
	require.NoError(t, err)

	assert.True(t, got.MonthlyRevenue.Equal(decimal.NewFromInt(45)))
	assert.Equal(t, 1, got.MonthlyOrders)

	var trendTotal decimal.Decimal
	for _, point := range got.WeeklyTrend {
		trendTotal = trendTotal.Add(point.Total)
	}
	assert.True(t, trendTotal.Equal(decimal.NewFromInt(165)))
}
