package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Query parameters ──────────────────────────────────────────────────────────

// ReportRequest parámetros comunes de los reportes por período.
type ReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy
}

// PeriodDTO rango de fechas resuelto del reporte.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ── Resumen de ventas ─────────────────────────────────────────────────────────

// TopProductDTO entrada del ranking de productos más vendidos.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	Name         string          `json:"name"` // "Unknown Product" si el producto ya no existe
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalUnits   int             `json:"total_units"`
}

// SalesSummaryDTO respuesta de GET /api/reports/sales.
// Solo las ventas completed participan en los totales.
type SalesSummaryDTO struct {
	Period             PeriodDTO       `json:"period"`
	TotalSales         decimal.Decimal `json:"total_sales"`
	TotalTransactions  int             `json:"total_transactions"`
	AverageTransaction decimal.Decimal `json:"average_transaction"` // 0 si no hubo ventas
	TopProducts        []TopProductDTO `json:"top_products"`        // máx 10
}

// ── Inventario ────────────────────────────────────────────────────────────────

// LowStockProductDTO producto en o bajo su punto de reorden.
type LowStockProductDTO struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Current   int    `json:"current"`
	Minimum   int    `json:"minimum"`
	Category  string `json:"category"` // "Uncategorized" si no tiene
}

// InventoryOverviewDTO respuesta de GET /api/reports/inventory.
type InventoryOverviewDTO struct {
	TotalProducts    int                  `json:"total_products"` // solo activos
	LowStockCount    int                  `json:"low_stock_count"`
	OutOfStockCount  int                  `json:"out_of_stock_count"`
	TotalValue       decimal.Decimal      `json:"total_value"` // Σ precio × stock
	LowStockProducts []LowStockProductDTO `json:"low_stock_products"` // top 10 por urgencia
}

// ── Actividad ─────────────────────────────────────────────────────────────────

// TransactionSummaryDTO fila de un listado de actividad reciente. Incluye
// pending y refunded; esos estados no suman a ingresos pero sí aparecen aquí.
type TransactionSummaryDTO struct {
	ID           string          `json:"id"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"item_count"`
	OperatorName string          `json:"operator_name,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// OperatorSalesDTO respuesta de GET /api/reports/operators/:id.
type OperatorSalesDTO struct {
	OperatorID         string                  `json:"operator_id"`
	OperatorName       string                  `json:"operator_name"`
	TotalSales         decimal.Decimal         `json:"total_sales"`        // histórico completo del cajero
	TotalTransactions  int                     `json:"total_transactions"` // histórico completo del cajero
	TodaySales         decimal.Decimal         `json:"today_sales"`
	TodayTransactions  int                     `json:"today_transactions"`
	WeekSales          decimal.Decimal         `json:"week_sales"` // semana con inicio en domingo
	RecentTransactions []TransactionSummaryDTO `json:"recent_transactions"` // últimas 10
}

// DailyTransactionsDTO respuesta de GET /api/reports/daily.
// Los subconjuntos de hoy y de la semana se recalculan sobre el mismo
// conjunto ya consultado del período, sin ir de nuevo a la base de datos.
type DailyTransactionsDTO struct {
	Period             PeriodDTO               `json:"period"`
	TotalSales         decimal.Decimal         `json:"total_sales"`
	TotalTransactions  int                     `json:"total_transactions"`
	TodaySales         decimal.Decimal         `json:"today_sales"`
	TodayTransactions  int                     `json:"today_transactions"`
	WeekSales          decimal.Decimal         `json:"week_sales"`
	WeekTransactions   int                     `json:"week_transactions"`
	RecentTransactions []TransactionSummaryDTO `json:"recent_transactions"` // últimas 10, con nombre del cajero
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// TrendPointDTO un día de la tendencia semanal.
type TrendPointDTO struct {
	Date  string          `json:"date"`  // YYYY-MM-DD
	Label string          `json:"label"` // día de la semana corto: Mon, Tue, ...
	Total decimal.Decimal `json:"total"`
}

// DashboardAnalyticsDTO respuesta de GET /api/dashboard/analytics.
//
// ActiveCustomers cuenta cajeros distintos con actividad en el mes; el campo
// JSON conserva el nombre del sistema anterior aunque un operador no es un
// cliente (pendiente de aclaración con producto, ver DESIGN.md).
type DashboardAnalyticsDTO struct {
	MonthlyRevenue  decimal.Decimal `json:"monthly_revenue"`
	MonthlyOrders   int             `json:"monthly_orders"`
	ActiveCustomers int             `json:"active_customers"`
	UnitsSold       int             `json:"units_sold"`
	WeeklyTrend     []TrendPointDTO `json:"weekly_trend"` // siempre 7 puntos, hoy al final
	DateLabel       string          `json:"date_label"`   // ej: "Agosto 2026"
}
