package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/scan"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC  *report.UseCase
	ScanRelay *scan.Relay
	Cache     cache.ReportCache
	CacheTTL  time.Duration
	Log       *logger.Logger
	JWTSecret string
}

// Router registra las rutas de la API. Todas las rutas de negocio van detrás
// del Bearer Token; la emisión de tokens es del servicio de auth externo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Reportes (protegido)
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC, deps.Cache, deps.CacheTTL, deps.Log)
	reports.Get("/sales", reportHandler.GetSales)
	reports.Get("/inventory", reportHandler.GetInventory)
	reports.Get("/operators/:id", reportHandler.GetOperator)
	reports.Get("/daily", reportHandler.GetDaily)

	// Dashboard (protegido)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.ReportUC, deps.Cache, deps.CacheTTL, deps.Log)
	dashboard.Get("/analytics", dashboardHandler.GetAnalytics)

	// Relay de escaneos (protegido)
	scans := api.Group("/scan")
	scanHandler := NewScanHandler(deps.ScanRelay)
	scans.Post("/", scanHandler.Publish)
	scans.Get("/:session", scanHandler.Poll)
	scans.Delete("/:session", scanHandler.Close)
}
