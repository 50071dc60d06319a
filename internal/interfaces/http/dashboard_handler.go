package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// DashboardHandler maneja el endpoint de analítica del dashboard.
type DashboardHandler struct {
	uc    *report.UseCase
	cache cache.ReportCache
	ttl   time.Duration
	log   *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *report.UseCase, c cache.ReportCache, ttl time.Duration, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, cache: c, ttl: ttl, log: log}
}

// GetAnalytics godoc
// @Summary      KPIs del mes en curso y tendencia de 7 días
// @Description  Ingresos y órdenes del mes, cajeros distintos activos
//               (campo legado active_customers), unidades vendidas y la serie
//               diaria de la última semana. Sin parámetros; las fechas se
//               resuelven en el servidor.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardAnalyticsDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/analytics [get]
func (h *DashboardHandler) GetAnalytics(c *fiber.Ctx) error {
	key := cache.Key("dashboard", today())
	if payload, ok := cacheGet(c, h.cache, h.log, key); ok {
		return c.Type("json").Send(payload)
	}

	analytics, err := h.uc.DashboardAnalytics(c.Context())
	if err != nil {
		return reportError(c, h.log, err)
	}
	return cacheRespond(c, h.cache, h.log, key, h.ttl, analytics)
}
