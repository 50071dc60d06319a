package http

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// ReportHandler maneja los endpoints de reportes del back office.
// Consulta la caché antes de computar; un fallo de caché degrada a
// recomputar y se registra, nunca interrumpe la respuesta.
type ReportHandler struct {
	uc    *report.UseCase
	cache cache.ReportCache
	ttl   time.Duration
	log   *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase, c cache.ReportCache, ttl time.Duration, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, cache: c, ttl: ttl, log: log}
}

// GetSales godoc
// @Summary      Resumen de ventas del período
// @Description  Totales, promedio por transacción y Top-10 de productos por ingreso.
//               Solo las ventas completed suman a los totales.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.SalesSummaryDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) GetSales(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}

	key := cache.Key("sales", req.StartDate, req.EndDate, today())
	if payload, ok := h.fromCache(c, key); ok {
		return c.Type("json").Send(payload)
	}

	summary, err := h.uc.SalesSummary(c.Context(), req)
	if err != nil {
		return reportError(c, h.log, err)
	}
	return h.respond(c, key, summary)
}

// GetInventory godoc
// @Summary      Estado del inventario activo
// @Description  Conteos de stock bajo y agotado, valoración total y los 10
//               productos más urgentes por reponer.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryOverviewDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) GetInventory(c *fiber.Ctx) error {
	key := cache.Key("inventory", today())
	if payload, ok := h.fromCache(c, key); ok {
		return c.Type("json").Send(payload)
	}

	overview, err := h.uc.InventoryOverview(c.Context())
	if err != nil {
		return reportError(c, h.log, err)
	}
	return h.respond(c, key, overview)
}

// GetOperator godoc
// @Summary      Desempeño de un cajero
// @Description  Totales históricos, del día y de la semana (inicio domingo),
//               más las últimas 10 transacciones del cajero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id          path   string  true   "ID del cajero"
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)."
// @Success      200  {object}  dto.OperatorSalesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/operators/{id} [get]
func (h *ReportHandler) GetOperator(c *fiber.Ctx) error {
	operatorID := c.Params("id")
	if operatorID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id de cajero requerido"})
	}
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}

	key := cache.Key("operator", operatorID, req.StartDate, req.EndDate, today())
	if payload, ok := h.fromCache(c, key); ok {
		return c.Type("json").Send(payload)
	}

	sales, err := h.uc.OperatorSales(c.Context(), operatorID, req)
	if err != nil {
		return reportError(c, h.log, err)
	}
	return h.respond(c, key, sales)
}

// GetDaily godoc
// @Summary      Actividad de transacciones del período
// @Description  Totales del período con subconjuntos de hoy y de la semana y
//               las últimas 10 transacciones con el nombre del cajero.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)."
// @Success      200  {object}  dto.DailyTransactionsDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) GetDaily(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}

	key := cache.Key("daily", req.StartDate, req.EndDate, today())
	if payload, ok := h.fromCache(c, key); ok {
		return c.Type("json").Send(payload)
	}

	daily, err := h.uc.DailyTransactions(c.Context(), req)
	if err != nil {
		return reportError(c, h.log, err)
	}
	return h.respond(c, key, daily)
}

// fromCache intenta servir desde la caché. Los errores de caché se registran
// y se tratan como miss.
func (h *ReportHandler) fromCache(c *fiber.Ctx, key string) ([]byte, bool) {
	return cacheGet(c, h.cache, h.log, key)
}

// respond serializa, guarda en caché y responde.
func (h *ReportHandler) respond(c *fiber.Ctx, key string, body any) error {
	return cacheRespond(c, h.cache, h.log, key, h.ttl, body)
}

func cacheGet(c *fiber.Ctx, rc cache.ReportCache, log *logger.Logger, key string) ([]byte, bool) {
	payload, found, err := rc.Get(c.Context(), key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("caché de reportes: fallo en Get")
		return nil, false
	}
	return payload, found
}

// cacheRespond serializa una sola vez para la caché y para la respuesta.
func cacheRespond(c *fiber.Ctx, rc cache.ReportCache, log *logger.Logger, key string, ttl time.Duration, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if err := rc.Set(c.Context(), key, payload, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("caché de reportes: fallo en Set")
	}
	return c.Type("json").Send(payload)
}

// reportError mapea errores del motor a códigos HTTP. Un rango inválido es
// error del cliente y no debe reintentarse sin corregir la entrada.
func reportError(c *fiber.Ctx, log *logger.Logger, err error) error {
	if errors.Is(err, domain.ErrInvalidRange) || errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	}
	log.Error().Err(err).Msg("reporte fallido")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func today() string {
	return time.Now().Format("2006-01-02")
}
