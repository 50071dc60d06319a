package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/scan"
)

// ScanHandler maneja el relay de escaneos: el lector publica y la caja sondea.
type ScanHandler struct {
	relay *scan.Relay
}

// NewScanHandler construye el handler.
func NewScanHandler(relay *scan.Relay) *ScanHandler {
	return &ScanHandler{relay: relay}
}

// scanRequest cuerpo de POST /api/scan.
type scanRequest struct {
	SessionKey string `json:"session_key"`
	Code       string `json:"code"`
}

// Publish godoc
// @Summary      Publicar el último escaneo de una sesión
// @Description  Sobrescribe cualquier escaneo pendiente de la sesión: el
//               buzón tiene una sola posición y gana el más reciente.
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  scanRequest  true  "Sesión y código leído"
// @Success      202   {object}  scan.Scan
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) Publish(c *fiber.Ctx) error {
	var in scanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.SessionKey == "" || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "session_key y code son requeridos"})
	}

	s := scan.Scan{
		ID:         uuid.New().String(),
		SessionKey: in.SessionKey,
		Code:       in.Code,
		ScannedAt:  time.Now(),
	}
	h.relay.Publish(s)
	return c.Status(fiber.StatusAccepted).JSON(s)
}

// Poll godoc
// @Summary      Sondear el último escaneo no entregado de una sesión
// @Description  Entrega cada escaneo una sola vez: la segunda consulta sin
//               publicaciones nuevas responde 204.
// @Tags         scan
// @Security     Bearer
// @Produce      json
// @Param        session  path  string  true  "Clave de sesión de la caja"
// @Success      200  {object}  scan.Scan
// @Success      204  "sin escaneos nuevos"
// @Router       /api/scan/{session} [get]
func (h *ScanHandler) Poll(c *fiber.Ctx) error {
	session := c.Params("session")
	if session == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "sesión requerida"})
	}
	s, ok := h.relay.Poll(session)
	if !ok {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(s)
}

// Close godoc
// @Summary      Cerrar la sesión de escaneo
// @Tags         scan
// @Security     Bearer
// @Param        session  path  string  true  "Clave de sesión de la caja"
// @Success      204  "sesión eliminada"
// @Router       /api/scan/{session} [delete]
func (h *ScanHandler) Close(c *fiber.Ctx) error {
	h.relay.Drop(c.Params("session"))
	return c.SendStatus(fiber.StatusNoContent)
}
