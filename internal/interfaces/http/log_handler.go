package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/saep-api/internal/application/dto"
	"github.com/jhoicas/saep-api/internal/application/usecase"
	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/pkg/validate"
)

// LogHandler maneja los registros de actividad. Los logs nunca se borran:
// se activan o desactivan con el toggle.
type LogHandler struct {
	uc *usecase.LogUseCase
}

// NewLogHandler construye el handler.
func NewLogHandler(uc *usecase.LogUseCase) *LogHandler {
	return &LogHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de actividad
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Success      201  {object}  dto.LogResponse
// @Router       /api/logs [post]
func (h *LogHandler) Create(c *fiber.Ctx) error {
	log, err := h.uc.Create()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(log)
}

// GetByID godoc
// @Summary      Obtener registro por ID
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del registro"
// @Success      200  {object}  dto.LogResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/logs/{id} [get]
func (h *LogHandler) GetByID(c *fiber.Ctx) error {
	log, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "log no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(log)
}

// Toggle godoc
// @Summary      Activar o desactivar un registro (el reemplazo del borrado)
// @Tags         logs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.ToggleLogRequest  true  "is_active"
// @Success      200   {object}  dto.LogResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/logs/{id}/activate [put]
func (h *LogHandler) Toggle(c *fiber.Ctx) error {
	var in dto.ToggleLogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	log, err := h.uc.Toggle(c.Params("id"), *in.IsActive)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "log no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(log)
}

// List godoc
// @Summary      Listar registros de actividad
// @Tags         logs
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200  {object}  dto.LogListResponse
// @Router       /api/logs [get]
func (h *LogHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}
