package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/saep-api/internal/application/dto"
	"github.com/jhoicas/saep-api/internal/application/stock"
	"github.com/jhoicas/saep-api/internal/domain"
	"github.com/jhoicas/saep-api/internal/domain/entity"
	"github.com/jhoicas/saep-api/internal/domain/repository"
	"github.com/jhoicas/saep-api/pkg/validate"
)

// MovementHandler maneja el registro y la consulta de movimientos de stock.
// Los movimientos son append-only: no hay Update ni Delete.
type MovementHandler struct {
	ledger *stock.Ledger
	repo   repository.StockMovementRepository
}

// NewMovementHandler construye el handler.
func NewMovementHandler(ledger *stock.Ledger, repo repository.StockMovementRepository) *MovementHandler {
	return &MovementHandler{ledger: ledger, repo: repo}
}

// Record godoc
// @Summary      Registrar movimiento de stock
// @Description  Entrada (E) o salida (S) de un producto en un estoque. Valida y persiste en un paso; la respuesta incluye el stock resultante.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if fields := validate.Struct(in); fields != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos", Fields: fields})
	}
	movement, status, err := h.ledger.RecordMovement(c.UserContext(), stock.MovementInput{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		ClientID:    in.ClientID,
		Quantity:    in.Quantity,
		Type:        in.Type,
		MovedAt:     in.MovedAt,
	})
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code:    "VALIDATION",
				Message: "movimiento inválido",
				Fields:  map[string]string{verr.Field: verr.Message},
			})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto, estoque o cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RecordMovementResponse{
		MovementResponse: toMovementResponse(movement),
		CurrentStock:     status.CurrentQuantity,
		MinimumStock:     status.MinimumStock,
		BelowMinimum:     status.BelowMinimum,
	})
}

// GetByID godoc
// @Summary      Obtener movimiento por ID
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [get]
func (h *MovementHandler) GetByID(c *fiber.Ctx) error {
	movement, err := h.repo.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if movement == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
	}
	out := toMovementResponse(movement)
	return c.JSON(out)
}

// List godoc
// @Summary      Listar movimientos de stock
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        limit       query  int     false  "Límite"   default(20)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
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
	movements, err := h.repo.List(c.Query("product_id"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, toMovementResponse(m))
	}
	return c.JSON(dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	})
}

func toMovementResponse(m *entity.StockMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		WarehouseID: m.WarehouseID,
		ClientID:    m.ClientID,
		Quantity:    m.Quantity,
		Type:        m.Type,
		MovedAt:     m.MovedAt,
	}
}
