package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/inventory"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// InventoryHandler expone el libro de movimientos de stock.
// POST es el ÚNICO camino para mover cantidad; no existen PUT ni DELETE sobre el libro.
type InventoryHandler struct {
	movements *inventory.RecordMovementUseCase
	ledger    *inventory.LedgerUseCase
}

func NewInventoryHandler(movements *inventory.RecordMovementUseCase, ledger *inventory.LedgerUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, ledger: ledger}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Description  IN suma, OUT resta; OUT con stock insuficiente → 409 y no escribe nada
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type (IN|OUT), quantity, notes"
// @Success      201   {object}  dto.RecordMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Summary(errs)})
	}
	out, err := h.movements.RecordMovement(c.Context(), GetUserID(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (libro completo)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.ledger.List(c.Context(), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Historial de movimientos de un producto
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.TransactionListResponse
// @Router       /api/products/{id}/transactions [get]
func (h *InventoryHandler) ListByProduct(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.ledger.ListByProduct(c.Context(), c.Params("id"), page)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
