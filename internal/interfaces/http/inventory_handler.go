package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/muebleria-api/internal/application/dto"
	"github.com/invorya/muebleria-api/internal/application/inventory"
	"github.com/invorya/muebleria-api/internal/application/usecase"
	"github.com/invorya/muebleria-api/internal/domain"
)

// InventoryHandler maneja las consultas de inventario y el ajuste manual de existencias.
type InventoryHandler struct {
	reportUC *usecase.ReportUseCase
	movUC    *inventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(reportUC *usecase.ReportUseCase, movUC *inventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{reportUC: reportUC, movUC: movUC}
}

// List godoc
// @Summary      Listar inventario con datos del producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.reportUC.ListInventory(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Obtener inventario de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/product/{productId} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	out, err := h.reportUC.GetInventoryByProduct(c.UserContext(), productID)
	if err != nil {
		if err == domain.ErrInventoryNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado para el producto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Ajustar existencias a un valor absoluto
// @Description  Registra un movimiento compensatorio IN/OUT por la diferencia.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la fila de inventario"
// @Param        body  body  dto.SetQuantityRequest  true  "Cantidad nueva"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) SetQuantity(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity es requerido"})
	}
	userID := GetUserID(c)
	if err := h.movUC.SetQuantity(c.UserContext(), userID, id, *in.Quantity); err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity no puede ser negativa"})
		case domain.ErrInventoryNotFound, domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "existencias ajustadas"})
}

// TotalValue godoc
// @Summary      Valor total del inventario
// @Description  Suma de cantidad × precio sobre todos los productos.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TotalValueResponse
// @Router       /api/inventory/total-value [get]
func (h *InventoryHandler) TotalValue(c *fiber.Ctx) error {
	out, err := h.reportUC.TotalValue(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
