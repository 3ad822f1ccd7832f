package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jortega/almacen-api/internal/application/dto"
	"github.com/jortega/almacen-api/internal/application/inventory"
	"github.com/jortega/almacen-api/internal/application/usecase"
)

// InventoryHandler maneja las peticiones HTTP de movimientos de inventario (protegido).
type InventoryHandler struct {
	register *inventory.RegisterMovementUseCase
	queries  *usecase.MovementQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(register *inventory.RegisterMovementUseCase, queries *usecase.MovementQueryUseCase) *InventoryHandler {
	return &InventoryHandler{register: register, queries: queries}
}

// List godoc
// @Summary      Listar movimientos de inventario con paginación
// @Tags         inventory-movements
// @Security     Bearer
// @Produce      json
// @Param        page_number  query  int  false  "Número de página"  default(1)
// @Param        page_size    query  int  false  "Tamaño de página (máx 50)"  default(10)
// @Success      200  {object}  dto.PaginatedResult[dto.MovementResponse]
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/v1/inventory-movements [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.queries.List(c.Context(), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByProduct godoc
// @Summary      Listar movimientos de un producto
// @Tags         inventory-movements
// @Security     Bearer
// @Produce      json
// @Param        productId  path  int  true  "ID del producto"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/v1/inventory-movements/product/{productId} [get]
func (h *InventoryHandler) GetByProduct(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil || productID <= 0 {
		return badRequest(c, "INVALID_ID", "productId debe ser un entero positivo")
	}
	out, err := h.queries.GetByProduct(int64(productID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento de inventario (entrada o salida)
// @Tags         inventory-movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "product_id, movement_type (Entry|Exit), quantity, reason"
// @Success      201   {object}  dto.CreateMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/inventory-movements [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	id, err := h.register.RegisterMovement(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateMovementResponse{
		ID:      id,
		Message: "movimiento registrado",
	})
}
