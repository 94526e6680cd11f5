package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/application/purchasing"
	"github.com/puntofresco/puntofresco-api/pkg/validator"
)

// PurchaseHandler maneja las peticiones HTTP de compras (protegido, solo admin).
type PurchaseHandler struct {
	process *purchasing.ProcessPurchaseUseCase
	query   *purchasing.PurchaseQueryUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(process *purchasing.ProcessPurchaseUseCase, query *purchasing.PurchaseQueryUseCase) *PurchaseHandler {
	return &PurchaseHandler{process: process, query: query}
}

// Create godoc
// @Summary      Registrar compra (entrada de mercancía)
// @Description  Aumenta stock y actualiza el costo de compra en una sola transacción.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Orden de compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}

	input := purchasing.PurchaseInputDTO{
		ProveedorID: in.ProveedorID,
		Total:       in.Total,
		Items:       make([]purchasing.PurchaseItemInput, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, purchasing.PurchaseItemInput{
			ProductID: item.ProductID,
			Cantidad:  item.Cantidad,
			UnitCost:  item.CostoUnitario,
		})
	}

	purchaseID, err := h.process.ProcessPurchase(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}
	out, err := h.query.GetByID(purchaseID)
	if err != nil || out == nil {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": purchaseID})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener compra por ID
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.GetByID(id)
	if err != nil {
		return errorResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compra no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar compras (historial)
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.PurchaseListResponse
// @Router       /api/compras [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.query.List(from, to, page.Limit, page.Offset)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
