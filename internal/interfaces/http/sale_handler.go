package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/application/pos"
	"github.com/puntofresco/puntofresco-api/pkg/validator"
)

// SaleHandler maneja las peticiones HTTP del punto de venta (protegido).
type SaleHandler struct {
	process *pos.ProcessSaleUseCase
	query   *pos.SaleQueryUseCase
	receipt *pos.ReceiptUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(process *pos.ProcessSaleUseCase, query *pos.SaleQueryUseCase, receipt *pos.ReceiptUseCase) *SaleHandler {
	return &SaleHandler{process: process, query: query, receipt: receipt}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Descuenta stock y registra la venta en una sola transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Carrito, total y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}

	// El vendedor es el usuario autenticado, nunca un campo del body.
	input := pos.SaleInputDTO{
		VendedorID: GetUserID(c),
		Total:      in.Total,
		MetodoPago: in.MetodoPago,
		Items:      make([]pos.SaleItemInput, 0, len(in.Items)),
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, pos.SaleItemInput{
			ProductID: item.ProductID,
			Nombre:    item.Nombre,
			Quantity:  item.Quantity,
			UnitPrice: item.PrecioVenta,
		})
	}

	saleID, err := h.process.ProcessSale(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}
	out, err := h.query.GetByID(saleID)
	if err != nil || out == nil {
		// La venta ya está confirmada; devolver al menos el ID.
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": saleID})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.query.GetByID(id)
	if err != nil {
		return errorResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venta no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas (historial)
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.SaleListResponse
// @Router       /api/ventas [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
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

// MySession godoc
// @Summary      Resumen del día del vendedor autenticado
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SellerSessionResponse
// @Router       /api/ventas/mi-sesion [get]
func (h *SaleHandler) MySession(c *fiber.Ctx) error {
	out, err := h.query.SellerSession(GetUserID(c), time.Now())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Recibo de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/recibo [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	pdfBytes, err := h.receipt.GenerateReceipt(c.Context(), id)
	if err != nil {
		return errorResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
