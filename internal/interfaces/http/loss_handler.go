package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/application/inventory"
	"github.com/puntofresco/puntofresco-api/pkg/validator"
)

// LossHandler maneja las peticiones HTTP de mermas (protegido).
type LossHandler struct {
	register *inventory.RegisterLossUseCase
	query    *inventory.LossQueryUseCase
}

// NewLossHandler construye el handler.
func NewLossHandler(register *inventory.RegisterLossUseCase, query *inventory.LossQueryUseCase) *LossHandler {
	return &LossHandler{register: register, query: query}
}

// Create godoc
// @Summary      Registrar merma
// @Description  Descuenta stock y registra la merma en una sola transacción.
// @Tags         mermas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterLossRequest  true  "Producto, cantidad y motivo"
// @Success      201
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mermas [post]
func (h *LossHandler) Create(c *fiber.Ctx) error {
	var in dto.RegisterLossRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validator.ValidateStruct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validator.Message(errs)})
	}

	err := h.register.RegisterLoss(c.Context(), inventory.LossInputDTO{
		ProductID:     in.ProductID,
		Cantidad:      in.Cantidad,
		Motivo:        in.Motivo,
		RegistradoPor: GetUserID(c),
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

// List godoc
// @Summary      Listar mermas (historial)
// @Tags         mermas
// @Security     Bearer
// @Produce      json
// @Param        desde   query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta   query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.LossListResponse
// @Router       /api/mermas [get]
func (h *LossHandler) List(c *fiber.Ctx) error {
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
