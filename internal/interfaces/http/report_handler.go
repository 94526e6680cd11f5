package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/application/reports"
)

// ReportHandler maneja el resumen financiero (protegido, solo admin).
type ReportHandler struct {
	uc *reports.SummaryUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.SummaryUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen financiero de un rango de fechas
// @Description  Ingresos, costo realizado, pérdidas por merma y ganancia, con
// @Description  desglose por método de pago y serie diaria.
// @Tags         reportes
// @Security     Bearer
// @Produce      json
// @Param        desde  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        hasta  query  string  false  "Fecha final YYYY-MM-DD (inclusiva)"
// @Success      200    {object}  dto.ReportSummaryDTO
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/reportes/resumen [get]
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.GetSummary(c.Context(), from, to)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
