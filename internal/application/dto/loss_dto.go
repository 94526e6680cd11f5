package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterLossRequest merma propuesta para un producto.
type RegisterLossRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Cantidad  int64  `json:"cantidad" validate:"required,min=1"`
	Motivo    string `json:"motivo" validate:"required"`
}

// LossResponse merma registrada.
type LossResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	ProductName   string          `json:"productName"`
	Cantidad      int64           `json:"cantidad"`
	Motivo        string          `json:"motivo"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	Fecha         time.Time       `json:"fecha"`
	RegistradoPor string          `json:"registradoPor"`
}

// LossListResponse listado paginado de mermas.
type LossListResponse struct {
	Items []LossResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
