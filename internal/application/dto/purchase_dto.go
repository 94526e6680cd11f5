package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest línea de la orden de compra.
type PurchaseItemRequest struct {
	ProductID     string          `json:"productId" validate:"required"`
	Nombre        string          `json:"nombre"`
	Cantidad      int64           `json:"cantidad" validate:"required,min=1"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
}

// CreatePurchaseRequest orden de compra propuesta.
type CreatePurchaseRequest struct {
	ProveedorID string                `json:"proveedorId" validate:"required"`
	Items       []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Total       decimal.Decimal       `json:"total"`
}

// PurchaseItemResponse línea de compra confirmada.
type PurchaseItemResponse struct {
	ProductID     string          `json:"productId"`
	Nombre        string          `json:"nombre"`
	Cantidad      int64           `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costoUnitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// PurchaseResponse compra confirmada.
type PurchaseResponse struct {
	ID              string                 `json:"id"`
	ProveedorID     string                 `json:"proveedorId"`
	ProveedorNombre string                 `json:"proveedorNombre"`
	Items           []PurchaseItemResponse `json:"items"`
	Total           decimal.Decimal        `json:"total"`
	Fecha           time.Time              `json:"fecha"`
}

// PurchaseListResponse listado paginado de compras.
type PurchaseListResponse struct {
	Items []PurchaseResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
