package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del carrito tal como la envía el punto de venta.
type SaleItemRequest struct {
	ProductID   string          `json:"productId" validate:"required"`
	Nombre      string          `json:"nombre"`
	Quantity    int64           `json:"quantity" validate:"required,min=1"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
}

// CreateSaleRequest venta propuesta. El total lo calcula el caller y no se
// recalcula en el servidor (comportamiento heredado del punto de venta).
type CreateSaleRequest struct {
	Items      []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total      decimal.Decimal   `json:"total"`
	MetodoPago string            `json:"metodoPago" validate:"required"`
}

// SaleItemResponse línea de venta confirmada.
type SaleItemResponse struct {
	ProductID   string          `json:"productId"`
	Nombre      string          `json:"nombre"`
	Quantity    int64           `json:"quantity"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID         string             `json:"id"`
	VendedorID string             `json:"vendedorId"`
	Items      []SaleItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	MetodoPago string             `json:"metodoPago"`
	Fecha      time.Time          `json:"fecha"`
}

// SaleListResponse listado paginado de ventas.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}

// SellerSessionResponse resumen del día para el vendedor autenticado.
type SellerSessionResponse struct {
	VendedorID    string          `json:"vendedorId"`
	Fecha         string          `json:"fecha"` // YYYY-MM-DD
	Ventas        int             `json:"ventas"`
	Total         decimal.Decimal `json:"total"`
	Efectivo      decimal.Decimal `json:"efectivo"`
	Tarjeta       decimal.Decimal `json:"tarjeta"`
	Transferencia decimal.Decimal `json:"transferencia"`
}
