package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en el catálogo.
// El stock inicial se acepta aquí una sola vez; después solo lo mueven los
// procesadores de venta, compra y merma.
type CreateProductRequest struct {
	Nombre       string          `json:"nombre" validate:"required,min=2"`
	SKU          string          `json:"sku" validate:"required,min=2"`
	Categoria    string          `json:"categoria" validate:"required"`
	ImagenURL    string          `json:"imagenUrl" validate:"omitempty,url"`
	PrecioCompra decimal.Decimal `json:"precioCompra"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	Stock        int64           `json:"stock" validate:"min=0"`
	StockMinimo  int64           `json:"stockMinimo" validate:"min=0"`
}

// UpdateProductRequest edición de catálogo. No incluye stock ni precioCompra.
type UpdateProductRequest struct {
	Nombre      string          `json:"nombre" validate:"required,min=2"`
	Categoria   string          `json:"categoria" validate:"required"`
	ImagenURL   string          `json:"imagenUrl" validate:"omitempty,url"`
	PrecioVenta decimal.Decimal `json:"precioVenta"`
	StockMinimo int64           `json:"stockMinimo" validate:"min=0"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	SKU          string          `json:"sku"`
	Categoria    string          `json:"categoria"`
	ImagenURL    string          `json:"imagenUrl,omitempty"`
	PrecioCompra decimal.Decimal `json:"precioCompra"`
	PrecioVenta  decimal.Decimal `json:"precioVenta"`
	Stock        int64           `json:"stock"`
	StockMinimo  int64           `json:"stockMinimo"`
	StockBajo    bool            `json:"stockBajo"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
