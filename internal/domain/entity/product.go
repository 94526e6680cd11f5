package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// Stock y PurchasePrice solo se mutan a través de los procesadores
// transaccionales (venta, compra, merma); el CRUD de catálogo no los toca.
// PurchasePrice es el costo de reposición vigente (último costo de compra),
// no un registro contable: el COGS realizado se calcula desde los snapshots
// de costo guardados en cada línea de venta.
type Product struct {
	ID            string
	Name          string
	SKU           string
	Category      string
	ImageURL      string
	PurchasePrice decimal.Decimal // último costo de compra
	SellingPrice  decimal.Decimal // precio de venta al público
	Stock         int64           // invariante: nunca negativo
	MinStock      int64           // umbral de alerta de stock bajo
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock indica si el producto está en o por debajo de su stock mínimo.
func (p *Product) LowStock() bool {
	return p.Stock <= p.MinStock
}
