package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase representa una orden de compra confirmada (entrada de mercancía).
// Inmutable una vez confirmada; Fecha la asigna la base de datos.
type Purchase struct {
	ID           string
	SupplierID   string
	SupplierName string // denormalizado para el historial
	Items        []PurchaseItem
	Total        decimal.Decimal
	Date         time.Time
}

// PurchaseItem es una línea de compra. Al confirmar, el stock del producto
// aumenta en Quantity y su PurchasePrice se sobrescribe con UnitCost
// (política último-costo-gana).
type PurchaseItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitCost    decimal.Decimal
	Subtotal    decimal.Decimal
}
