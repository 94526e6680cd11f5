package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentEfectivo      = "Efectivo"
	PaymentTarjeta       = "Tarjeta"
	PaymentTransferencia = "Transferencia"
)

// ValidPaymentMethod verifica que el método de pago pertenezca al conjunto cerrado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentEfectivo, PaymentTarjeta, PaymentTransferencia:
		return true
	}
	return false
}

// Sale representa una venta confirmada (libro mayor append-only: nunca se
// actualiza ni se elimina una vez confirmada).
// Fecha la asigna la base de datos al confirmar, no el cliente.
type Sale struct {
	ID            string
	SellerID      string
	Items         []SaleItem
	Total         decimal.Decimal // total informado por el caller; no se recalcula
	PaymentMethod string
	Date          time.Time
}

// SaleItem es una línea de venta. UnitCost es el snapshot de Product.PurchasePrice
// al momento de la venta; los reportes calculan el COGS realizado desde aquí.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	UnitCost    decimal.Decimal
}
