package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethodTotal total vendido por método de pago en un rango.
type PaymentMethodTotal struct {
	Method string
	Count  int64
	Total  decimal.Decimal
}

// DailySalesPoint punto de la serie diaria de ventas y ganancia bruta.
type DailySalesPoint struct {
	Day     time.Time
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes financieros.
//
// El costo realizado (COGS) se calcula desde el snapshot unit_cost de cada
// línea de venta, no desde el precio de compra vigente del producto; el campo
// vivo es un indicador de costo de reposición, no un registro contable.
type ReportRepository interface {
	// GetSalesTotals devuelve ingresos y COGS realizado del rango.
	GetSalesTotals(ctx context.Context, from, to time.Time) (revenue, cogs decimal.Decimal, err error)
	// GetLossTotal valora las mermas del rango con su costo snapshot.
	GetLossTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error)
	GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodTotal, error)
	GetDailySales(ctx context.Context, from, to time.Time) ([]DailySalesPoint, error)
}
