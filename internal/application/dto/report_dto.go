package dto

import "github.com/shopspring/decimal"

// ReportSummaryDTO resumen financiero de un rango de fechas.
// Ganancia = Ingresos − Costo − Pérdidas.
type ReportSummaryDTO struct {
	Desde     string                `json:"desde"` // YYYY-MM-DD
	Hasta     string                `json:"hasta"`
	Ingresos  decimal.Decimal       `json:"ingresos"`
	Costo     decimal.Decimal       `json:"costo"`    // COGS realizado (snapshots de costo por línea)
	Perdidas  decimal.Decimal       `json:"perdidas"` // mermas valoradas al costo snapshot
	Ganancia  decimal.Decimal       `json:"ganancia"`
	PorMetodo []PaymentMethodDTO    `json:"porMetodoPago"`
	PorDia    []DailySalesPointDTO  `json:"porDia"`
}

// PaymentMethodDTO desglose de ingresos por método de pago.
type PaymentMethodDTO struct {
	Metodo string          `json:"metodo"`
	Ventas int64           `json:"ventas"`
	Total  decimal.Decimal `json:"total"`
}

// DailySalesPointDTO punto de la serie diaria.
type DailySalesPointDTO struct {
	Fecha    string          `json:"fecha"` // YYYY-MM-DD
	Ventas   decimal.Decimal `json:"ventas"`
	Ganancia decimal.Decimal `json:"ganancia"`
}
