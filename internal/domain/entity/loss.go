package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Motivos de merma.
const (
	LossReasonDanado  = "Dañado"
	LossReasonVencido = "Vencido"
	LossReasonRobo    = "Robo"
	LossReasonOtro    = "Otro"
)

// ValidLossReason verifica que el motivo pertenezca al conjunto cerrado.
func ValidLossReason(r string) bool {
	switch r {
	case LossReasonDanado, LossReasonVencido, LossReasonRobo, LossReasonOtro:
		return true
	}
	return false
}

// Loss representa una merma (baja de inventario por daño, vencimiento, robo u
// otro motivo). Inmutable una vez registrada.
// UnitCost es el snapshot del costo del producto al registrar la merma, para
// que los reportes valoren la pérdida con el costo de ese momento.
type Loss struct {
	ID          string
	ProductID   string
	ProductName string
	Quantity    int64
	Reason      string
	UnitCost    decimal.Decimal
	Date        time.Time
	RecordedBy  string
}
