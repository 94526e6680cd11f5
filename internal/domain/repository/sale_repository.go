package repository

import (
	"time"

	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
// Las ventas son append-only: no hay Update ni Delete.
type SaleRepository interface {
	// Create inserta cabecera y líneas. La fecha la asigna la base de datos
	// (now() de la transacción) y se escribe de vuelta en sale.Date.
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve ventas con sus líneas en el rango [from, to], más recientes primero.
	List(from, to time.Time, limit, offset int) ([]*entity.Sale, error)
	// ListBySeller filtra por vendedor (resumen "mi sesión").
	ListBySeller(sellerID string, from, to time.Time) ([]*entity.Sale, error)
}
