package repository

import (
	"time"

	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
)

// PurchaseRepository define el puerto de persistencia para Purchase (append-only).
type PurchaseRepository interface {
	// Create inserta cabecera y líneas; la fecha la asigna la base de datos.
	Create(purchase *entity.Purchase) error
	GetByID(id string) (*entity.Purchase, error)
	List(from, to time.Time, limit, offset int) ([]*entity.Purchase, error)
}
