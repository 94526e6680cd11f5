package repository

import (
	"time"

	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
)

// LossRepository define el puerto de persistencia para Loss (mermas, append-only).
type LossRepository interface {
	// Create inserta la merma; la fecha la asigna la base de datos.
	Create(loss *entity.Loss) error
	List(from, to time.Time, limit, offset int) ([]*entity.Loss, error)
}
