package inventory

import (
	"context"

	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la merma: baja de
// stock y registro se confirman juntos o no.
type TxRunner interface {
	RunLoss(ctx context.Context, fn func(
		lossRepo repository.LossRepository,
		productRepo repository.ProductRepository,
	) error) error
}
