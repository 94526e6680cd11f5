package purchasing

import (
	"context"

	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para la entrada de
// mercancía: compra, aumentos de stock y costo se confirman juntos o no.
type TxRunner interface {
	RunPurchase(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error) error
}
