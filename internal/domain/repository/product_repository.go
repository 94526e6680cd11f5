package repository

import (
	"github.com/shopspring/decimal"

	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// GetForUpdate, UpdateStock y ApplyPurchase solo deben invocarse con un
// repositorio atado a una transacción (vía TxRunner): son la única vía
// permitida para mutar stock y precio de compra.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando la fila (SELECT FOR UPDATE).
	// Devuelve nil sin error si el producto no existe.
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock absoluto del producto (ventas y mermas).
	UpdateStock(productID string, stock int64) error
	// ApplyPurchase fija stock y sobrescribe el precio de compra con el último
	// costo (política último-costo-gana de la entrada de mercancía).
	ApplyPurchase(productID string, stock int64, purchasePrice decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	ListLowStock() ([]*entity.Product, error)
	Delete(id string) error
}
