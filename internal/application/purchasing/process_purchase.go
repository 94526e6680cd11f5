package purchasing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/puntofresco/puntofresco-api/internal/domain"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// ProcessPurchaseUseCase registra una orden de compra de forma transaccional:
// valida que cada producto exista con bloqueo de fila, aumenta el stock,
// sobrescribe el precio de compra con el último costo y escribe la compra,
// todo en una sola transacción.
type ProcessPurchaseUseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
}

// NewProcessPurchaseUseCase construye el caso de uso.
func NewProcessPurchaseUseCase(txRunner TxRunner, supplierRepo repository.SupplierRepository) *ProcessPurchaseUseCase {
	return &ProcessPurchaseUseCase{txRunner: txRunner, supplierRepo: supplierRepo}
}

// PurchaseItemInput línea de la orden de compra.
type PurchaseItemInput struct {
	ProductID string
	Cantidad  int64
	UnitCost  decimal.Decimal
}

// PurchaseInputDTO entrada para ProcessPurchase.
type PurchaseInputDTO struct {
	ProveedorID string
	Items       []PurchaseItemInput
	Total       decimal.Decimal
}

// ProcessPurchase valida la orden y la confirma atómicamente. Devuelve el ID
// de la compra, reservado antes de abrir la transacción.
//
// El precio de compra del producto se sobrescribe con el costo de la línea
// (último-costo-gana): es un indicador de costo de reposición vigente, no un
// promedio ponderado; el COGS de reportes sale de los snapshots por venta.
func (uc *ProcessPurchaseUseCase) ProcessPurchase(ctx context.Context, input PurchaseInputDTO) (string, error) {
	if input.ProveedorID == "" {
		return "", domain.ErrProveedorInvalido
	}
	if len(input.Items) == 0 {
		return "", domain.ErrCompraVacia
	}
	for _, item := range input.Items {
		if item.ProductID == "" || item.Cantidad < 1 {
			return "", domain.ErrInvalidInput
		}
		if item.UnitCost.LessThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
	}

	// Proveedor validado fuera de la transacción (solo lectura); el nombre se
	// denormaliza en la compra para el historial.
	supplier, err := uc.supplierRepo.GetByID(input.ProveedorID)
	if err != nil {
		return "", err
	}
	if supplier == nil {
		return "", domain.ErrProveedorInvalido
	}

	purchaseID := uuid.New().String()

	err = uc.txRunner.RunPurchase(ctx, func(
		purchaseRepo repository.PurchaseRepository,
		productRepo repository.ProductRepository,
	) error {
		purchase := &entity.Purchase{
			ID:           purchaseID,
			SupplierID:   supplier.ID,
			SupplierName: supplier.Name,
			Total:        input.Total,
			Items:        make([]entity.PurchaseItem, 0, len(input.Items)),
		}

		// Lectura + validación: todos los productos deben existir. Las compras
		// solo aumentan stock, así que no hay chequeo de piso.
		for _, item := range input.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("con ID %q: %w", item.ProductID, domain.ErrProductoNoExiste)
			}

			// Escritura: stock + último costo de compra
			newStock := product.Stock + item.Cantidad
			if err := productRepo.ApplyPurchase(product.ID, newStock, item.UnitCost); err != nil {
				return err
			}
			purchase.Items = append(purchase.Items, entity.PurchaseItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Cantidad,
				UnitCost:    item.UnitCost,
				Subtotal:    item.UnitCost.Mul(decimal.NewFromInt(item.Cantidad)),
			})
		}

		// Cabecera y líneas; la fecha la asigna la base de datos
		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return "", err
	}
	return purchaseID, nil
}
