package pos

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/puntofresco/puntofresco-api/internal/domain"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// ProcessSaleUseCase registra una venta de forma transaccional: valida el
// stock de cada producto con bloqueo de fila (SELECT FOR UPDATE), descuenta
// las cantidades y escribe la venta en una sola transacción (Commit/Rollback).
//
// El caller no debe emitir una segunda llamada para la misma venta mientras
// una está en vuelo; el núcleo no deduplica llamadas concurrentes idénticas.
type ProcessSaleUseCase struct {
	txRunner TxRunner
}

// NewProcessSaleUseCase construye el caso de uso.
func NewProcessSaleUseCase(txRunner TxRunner) *ProcessSaleUseCase {
	return &ProcessSaleUseCase{txRunner: txRunner}
}

// SaleItemInput línea del carrito.
type SaleItemInput struct {
	ProductID string
	Nombre    string // nombre conocido por el caller; solo para mensajes de error
	Quantity  int64
	UnitPrice decimal.Decimal
}

// SaleInputDTO entrada para ProcessSale. Total viene precalculado por el
// punto de venta y no se recalcula aquí.
type SaleInputDTO struct {
	VendedorID string
	Items      []SaleItemInput
	Total      decimal.Decimal
	MetodoPago string
}

// ProcessSale valida la venta y la confirma atómicamente. Devuelve el ID de
// la venta, reservado antes de abrir la transacción para poder referenciarlo
// en el recibo inmediatamente después del commit.
//
// Dentro de la transacción, cada producto se lee con bloqueo de fila antes de
// cualquier escritura; dos ventas concurrentes sobre el mismo producto se
// serializan en ese lock, de modo que el stock nunca queda negativo.
func (uc *ProcessSaleUseCase) ProcessSale(ctx context.Context, input SaleInputDTO) (string, error) {
	// Validación rápida, antes de tocar la base de datos
	if input.VendedorID == "" {
		return "", domain.ErrVendedorInvalido
	}
	if len(input.Items) == 0 {
		return "", domain.ErrCarritoVacio
	}
	if !entity.ValidPaymentMethod(input.MetodoPago) {
		return "", fmt.Errorf("método de pago %q: %w", input.MetodoPago, domain.ErrInvalidInput)
	}
	for _, item := range input.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return "", domain.ErrInvalidInput
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			return "", domain.ErrInvalidInput
		}
	}

	// ID reservado fuera de la transacción (patrón del recibo: el caller lo
	// usa apenas el commit confirma; si falla, la venta no existe).
	saleID := uuid.New().String()

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
	) error {
		sale := &entity.Sale{
			ID:            saleID,
			SellerID:      input.VendedorID,
			Total:         input.Total,
			PaymentMethod: input.MetodoPago,
			Items:         make([]entity.SaleItem, 0, len(input.Items)),
		}

		// Fase de lectura + validación, en el orden del carrito
		for _, item := range input.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%q: %w", itemName(item), domain.ErrProductoNoExiste)
			}
			newStock := product.Stock - item.Quantity
			if newStock < 0 {
				return fmt.Errorf("%q (disponible: %d): %w",
					product.Name, product.Stock, domain.ErrStockInsuficiente)
			}

			// Fase de escritura del ítem: nuevo stock + línea con snapshot de costo
			if err := productRepo.UpdateStock(product.ID, newStock); err != nil {
				return err
			}
			sale.Items = append(sale.Items, entity.SaleItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				UnitCost:    product.PurchasePrice,
			})
		}

		// Cabecera y líneas de la venta; la fecha la asigna la base de datos
		return saleRepo.Create(sale)
	})
	if err != nil {
		return "", err
	}
	return saleID, nil
}

// itemName devuelve el nombre para mensajes de error cuando el producto no
// existe y solo se conoce lo que envió el caller.
func itemName(item SaleItemInput) string {
	if item.Nombre != "" {
		return item.Nombre
	}
	return item.ProductID
}
