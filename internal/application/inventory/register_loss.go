package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/puntofresco/puntofresco-api/internal/domain"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// RegisterLossUseCase registra una merma (baja de inventario) de forma
// transaccional: bloquea la fila del producto, valida que la cantidad no
// exceda el stock actual, descuenta y escribe el registro de merma.
type RegisterLossUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewRegisterLossUseCase construye el caso de uso. productRepo (atado al pool)
// se usa solo para el chequeo consultivo previo a la transacción.
func NewRegisterLossUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RegisterLossUseCase {
	return &RegisterLossUseCase{txRunner: txRunner, productRepo: productRepo}
}

// LossInputDTO entrada para RegisterLoss.
type LossInputDTO struct {
	ProductID     string
	Cantidad      int64
	Motivo        string
	RegistradoPor string
}

// RegisterLoss valida y confirma la merma atómicamente.
//
// El chequeo contra el stock leído antes de la transacción es solo un corte
// rápido (el stock puede cambiar entre la lectura y el commit); la validación
// autoritativa ocurre dentro de la transacción con la fila bloqueada.
func (uc *RegisterLossUseCase) RegisterLoss(ctx context.Context, input LossInputDTO) error {
	if input.RegistradoPor == "" {
		return domain.ErrUnauthorized
	}
	if input.ProductID == "" || input.Cantidad < 1 {
		return domain.ErrInvalidInput
	}
	if !entity.ValidLossReason(input.Motivo) {
		return fmt.Errorf("motivo %q: %w", input.Motivo, domain.ErrInvalidInput)
	}

	// Chequeo consultivo, fuera de la transacción
	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("con ID %q: %w", input.ProductID, domain.ErrProductoNoExiste)
	}
	if input.Cantidad > product.Stock {
		return fmt.Errorf("%q (stock actual: %d): %w", product.Name, product.Stock, domain.ErrExcedeStock)
	}

	return uc.txRunner.RunLoss(ctx, func(
		lossRepo repository.LossRepository,
		productRepo repository.ProductRepository,
	) error {
		// Validación autoritativa con la fila bloqueada
		current, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("con ID %q: %w", input.ProductID, domain.ErrProductoNoExiste)
		}
		newStock := current.Stock - input.Cantidad
		if newStock < 0 {
			return fmt.Errorf("%q (stock actual: %d): %w", current.Name, current.Stock, domain.ErrExcedeStock)
		}

		if err := productRepo.UpdateStock(current.ID, newStock); err != nil {
			return err
		}
		return lossRepo.Create(&entity.Loss{
			ID:          uuid.New().String(),
			ProductID:   current.ID,
			ProductName: current.Name,
			Quantity:    input.Cantidad,
			Reason:      input.Motivo,
			UnitCost:    current.PurchasePrice,
			RecordedBy:  input.RegistradoPor,
		})
	})
}
