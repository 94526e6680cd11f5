package pos

import (
	"context"

	"github.com/puntofresco/puntofresco-api/internal/domain"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// ReceiptGenerator genera el documento del recibo de una venta confirmada.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, sellerName string) ([]byte, error)
}

// ReceiptUseCase genera el recibo PDF de una venta ya confirmada.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	userRepo  repository.UserRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, userRepo repository.UserRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, userRepo: userRepo, generator: generator}
}

// GenerateReceipt genera el PDF del recibo de la venta indicada.
// Devuelve domain.ErrNotFound si la venta no existe. Si el vendedor ya no
// existe, el recibo sale sin nombre.
func (uc *ReceiptUseCase) GenerateReceipt(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	var sellerName string
	if seller, err := uc.userRepo.GetByID(sale.SellerID); err == nil && seller != nil {
		sellerName = seller.Name
	}
	return uc.generator.GenerateReceipt(ctx, sale, sellerName)
}
