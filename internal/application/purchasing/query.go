package purchasing

import (
	"time"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// PurchaseQueryUseCase consultas read-only sobre el historial de compras.
type PurchaseQueryUseCase struct {
	purchaseRepo repository.PurchaseRepository
}

// NewPurchaseQueryUseCase construye el caso de uso.
func NewPurchaseQueryUseCase(purchaseRepo repository.PurchaseRepository) *PurchaseQueryUseCase {
	return &PurchaseQueryUseCase{purchaseRepo: purchaseRepo}
}

// GetByID obtiene una compra con sus líneas. Devuelve nil si no existe.
func (uc *PurchaseQueryUseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	return toPurchaseResponse(purchase), nil
}

// List lista compras del rango [from, to] con paginación.
func (uc *PurchaseQueryUseCase) List(from, to time.Time, limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PurchaseListResponse{
		Items: make([]dto.PurchaseResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, *toPurchaseResponse(p))
	}
	return out, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	resp := &dto.PurchaseResponse{
		ID:              p.ID,
		ProveedorID:     p.SupplierID,
		ProveedorNombre: p.SupplierName,
		Total:           p.Total,
		Fecha:           p.Date,
		Items:           make([]dto.PurchaseItemResponse, 0, len(p.Items)),
	}
	for _, item := range p.Items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ProductID:     item.ProductID,
			Nombre:        item.ProductName,
			Cantidad:      item.Quantity,
			CostoUnitario: item.UnitCost,
			Subtotal:      item.Subtotal,
		})
	}
	return resp
}
