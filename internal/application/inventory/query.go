package inventory

import (
	"time"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// LossQueryUseCase consultas read-only sobre el historial de mermas.
type LossQueryUseCase struct {
	lossRepo repository.LossRepository
}

// NewLossQueryUseCase construye el caso de uso.
func NewLossQueryUseCase(lossRepo repository.LossRepository) *LossQueryUseCase {
	return &LossQueryUseCase{lossRepo: lossRepo}
}

// List lista mermas del rango [from, to] con paginación.
func (uc *LossQueryUseCase) List(from, to time.Time, limit, offset int) (*dto.LossListResponse, error) {
	list, err := uc.lossRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.LossListResponse{
		Items: make([]dto.LossResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, l := range list {
		out.Items = append(out.Items, dto.LossResponse{
			ID:            l.ID,
			ProductID:     l.ProductID,
			ProductName:   l.ProductName,
			Cantidad:      l.Quantity,
			Motivo:        l.Reason,
			CostoUnitario: l.UnitCost,
			Fecha:         l.Date,
			RegistradoPor: l.RecordedBy,
		})
	}
	return out, nil
}
