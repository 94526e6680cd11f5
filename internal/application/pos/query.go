package pos

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// SaleQueryUseCase consultas read-only sobre el historial de ventas.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// GetByID obtiene una venta con sus líneas. Devuelve nil si no existe.
func (uc *SaleQueryUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista ventas del rango [from, to] con paginación.
func (uc *SaleQueryUseCase) List(from, to time.Time, limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.SaleListResponse{
		Items: make([]dto.SaleResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, s := range list {
		out.Items = append(out.Items, *toSaleResponse(s))
	}
	return out, nil
}

// SellerSession resume el día en curso para un vendedor: número de ventas y
// total por método de pago (página "mi sesión" del punto de venta).
func (uc *SaleQueryUseCase) SellerSession(sellerID string, now time.Time) (*dto.SellerSessionResponse, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Nanosecond)

	sales, err := uc.saleRepo.ListBySeller(sellerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := &dto.SellerSessionResponse{
		VendedorID:    sellerID,
		Fecha:         dayStart.Format("2006-01-02"),
		Ventas:        len(sales),
		Total:         decimal.Zero,
		Efectivo:      decimal.Zero,
		Tarjeta:       decimal.Zero,
		Transferencia: decimal.Zero,
	}
	for _, s := range sales {
		out.Total = out.Total.Add(s.Total)
		switch s.PaymentMethod {
		case entity.PaymentEfectivo:
			out.Efectivo = out.Efectivo.Add(s.Total)
		case entity.PaymentTarjeta:
			out.Tarjeta = out.Tarjeta.Add(s.Total)
		case entity.PaymentTransferencia:
			out.Transferencia = out.Transferencia.Add(s.Total)
		}
	}
	return out, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:         s.ID,
		VendedorID: s.SellerID,
		Total:      s.Total,
		MetodoPago: s.PaymentMethod,
		Fecha:      s.Date,
		Items:      make([]dto.SaleItemResponse, 0, len(s.Items)),
	}
	for _, item := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID:   item.ProductID,
			Nombre:      item.ProductName,
			Quantity:    item.Quantity,
			PrecioVenta: item.UnitPrice,
		})
	}
	return resp
}
