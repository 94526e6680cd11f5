package pos_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntofresco/puntofresco-api/internal/application/pos"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
)

func venta(seller, metodo string, total float64) *entity.Sale {
	return &entity.Sale{
		ID:            "s-" + metodo,
		SellerID:      seller,
		Total:         decimal.NewFromFloat(total),
		PaymentMethod: metodo,
		Date:          time.Now(),
	}
}

func TestSellerSession_TotalesPorMetodoDePago(t *testing.T) {
	saleRepo := &memSaleRepo{sales: []*entity.Sale{
		venta("v1", entity.PaymentEfectivo, 10.00),
		venta("v1", entity.PaymentEfectivo, 5.50),
		venta("v1", entity.PaymentTarjeta, 20.00),
		venta("v1", entity.PaymentTransferencia, 7.25),
		venta("otro", entity.PaymentEfectivo, 99.00), // de otro vendedor
	}}
	uc := pos.NewSaleQueryUseCase(saleRepo)

	out, err := uc.SellerSession("v1", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "v1", out.VendedorID)
	assert.Equal(t, 4, out.Ventas)
	assert.True(t, out.Total.Equal(decimal.NewFromFloat(42.75)), "total %s", out.Total)
	assert.True(t, out.Efectivo.Equal(decimal.NewFromFloat(15.50)))
	assert.True(t, out.Tarjeta.Equal(decimal.NewFromFloat(20.00)))
	assert.True(t, out.Transferencia.Equal(decimal.NewFromFloat(7.25)))
}

func TestSellerSession_SinVentas_TodoEnCero(t *testing.T) {
	uc := pos.NewSaleQueryUseCase(&memSaleRepo{})

	out, err := uc.SellerSession("v1", time.Now())
	require.NoError(t, err)

	assert.Zero(t, out.Ventas)
	assert.True(t, out.Total.IsZero())
	assert.True(t, out.Efectivo.IsZero())
}

func TestSaleQuery_GetByID_NoExiste(t *testing.T) {
	uc := pos.NewSaleQueryUseCase(&memSaleRepo{})

	out, err := uc.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, out)
}
