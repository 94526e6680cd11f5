package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/application/reports"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

type fakeReportRepo struct {
	revenue decimal.Decimal
	cogs    decimal.Decimal
	losses  decimal.Decimal
	methods []repository.PaymentMethodTotal
	daily   []repository.DailySalesPoint
	calls   int
}

func (f *fakeReportRepo) GetSalesTotals(context.Context, time.Time, time.Time) (decimal.Decimal, decimal.Decimal, error) {
	f.calls++
	return f.revenue, f.cogs, nil
}

func (f *fakeReportRepo) GetLossTotal(context.Context, time.Time, time.Time) (decimal.Decimal, error) {
	return f.losses, nil
}

func (f *fakeReportRepo) GetSalesByPaymentMethod(context.Context, time.Time, time.Time) ([]repository.PaymentMethodTotal, error) {
	return f.methods, nil
}

func (f *fakeReportRepo) GetDailySales(context.Context, time.Time, time.Time) ([]repository.DailySalesPoint, error) {
	return f.daily, nil
}

type fakeCache struct {
	store map[string]*dto.ReportSummaryDTO
	sets  int
}

func (f *fakeCache) Get(_ context.Context, key string) (*dto.ReportSummaryDTO, bool, error) {
	v, ok := f.store[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value *dto.ReportSummaryDTO, _ time.Duration) error {
	f.store[key] = value
	f.sets++
	return nil
}

func rango() (time.Time, time.Time) {
	from, _ := time.Parse("2006-01-02", "2025-06-01")
	to, _ := time.Parse("2006-01-02", "2025-06-30")
	return from, to
}

func TestGetSummary_GananciaDescuentaCostoYPerdidas(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: decimal.NewFromFloat(1000.00),
		cogs:    decimal.NewFromFloat(600.00),
		losses:  decimal.NewFromFloat(50.00),
		methods: []repository.PaymentMethodTotal{
			{Method: "Efectivo", Count: 12, Total: decimal.NewFromFloat(700.00)},
			{Method: "Tarjeta", Count: 5, Total: decimal.NewFromFloat(300.00)},
		},
	}
	uc := reports.NewSummaryUseCase(repo, nil, 0)

	from, to := rango()
	out, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", out.Desde)
	assert.Equal(t, "2025-06-30", out.Hasta)
	assert.True(t, out.Ingresos.Equal(decimal.NewFromFloat(1000.00)))
	assert.True(t, out.Costo.Equal(decimal.NewFromFloat(600.00)))
	assert.True(t, out.Perdidas.Equal(decimal.NewFromFloat(50.00)))
	assert.True(t, out.Ganancia.Equal(decimal.NewFromFloat(350.00)),
		"ganancia = ingresos - costo - pérdidas")
	require.Len(t, out.PorMetodo, 2)
	assert.Equal(t, "Efectivo", out.PorMetodo[0].Metodo)
	assert.EqualValues(t, 12, out.PorMetodo[0].Ventas)
}

func TestGetSummary_CacheHit_NoConsultaElRepositorio(t *testing.T) {
	repo := &fakeReportRepo{revenue: decimal.NewFromFloat(1.00)}
	cache := &fakeCache{store: map[string]*dto.ReportSummaryDTO{}}
	uc := reports.NewSummaryUseCase(repo, cache, time.Minute)

	from, to := rango()

	// Primera llamada: calcula y guarda en caché
	first, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, 1, cache.sets)

	// Segunda llamada: resuelve desde caché
	second, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "el cache hit no debe volver a consultar")
	assert.Equal(t, first, second)
}

func TestGetSummary_SinVentas_TodoEnCero(t *testing.T) {
	repo := &fakeReportRepo{
		revenue: decimal.Zero,
		cogs:    decimal.Zero,
		losses:  decimal.Zero,
	}
	uc := reports.NewSummaryUseCase(repo, nil, 0)

	from, to := rango()
	out, err := uc.GetSummary(context.Background(), from, to)
	require.NoError(t, err)

	assert.True(t, out.Ingresos.IsZero())
	assert.True(t, out.Ganancia.IsZero())
	assert.Empty(t, out.PorMetodo)
	assert.Empty(t, out.PorDia)
}
