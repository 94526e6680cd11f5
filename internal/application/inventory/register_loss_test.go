package inventory_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntofresco/puntofresco-api/internal/application/inventory"
	"github.com/puntofresco/puntofresco-api/internal/domain"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	m := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		m.products[p.ID] = &cp
	}
	return m
}

func (m *memProductRepo) clone() map[string]*entity.Product {
	out := make(map[string]*entity.Product, len(m.products))
	for k, v := range m.products {
		cp := *v
		out[k] = &cp
	}
	return out
}

func (m *memProductRepo) Create(p *entity.Product) error { m.products[p.ID] = p; return nil }

func (m *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) GetBySKU(string) (*entity.Product, error)        { return nil, nil }
func (m *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return m.GetByID(id) }
func (m *memProductRepo) Update(p *entity.Product) error                  { m.products[p.ID] = p; return nil }

func (m *memProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.Stock = stock
	return nil
}

func (m *memProductRepo) ApplyPurchase(id string, stock int64, price decimal.Decimal) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	p.Stock = stock
	p.PurchasePrice = price
	return nil
}

func (m *memProductRepo) List(int, int) ([]*entity.Product, error) { return nil, nil }
func (m *memProductRepo) ListLowStock() ([]*entity.Product, error) { return nil, nil }
func (m *memProductRepo) Delete(id string) error                   { delete(m.products, id); return nil }

type memLossRepo struct {
	losses []*entity.Loss
}

func (m *memLossRepo) Create(l *entity.Loss) error {
	l.Date = time.Now()
	m.losses = append(m.losses, l)
	return nil
}

func (m *memLossRepo) List(time.Time, time.Time, int, int) ([]*entity.Loss, error) {
	return m.losses, nil
}

type memTxRunner struct {
	productRepo *memProductRepo
	lossRepo    *memLossRepo
	runs        int
}

func (r *memTxRunner) RunLoss(_ context.Context, fn func(repository.LossRepository, repository.ProductRepository) error) error {
	r.runs++
	before := r.productRepo.clone()
	lossesBefore := len(r.lossRepo.losses)
	if err := fn(r.lossRepo, r.productRepo); err != nil {
		r.productRepo.products = before
		r.lossRepo.losses = r.lossRepo.losses[:lossesBefore]
		return err
	}
	return nil
}

func setup(products ...*entity.Product) (*inventory.RegisterLossUseCase, *memTxRunner) {
	runner := &memTxRunner{
		productRepo: newMemProductRepo(products...),
		lossRepo:    &memLossRepo{},
	}
	return inventory.NewRegisterLossUseCase(runner, runner.productRepo), runner
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RegisterLoss
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterLoss_MermaValida_DescuentaYRegistra(t *testing.T) {
	uc, runner := setup(&entity.Product{
		ID: "p1", Name: "Tomates maduros", Stock: 12,
		PurchasePrice: decimal.NewFromFloat(0.60),
	})

	err := uc.RegisterLoss(context.Background(), inventory.LossInputDTO{
		ProductID:     "p1",
		Cantidad:      4,
		Motivo:        entity.LossReasonVencido,
		RegistradoPor: "u1",
	})

	require.NoError(t, err)

	p1, _ := runner.productRepo.GetByID("p1")
	assert.EqualValues(t, 8, p1.Stock)

	require.Len(t, runner.lossRepo.losses, 1)
	loss := runner.lossRepo.losses[0]
	assert.Equal(t, "Tomates maduros", loss.ProductName)
	assert.Equal(t, entity.LossReasonVencido, loss.Reason)
	assert.Equal(t, "u1", loss.RecordedBy)
	assert.True(t, loss.UnitCost.Equal(decimal.NewFromFloat(0.60)),
		"la merma se valora con el costo snapshot del producto")
	assert.False(t, loss.Date.IsZero())
}

func TestRegisterLoss_ExcedeStock_Rechazada(t *testing.T) {
	uc, runner := setup(&entity.Product{ID: "p1", Name: "Tomates maduros", Stock: 3})

	err := uc.RegisterLoss(context.Background(), inventory.LossInputDTO{
		ProductID:     "p1",
		Cantidad:      5,
		Motivo:        entity.LossReasonDanado,
		RegistradoPor: "u1",
	})

	require.ErrorIs(t, err, domain.ErrExcedeStock)
	assert.Contains(t, err.Error(), "Tomates maduros")
	assert.Contains(t, err.Error(), "stock actual: 3")

	p1, _ := runner.productRepo.GetByID("p1")
	assert.EqualValues(t, 3, p1.Stock, "una merma rechazada no debe tocar el stock")
	assert.Empty(t, runner.lossRepo.losses)
}

// Dar de baja exactamente el stock disponible es válido y deja el stock en cero.
func TestRegisterLoss_TodoElStock_QuedaEnCero(t *testing.T) {
	uc, runner := setup(&entity.Product{ID: "p1", Name: "Lechugas", Stock: 6})

	err := uc.RegisterLoss(context.Background(), inventory.LossInputDTO{
		ProductID:     "p1",
		Cantidad:      6,
		Motivo:        entity.LossReasonDanado,
		RegistradoPor: "u1",
	})

	require.NoError(t, err)
	p1, _ := runner.productRepo.GetByID("p1")
	assert.Zero(t, p1.Stock)
}

func TestRegisterLoss_MotivoInvalido_Rechazada(t *testing.T) {
	uc, runner := setup(&entity.Product{ID: "p1", Name: "Lechugas", Stock: 6})

	err := uc.RegisterLoss(context.Background(), inventory.LossInputDTO{
		ProductID:     "p1",
		Cantidad:      1,
		Motivo:        "Regalado",
		RegistradoPor: "u1",
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.runs)
}

func TestRegisterLoss_SinActor_Rechazada(t *testing.T) {
	uc, runner := setup(&entity.Product{ID: "p1", Name: "Lechugas", Stock: 6})

	err := uc.RegisterLoss(context.Background(), inventory.LossInputDTO{
		ProductID: "p1",
		Cantidad:  1,
		Motivo:    entity.LossReasonOtro,
	})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, runner.runs)
}

func TestRegisterLoss_ProductoInexistente(t *testing.T) {
	uc, runner := setup()

	err := uc.RegisterLoss(context.Background(), inventory.LossInputDTO{
		ProductID:     "fantasma",
		Cantidad:      1,
		Motivo:        entity.LossReasonRobo,
		RegistradoPor: "u1",
	})

	require.ErrorIs(t, err, domain.ErrProductoNoExiste)
	assert.Zero(t, runner.runs, "el chequeo consultivo corta antes de abrir transacción")
}
