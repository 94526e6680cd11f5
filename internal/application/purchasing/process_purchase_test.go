package purchasing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntofresco/puntofresco-api/internal/application/purchasing"
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

func (m *memProductRepo) GetBySKU(string) (*entity.Product, error) { return nil, nil }

func (m *memProductRepo) GetForUpdate(id string) (*entity.Product, error) { return m.GetByID(id) }

func (m *memProductRepo) Update(p *entity.Product) error { m.products[p.ID] = p; return nil }

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

func (m *memProductRepo) List(int, int) ([]*entity.Product, error)  { return nil, nil }
func (m *memProductRepo) ListLowStock() ([]*entity.Product, error)  { return nil, nil }
func (m *memProductRepo) Delete(id string) error                    { delete(m.products, id); return nil }

type memPurchaseRepo struct {
	purchases []*entity.Purchase
}

func (m *memPurchaseRepo) Create(p *entity.Purchase) error {
	p.Date = time.Now()
	m.purchases = append(m.purchases, p)
	return nil
}

func (m *memPurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	for _, p := range m.purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memPurchaseRepo) List(time.Time, time.Time, int, int) ([]*entity.Purchase, error) {
	return m.purchases, nil
}

type memSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (m *memSupplierRepo) Create(s *entity.Supplier) error { m.suppliers[s.ID] = s; return nil }
func (m *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := m.suppliers[id]
	if !ok {
		return nil, nil
	}
	return s, nil
}
func (m *memSupplierRepo) Update(*entity.Supplier) error        { return nil }
func (m *memSupplierRepo) List() ([]*entity.Supplier, error)    { return nil, nil }
func (m *memSupplierRepo) Delete(string) error                  { return nil }

type memTxRunner struct {
	productRepo  *memProductRepo
	purchaseRepo *memPurchaseRepo
	runs         int
}

func (r *memTxRunner) RunPurchase(_ context.Context, fn func(repository.PurchaseRepository, repository.ProductRepository) error) error {
	r.runs++
	before := r.productRepo.clone()
	purchasesBefore := len(r.purchaseRepo.purchases)
	if err := fn(r.purchaseRepo, r.productRepo); err != nil {
		r.productRepo.products = before
		r.purchaseRepo.purchases = r.purchaseRepo.purchases[:purchasesBefore]
		return err
	}
	return nil
}

func setup(products ...*entity.Product) (*purchasing.ProcessPurchaseUseCase, *memTxRunner, *memSupplierRepo) {
	runner := &memTxRunner{
		productRepo:  newMemProductRepo(products...),
		purchaseRepo: &memPurchaseRepo{},
	}
	suppliers := &memSupplierRepo{suppliers: map[string]*entity.Supplier{
		"prov1": {ID: "prov1", Name: "Distribuidora La Central"},
	}}
	return purchasing.NewProcessPurchaseUseCase(runner, suppliers), runner, suppliers
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProcessPurchase
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessPurchase_OrdenVacia_NoAbreTransaccion(t *testing.T) {
	uc, runner, _ := setup()

	_, err := uc.ProcessPurchase(context.Background(), purchasing.PurchaseInputDTO{
		ProveedorID: "prov1",
	})

	require.ErrorIs(t, err, domain.ErrCompraVacia)
	assert.Zero(t, runner.runs)
}

func TestProcessPurchase_ProveedorInexistente_Rechazada(t *testing.T) {
	uc, runner, _ := setup()

	_, err := uc.ProcessPurchase(context.Background(), purchasing.PurchaseInputDTO{
		ProveedorID: "desconocido",
		Items:       []purchasing.PurchaseItemInput{{ProductID: "p1", Cantidad: 1}},
	})

	require.ErrorIs(t, err, domain.ErrProveedorInvalido)
	assert.Zero(t, runner.runs)
}

func TestProcessPurchase_CompraValida_AumentaStockYActualizaCosto(t *testing.T) {
	uc, runner, _ := setup(&entity.Product{
		ID: "p1", Name: "Harina 1kg", Stock: 4,
		PurchasePrice: decimal.NewFromFloat(0.80),
	})

	purchaseID, err := uc.ProcessPurchase(context.Background(), purchasing.PurchaseInputDTO{
		ProveedorID: "prov1",
		Items: []purchasing.PurchaseItemInput{
			{ProductID: "p1", Cantidad: 30, UnitCost: decimal.NewFromFloat(0.95)},
		},
		Total: decimal.NewFromFloat(28.50),
	})

	require.NoError(t, err)
	require.NotEmpty(t, purchaseID)

	p1, _ := runner.productRepo.GetByID("p1")
	assert.EqualValues(t, 34, p1.Stock, "el stock debe aumentar en la cantidad comprada")
	assert.True(t, p1.PurchasePrice.Equal(decimal.NewFromFloat(0.95)),
		"el precio de compra se sobrescribe con el último costo")

	require.Len(t, runner.purchaseRepo.purchases, 1)
	purchase := runner.purchaseRepo.purchases[0]
	assert.Equal(t, "Distribuidora La Central", purchase.SupplierName,
		"el nombre del proveedor se denormaliza en la compra")
	require.Len(t, purchase.Items, 1)
	assert.True(t, purchase.Items[0].Subtotal.Equal(decimal.NewFromFloat(28.50)),
		"subtotal = costo unitario × cantidad")
	assert.False(t, purchase.Date.IsZero())
}

func TestProcessPurchase_ProductoInexistente_RevierteTodo(t *testing.T) {
	uc, runner, _ := setup(&entity.Product{
		ID: "p1", Name: "Harina 1kg", Stock: 4,
		PurchasePrice: decimal.NewFromFloat(0.80),
	})

	_, err := uc.ProcessPurchase(context.Background(), purchasing.PurchaseInputDTO{
		ProveedorID: "prov1",
		Items: []purchasing.PurchaseItemInput{
			{ProductID: "p1", Cantidad: 10, UnitCost: decimal.NewFromFloat(0.90)},
			{ProductID: "fantasma", Cantidad: 5, UnitCost: decimal.NewFromFloat(1.00)},
		},
	})

	require.ErrorIs(t, err, domain.ErrProductoNoExiste)

	p1, _ := runner.productRepo.GetByID("p1")
	assert.EqualValues(t, 4, p1.Stock, "el aumento de p1 debe revertirse con el rollback")
	assert.True(t, p1.PurchasePrice.Equal(decimal.NewFromFloat(0.80)),
		"el costo de p1 debe revertirse con el rollback")
	assert.Empty(t, runner.purchaseRepo.purchases)
}

func TestProcessPurchase_CostoNegativo_Rechazado(t *testing.T) {
	uc, runner, _ := setup()

	_, err := uc.ProcessPurchase(context.Background(), purchasing.PurchaseInputDTO{
		ProveedorID: "prov1",
		Items: []purchasing.PurchaseItemInput{
			{ProductID: "p1", Cantidad: 1, UnitCost: decimal.NewFromFloat(-0.50)},
		},
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.runs)
}
