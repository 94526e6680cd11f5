package pos_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puntofresco/puntofresco-api/internal/application/pos"
	"github.com/puntofresco/puntofresco-api/internal/domain"
	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products       map[string]*entity.Product
	forUpdateCalls []string
	updateStock    []string
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

func (m *memProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range m.products {
		if p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	m.forUpdateCalls = append(m.forUpdateCalls, id)
	return m.GetByID(id)
}

func (m *memProductRepo) Update(p *entity.Product) error {
	m.products[p.ID] = p
	return nil
}

func (m *memProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := m.products[id]
	if !ok {
		return fmt.Errorf("producto %s no existe", id)
	}
	m.updateStock = append(m.updateStock, id)
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

func (m *memProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (m *memProductRepo) ListLowStock() ([]*entity.Product, error)          { return nil, nil }
func (m *memProductRepo) Delete(id string) error                            { delete(m.products, id); return nil }

type memSaleRepo struct {
	sales []*entity.Sale
}

func (m *memSaleRepo) Create(sale *entity.Sale) error {
	sale.Date = time.Now()
	m.sales = append(m.sales, sale)
	return nil
}

func (m *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range m.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}

func (m *memSaleRepo) List(from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	return m.sales, nil
}

func (m *memSaleRepo) ListBySeller(sellerID string, from, to time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range m.sales {
		if s.SellerID == sellerID {
			out = append(out, s)
		}
	}
	return out, nil
}

// memTxRunner emula la semántica Commit/Rollback: si fn falla, restaura el
// estado previo de productos y ventas.
type memTxRunner struct {
	productRepo *memProductRepo
	saleRepo    *memSaleRepo
	runs        int
}

func (r *memTxRunner) RunSale(_ context.Context, fn func(repository.SaleRepository, repository.ProductRepository) error) error {
	r.runs++
	productsBefore := r.productRepo.clone()
	salesBefore := len(r.saleRepo.sales)
	if err := fn(r.saleRepo, r.productRepo); err != nil {
		r.productRepo.products = productsBefore
		r.saleRepo.sales = r.saleRepo.sales[:salesBefore]
		return err
	}
	return nil
}

func producto(id, nombre string, stock int64, costo float64) *entity.Product {
	return &entity.Product{
		ID:            id,
		Name:          nombre,
		SKU:           "SKU-" + id,
		Stock:         stock,
		PurchasePrice: decimal.NewFromFloat(costo),
		SellingPrice:  decimal.NewFromFloat(costo * 2),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProcessSale
// ──────────────────────────────────────────────────────────────────────────────

func TestProcessSale_CarritoVacio_NoTocaElStore(t *testing.T) {
	productRepo := newMemProductRepo(producto("p1", "Leche entera 1L", 10, 2.50))
	runner := &memTxRunner{productRepo: productRepo, saleRepo: &memSaleRepo{}}
	uc := pos.NewProcessSaleUseCase(runner)

	_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "v1",
		Items:      nil,
		MetodoPago: entity.PaymentEfectivo,
	})

	require.ErrorIs(t, err, domain.ErrCarritoVacio)
	assert.Zero(t, runner.runs, "carrito vacío no debe abrir transacción")
	assert.Empty(t, productRepo.forUpdateCalls, "carrito vacío no debe leer productos")
}

func TestProcessSale_VendedorVacio_Rechazada(t *testing.T) {
	runner := &memTxRunner{productRepo: newMemProductRepo(), saleRepo: &memSaleRepo{}}
	uc := pos.NewProcessSaleUseCase(runner)

	_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "",
		Items:      []pos.SaleItemInput{{ProductID: "p1", Quantity: 1}},
		MetodoPago: entity.PaymentEfectivo,
	})

	require.ErrorIs(t, err, domain.ErrVendedorInvalido)
	assert.Zero(t, runner.runs)
}

func TestProcessSale_MetodoPagoInvalido_Rechazada(t *testing.T) {
	runner := &memTxRunner{productRepo: newMemProductRepo(), saleRepo: &memSaleRepo{}}
	uc := pos.NewProcessSaleUseCase(runner)

	_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "v1",
		Items:      []pos.SaleItemInput{{ProductID: "p1", Quantity: 1}},
		MetodoPago: "Cheque",
	})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, runner.runs)
}

func TestProcessSale_VentaValida_DescuentaStockYRegistra(t *testing.T) {
	productRepo := newMemProductRepo(
		producto("p1", "Leche entera 1L", 10, 2.50),
		producto("p2", "Pan integral", 5, 1.20),
	)
	saleRepo := &memSaleRepo{}
	runner := &memTxRunner{productRepo: productRepo, saleRepo: saleRepo}
	uc := pos.NewProcessSaleUseCase(runner)

	saleID, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "v1",
		Items: []pos.SaleItemInput{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromFloat(5.00)},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.NewFromFloat(2.40)},
		},
		Total:      decimal.NewFromFloat(19.80),
		MetodoPago: entity.PaymentTarjeta,
	})

	require.NoError(t, err)
	require.NotEmpty(t, saleID)

	p1, _ := productRepo.GetByID("p1")
	p2, _ := productRepo.GetByID("p2")
	assert.EqualValues(t, 7, p1.Stock, "stock de p1 debe bajar de 10 a 7")
	assert.EqualValues(t, 3, p2.Stock, "stock de p2 debe bajar de 5 a 3")

	require.Len(t, saleRepo.sales, 1)
	sale := saleRepo.sales[0]
	assert.Equal(t, saleID, sale.ID)
	assert.Equal(t, "v1", sale.SellerID)
	assert.Equal(t, entity.PaymentTarjeta, sale.PaymentMethod)
	assert.False(t, sale.Date.IsZero(), "la fecha la asigna el repositorio al confirmar")

	// Las líneas conservan el orden del carrito y el snapshot de costo
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "p1", sale.Items[0].ProductID)
	assert.Equal(t, "Leche entera 1L", sale.Items[0].ProductName)
	assert.True(t, sale.Items[0].UnitCost.Equal(decimal.NewFromFloat(2.50)),
		"el costo unitario debe ser el snapshot del producto al vender")
	assert.Equal(t, "p2", sale.Items[1].ProductID)
}

func TestProcessSale_StockInsuficiente_NombraElProducto(t *testing.T) {
	productRepo := newMemProductRepo(producto("p1", "Queso fresco", 2, 4.00))
	saleRepo := &memSaleRepo{}
	runner := &memTxRunner{productRepo: productRepo, saleRepo: saleRepo}
	uc := pos.NewProcessSaleUseCase(runner)

	_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "v1",
		Items:      []pos.SaleItemInput{{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromFloat(8.00)}},
		MetodoPago: entity.PaymentEfectivo,
	})

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Contains(t, err.Error(), "Queso fresco", "el error debe nombrar el producto afectado")
	assert.Contains(t, err.Error(), "disponible: 2")
	assert.Empty(t, saleRepo.sales, "una venta rechazada no debe registrarse")
}

func TestProcessSale_ProductoInexistente_UsaNombreDelCarrito(t *testing.T) {
	runner := &memTxRunner{productRepo: newMemProductRepo(), saleRepo: &memSaleRepo{}}
	uc := pos.NewProcessSaleUseCase(runner)

	_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "v1",
		Items: []pos.SaleItemInput{
			{ProductID: "fantasma", Nombre: "Yogur griego", Quantity: 1, UnitPrice: decimal.NewFromFloat(3.00)},
		},
		MetodoPago: entity.PaymentEfectivo,
	})

	require.ErrorIs(t, err, domain.ErrProductoNoExiste)
	assert.Contains(t, err.Error(), "Yogur griego")
}

// Atomicidad: si la segunda línea falla, la primera no queda escrita.
func TestProcessSale_FalloParcial_RevierteTodo(t *testing.T) {
	productRepo := newMemProductRepo(
		producto("p1", "Arroz 1kg", 20, 1.00),
		producto("p2", "Aceite 1L", 1, 3.00),
	)
	saleRepo := &memSaleRepo{}
	runner := &memTxRunner{productRepo: productRepo, saleRepo: saleRepo}
	uc := pos.NewProcessSaleUseCase(runner)

	_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
		VendedorID: "v1",
		Items: []pos.SaleItemInput{
			{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromFloat(2.00)},
			{ProductID: "p2", Quantity: 3, UnitPrice: decimal.NewFromFloat(6.00)}, // insuficiente
		},
		MetodoPago: entity.PaymentEfectivo,
	})

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)

	p1, _ := productRepo.GetByID("p1")
	assert.EqualValues(t, 20, p1.Stock, "el descuento de p1 debe revertirse con el rollback")
	assert.Empty(t, saleRepo.sales)
}

func TestProcessSale_CantidadInvalida_Rechazada(t *testing.T) {
	runner := &memTxRunner{productRepo: newMemProductRepo(), saleRepo: &memSaleRepo{}}
	uc := pos.NewProcessSaleUseCase(runner)

	for _, qty := range []int64{0, -1} {
		_, err := uc.ProcessSale(context.Background(), pos.SaleInputDTO{
			VendedorID: "v1",
			Items:      []pos.SaleItemInput{{ProductID: "p1", Quantity: qty}},
			MetodoPago: entity.PaymentEfectivo,
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Zero(t, runner.runs)
}
