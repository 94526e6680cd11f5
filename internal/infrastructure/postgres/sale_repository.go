package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// Las ventas son append-only: solo INSERT y SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y las líneas de la venta. La fecha la asigna la
// base de datos (now() de la transacción) y se escribe de vuelta en sale.Date.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO ventas (id, vendedor_id, total, metodo_pago, fecha)
		VALUES ($1, $2, $3, $4, now())
		RETURNING fecha`,
		sale.ID, sale.SellerID, sale.Total, sale.PaymentMethod,
	).Scan(&sale.Date)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	for i, item := range sale.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO venta_items (venta_id, orden, product_id, product_name, cantidad, precio_unitario, costo_unitario)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			sale.ID, i, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.UnitCost,
		)
		if err != nil {
			return fmt.Errorf("insert venta item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas. Devuelve nil sin error si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), `
		SELECT id, vendedor_id, total, metodo_pago, fecha
		FROM ventas WHERE id = $1`, id,
	).Scan(&s.ID, &s.SellerID, &s.Total, &s.PaymentMethod, &s.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	items, err := r.loadItems(s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

// List devuelve ventas con sus líneas en el rango [from, to], más recientes primero.
func (r *SaleRepo) List(from, to time.Time, limit, offset int) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, vendedor_id, total, metodo_pago, fecha
		FROM ventas WHERE fecha BETWEEN $1 AND $2
		ORDER BY fecha DESC LIMIT $3 OFFSET $4`,
		from, to, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	list, err := r.scanSales(rows)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.loadItems(s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

// ListBySeller filtra por vendedor en el rango; sin líneas (solo cabeceras,
// suficiente para el resumen "mi sesión").
func (r *SaleRepo) ListBySeller(sellerID string, from, to time.Time) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, vendedor_id, total, metodo_pago, fecha
		FROM ventas WHERE vendedor_id = $1 AND fecha BETWEEN $2 AND $3
		ORDER BY fecha DESC`,
		sellerID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list ventas por vendedor: %w", err)
	}
	defer rows.Close()
	return r.scanSales(rows)
}

func (r *SaleRepo) scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SellerID, &s.Total, &s.PaymentMethod, &s.Date); err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *SaleRepo) loadItems(saleID string) ([]entity.SaleItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, product_name, cantidad, precio_unitario, costo_unitario
		FROM venta_items WHERE venta_id = $1 ORDER BY orden`, saleID,
	)
	if err != nil {
		return nil, fmt.Errorf("load venta items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.UnitCost); err != nil {
			return nil, fmt.Errorf("scan venta item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
