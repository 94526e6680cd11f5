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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
// Las compras son append-only.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create inserta la cabecera y las líneas de la compra. La fecha la asigna la
// base de datos y se escribe de vuelta en purchase.Date.
func (r *PurchaseRepo) Create(purchase *entity.Purchase) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO compras (id, proveedor_id, proveedor_nombre, total, fecha)
		VALUES ($1, $2, $3, $4, now())
		RETURNING fecha`,
		purchase.ID, purchase.SupplierID, purchase.SupplierName, purchase.Total,
	).Scan(&purchase.Date)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	for i, item := range purchase.Items {
		_, err := r.q.Exec(context.Background(), `
			INSERT INTO compra_items (compra_id, orden, product_id, product_name, cantidad, costo_unitario, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			purchase.ID, i, item.ProductID, item.ProductName, item.Quantity, item.UnitCost, item.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert compra item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una compra con sus líneas. Devuelve nil sin error si no existe.
func (r *PurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), `
		SELECT id, proveedor_id, proveedor_nombre, total, fecha
		FROM compras WHERE id = $1`, id,
	).Scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.Total, &p.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	items, err := r.loadItems(p.ID)
	if err != nil {
		return nil, err
	}
	p.Items = items
	return &p, nil
}

// List devuelve compras con sus líneas en el rango, más recientes primero.
func (r *PurchaseRepo) List(from, to time.Time, limit, offset int) ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, proveedor_id, proveedor_nombre, total, fecha
		FROM compras WHERE fecha BETWEEN $1 AND $2
		ORDER BY fecha DESC LIMIT $3 OFFSET $4`,
		from, to, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()

	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.SupplierID, &p.SupplierName, &p.Total, &p.Date); err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		items, err := r.loadItems(p.ID)
		if err != nil {
			return nil, err
		}
		p.Items = items
	}
	return list, nil
}

func (r *PurchaseRepo) loadItems(purchaseID string) ([]entity.PurchaseItem, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT product_id, product_name, cantidad, costo_unitario, subtotal
		FROM compra_items WHERE compra_id = $1 ORDER BY orden`, purchaseID,
	)
	if err != nil {
		return nil, fmt.Errorf("load compra items: %w", err)
	}
	defer rows.Close()
	var items []entity.PurchaseItem
	for rows.Next() {
		var it entity.PurchaseItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Quantity, &it.UnitCost, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan compra item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
