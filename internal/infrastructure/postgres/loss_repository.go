package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/puntofresco/puntofresco-api/internal/domain/entity"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

var _ repository.LossRepository = (*LossRepo)(nil)

// LossRepo implementación de LossRepository sobre PostgreSQL (append-only).
type LossRepo struct {
	q Querier
}

// NewLossRepository construye el adaptador de mermas.
func NewLossRepository(q Querier) *LossRepo {
	return &LossRepo{q: q}
}

// Create inserta la merma. La fecha la asigna la base de datos y se escribe
// de vuelta en loss.Date.
func (r *LossRepo) Create(loss *entity.Loss) error {
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO mermas (id, product_id, product_name, cantidad, motivo, costo_unitario, registrado_por, fecha)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		RETURNING fecha`,
		loss.ID, loss.ProductID, loss.ProductName, loss.Quantity, loss.Reason, loss.UnitCost, loss.RecordedBy,
	).Scan(&loss.Date)
	if err != nil {
		return fmt.Errorf("insert merma: %w", err)
	}
	return nil
}

// List devuelve mermas en el rango, más recientes primero.
func (r *LossRepo) List(from, to time.Time, limit, offset int) ([]*entity.Loss, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, product_id, product_name, cantidad, motivo, costo_unitario, registrado_por, fecha
		FROM mermas WHERE fecha BETWEEN $1 AND $2
		ORDER BY fecha DESC LIMIT $3 OFFSET $4`,
		from, to, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list mermas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Loss
	for rows.Next() {
		var l entity.Loss
		if err := rows.Scan(&l.ID, &l.ProductID, &l.ProductName, &l.Quantity, &l.Reason, &l.UnitCost, &l.RecordedBy, &l.Date); err != nil {
			return nil, fmt.Errorf("scan merma: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
