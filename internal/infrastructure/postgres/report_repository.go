package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación para reportes financieros.
// El COGS sale del snapshot costo_unitario de cada línea, no del precio de
// compra vigente del producto.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// GetSalesTotals devuelve ingresos y COGS realizado del rango.
func (r *ReportRepo) GetSalesTotals(ctx context.Context, from, to time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var revenue, cogs decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(vi.cantidad * vi.precio_unitario), 0),
			COALESCE(SUM(vi.cantidad * vi.costo_unitario), 0)
		FROM venta_items vi
		JOIN ventas v ON v.id = vi.venta_id
		WHERE v.fecha BETWEEN $1 AND $2`,
		from, to,
	).Scan(&revenue, &cogs)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("totales de ventas: %w", err)
	}
	return revenue, cogs, nil
}

// GetLossTotal valora las mermas del rango con su costo snapshot.
func (r *ReportRepo) GetLossTotal(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(cantidad * costo_unitario), 0)
		FROM mermas WHERE fecha BETWEEN $1 AND $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total de mermas: %w", err)
	}
	return total, nil
}

// GetSalesByPaymentMethod agrupa ventas del rango por método de pago.
func (r *ReportRepo) GetSalesByPaymentMethod(ctx context.Context, from, to time.Time) ([]repository.PaymentMethodTotal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT metodo_pago, COUNT(*), COALESCE(SUM(total), 0)
		FROM ventas WHERE fecha BETWEEN $1 AND $2
		GROUP BY metodo_pago ORDER BY metodo_pago`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("ventas por método de pago: %w", err)
	}
	defer rows.Close()
	var out []repository.PaymentMethodTotal
	for rows.Next() {
		var t repository.PaymentMethodTotal
		if err := rows.Scan(&t.Method, &t.Count, &t.Total); err != nil {
			return nil, fmt.Errorf("scan método de pago: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// GetDailySales serie diaria de ingresos y ganancia bruta (ingresos - COGS).
func (r *ReportRepo) GetDailySales(ctx context.Context, from, to time.Time) ([]repository.DailySalesPoint, error) {
	rows, err := r.q.Query(ctx, `
		SELECT
			date_trunc('day', v.fecha) AS dia,
			COALESCE(SUM(vi.cantidad * vi.precio_unitario), 0),
			COALESCE(SUM(vi.cantidad * (vi.precio_unitario - vi.costo_unitario)), 0)
		FROM venta_items vi
		JOIN ventas v ON v.id = vi.venta_id
		WHERE v.fecha BETWEEN $1 AND $2
		GROUP BY dia ORDER BY dia`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("serie diaria de ventas: %w", err)
	}
	defer rows.Close()
	var out []repository.DailySalesPoint
	for rows.Next() {
		var p repository.DailySalesPoint
		if err := rows.Scan(&p.Day, &p.Revenue, &p.Profit); err != nil {
			return nil, fmt.Errorf("scan serie diaria: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
