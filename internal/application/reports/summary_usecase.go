// Package reports contiene los casos de uso de reportes financieros:
// ingresos, costo realizado, pérdidas por merma y ganancia de un rango de
// fechas, con desglose por método de pago y serie diaria.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
	"github.com/puntofresco/puntofresco-api/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// SummaryUseCase genera el resumen financiero de un rango de fechas.
//
// Fuente de datos: ReportRepository (consultas read-only). El COGS sale de los
// snapshots de costo por línea de venta, nunca del precio de compra vigente.
type SummaryUseCase struct {
	reportRepo repository.ReportRepository
	cache      SummaryCache
	cacheTTL   time.Duration
}

// NewSummaryUseCase construye el caso de uso. cache puede ser nil.
func NewSummaryUseCase(reportRepo repository.ReportRepository, cache SummaryCache, cacheTTL time.Duration) *SummaryUseCase {
	return &SummaryUseCase{reportRepo: reportRepo, cache: cache, cacheTTL: cacheTTL}
}

// GetSummary construye el ReportSummaryDTO del rango [from, to].
//
// Cuatro consultas en paralelo:
//  1. GetSalesTotals            → Ingresos + Costo
//  2. GetLossTotal              → Pérdidas
//  3. GetSalesByPaymentMethod   → PorMetodo
//  4. GetDailySales             → PorDia
func (uc *SummaryUseCase) GetSummary(ctx context.Context, from, to time.Time) (*dto.ReportSummaryDTO, error) {
	cacheKey := fmt.Sprintf("reportes:resumen:%s:%s", from.Format(dateLayout), to.Format(dateLayout))
	if uc.cache != nil {
		if cached, ok, err := uc.cache.Get(ctx, cacheKey); err == nil && ok {
			return cached, nil
		}
	}

	type totalsResult struct {
		revenue decimal.Decimal
		cogs    decimal.Decimal
		err     error
	}
	type lossResult struct {
		total decimal.Decimal
		err   error
	}
	type methodsResult struct {
		methods []repository.PaymentMethodTotal
		err     error
	}
	type dailyResult struct {
		points []repository.DailySalesPoint
		err    error
	}

	totalsCh := make(chan totalsResult, 1)
	lossCh := make(chan lossResult, 1)
	methodsCh := make(chan methodsResult, 1)
	dailyCh := make(chan dailyResult, 1)

	go func() {
		rev, cogs, err := uc.reportRepo.GetSalesTotals(ctx, from, to)
		totalsCh <- totalsResult{rev, cogs, err}
	}()
	go func() {
		total, err := uc.reportRepo.GetLossTotal(ctx, from, to)
		lossCh <- lossResult{total, err}
	}()
	go func() {
		methods, err := uc.reportRepo.GetSalesByPaymentMethod(ctx, from, to)
		methodsCh <- methodsResult{methods, err}
	}()
	go func() {
		points, err := uc.reportRepo.GetDailySales(ctx, from, to)
		dailyCh <- dailyResult{points, err}
	}()

	totals := <-totalsCh
	loss := <-lossCh
	methods := <-methodsCh
	daily := <-dailyCh

	if totals.err != nil {
		return nil, fmt.Errorf("reporte: totales de venta: %w", totals.err)
	}
	if loss.err != nil {
		return nil, fmt.Errorf("reporte: mermas: %w", loss.err)
	}
	if methods.err != nil {
		return nil, fmt.Errorf("reporte: métodos de pago: %w", methods.err)
	}
	if daily.err != nil {
		return nil, fmt.Errorf("reporte: serie diaria: %w", daily.err)
	}

	summary := &dto.ReportSummaryDTO{
		Desde:    from.Format(dateLayout),
		Hasta:    to.Format(dateLayout),
		Ingresos: totals.revenue.Round(2),
		Costo:    totals.cogs.Round(2),
		Perdidas: loss.total.Round(2),
		Ganancia: totals.revenue.Sub(totals.cogs).Sub(loss.total).Round(2),
	}
	for _, m := range methods.methods {
		summary.PorMetodo = append(summary.PorMetodo, dto.PaymentMethodDTO{
			Metodo: m.Method,
			Ventas: m.Count,
			Total:  m.Total.Round(2),
		})
	}
	for _, p := range daily.points {
		summary.PorDia = append(summary.PorDia, dto.DailySalesPointDTO{
			Fecha:    p.Day.Format(dateLayout),
			Ventas:   p.Revenue.Round(2),
			Ganancia: p.Profit.Round(2),
		})
	}

	if uc.cache != nil {
		_ = uc.cache.Set(ctx, cacheKey, summary, uc.cacheTTL)
	}
	return summary, nil
}
