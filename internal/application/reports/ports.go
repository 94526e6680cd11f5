package reports

import (
	"context"
	"time"

	"github.com/puntofresco/puntofresco-api/internal/application/dto"
)

// SummaryCache cachea resúmenes ya calculados (TTL corto). Una implementación
// nil-safe que nunca acierta es válida cuando no hay Redis configurado.
type SummaryCache interface {
	Get(ctx context.Context, key string) (*dto.ReportSummaryDTO, bool, error)
	Set(ctx context.Context, key string, value *dto.ReportSummaryDTO, ttl time.Duration) error
}
