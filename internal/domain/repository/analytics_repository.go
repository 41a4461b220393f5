package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SeriesPoint is one time bucket of aggregated movement quantity.
// Produced by the DB; the dashboard use case turns it into DTOs.
type SeriesPoint struct {
	Bucket        time.Time
	TotalQuantity decimal.Decimal
}

// AnalyticsRepository read-only aggregate queries for the dashboard.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountMovementsByType(ctx context.Context, movementType string) (int, error)
	MovementSeries(ctx context.Context, movementType string, since time.Time, bucket string) ([]SeriesPoint, error)
}
