package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo read-only aggregate queries for the dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository builds the adapter.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountProducts returns the catalog size.
func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM products`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// CountMovementsByType returns how many movements of one type exist.
func (r *AnalyticsRepo) CountMovementsByType(ctx context.Context, movementType string) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM stock_movements WHERE type = $1`, movementType).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// MovementSeries aggregates moved quantity per time bucket since the given
// instant. bucket is a date_trunc unit: day, week, month or year.
func (r *AnalyticsRepo) MovementSeries(ctx context.Context, movementType string, since time.Time, bucket string) ([]repository.SeriesPoint, error) {
	// bucket comes from a closed set in the use case, never from user input.
	query := fmt.Sprintf(`
		SELECT date_trunc('%s', created_at) AS bucket, COALESCE(sum(quantity), 0)
		FROM stock_movements
		WHERE type = $1 AND created_at >= $2
		GROUP BY bucket ORDER BY bucket`, bucket)
	rows, err := r.q.Query(ctx, query, movementType, since)
	if err != nil {
		return nil, fmt.Errorf("movement series: %w", err)
	}
	defer rows.Close()
	var points []repository.SeriesPoint
	for rows.Next() {
		var p repository.SeriesPoint
		if err := rows.Scan(&p.Bucket, &p.TotalQuantity); err != nil {
			return nil, fmt.Errorf("scan series point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
