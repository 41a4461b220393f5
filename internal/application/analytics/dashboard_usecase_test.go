package analytics_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// The series queries run concurrently, so the fake guards its bookkeeping.
type fakeAnalyticsRepo struct {
	mu           sync.Mutex
	productCount int
	typeCounts   map[string]int
	series       map[string][]repository.SeriesPoint
	seenBuckets  []string
}

func (r *fakeAnalyticsRepo) CountProducts(context.Context) (int, error) {
	return r.productCount, nil
}

func (r *fakeAnalyticsRepo) CountMovementsByType(_ context.Context, movementType string) (int, error) {
	return r.typeCounts[movementType], nil
}

func (r *fakeAnalyticsRepo) MovementSeries(_ context.Context, movementType string, _ time.Time, bucket string) ([]repository.SeriesPoint, error) {
	r.mu.Lock()
	r.seenBuckets = append(r.seenBuckets, bucket)
	r.mu.Unlock()
	return r.series[movementType], nil
}

func TestGetCounts_AggregatesAllCards(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		productCount: 12,
		typeCounts: map[string]int{
			entity.MovementSale:            7,
			entity.MovementTransferToSale:  4,
			entity.MovementRestockFromSale: 2,
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	counts, err := uc.GetCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, counts.ProductCount)
	assert.Equal(t, 7, counts.SalesCount)
	assert.Equal(t, 4, counts.TransfersToSaleCount)
	assert.Equal(t, 2, counts.RestocksFromSaleCount)
}

func TestGetStockTransferSeries_BucketsByPeriod(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		series: map[string][]repository.SeriesPoint{
			entity.MovementTransferToSale: {
				{Bucket: day, TotalQuantity: decimal.NewFromInt(30)},
			},
			entity.MovementRestockFromSale: {
				{Bucket: day, TotalQuantity: decimal.NewFromInt(10)},
			},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetStockTransferSeries(context.Background(), "daily")
	require.NoError(t, err)
	assert.Equal(t, "daily", out.Period)
	require.Len(t, out.TransfersToSale, 1)
	assert.Equal(t, "2024-05-01", out.TransfersToSale[0].Date)
	assert.True(t, out.TransfersToSale[0].TotalQuantity.Equal(decimal.NewFromInt(30)))
	require.Len(t, out.RestocksFromSale, 1)
	assert.ElementsMatch(t, []string{"day", "day"}, repo.seenBuckets)
}

func TestGetStockTransferSeries_PeriodMapping(t *testing.T) {
	for period, bucket := range map[string]string{
		"daily":   "day",
		"weekly":  "week",
		"monthly": "month",
		"yearly":  "year",
	} {
		repo := &fakeAnalyticsRepo{}
		uc := analytics.NewDashboardUseCase(repo)
		_, err := uc.GetStockTransferSeries(context.Background(), period)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{bucket, bucket}, repo.seenBuckets, "period %s", period)
	}
}

func TestGetStockTransferSeries_UnknownPeriod(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})
	_, err := uc.GetStockTransferSeries(context.Background(), "hourly")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
