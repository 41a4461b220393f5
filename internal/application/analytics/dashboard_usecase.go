// Package analytics contains the read-only dashboard aggregation use cases.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// DashboardUseCase builds the dashboard cards and the stock-transfer chart.
//
// Data source: AnalyticsRepository (read-only queries). Display only; nothing
// here mutates stock.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase builds the use case.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetCounts runs the four card queries in parallel.
func (uc *DashboardUseCase) GetCounts(ctx context.Context) (*dto.DashboardCountsDTO, error) {
	type countResult struct {
		n   int
		err error
	}
	productsCh := make(chan countResult, 1)
	salesCh := make(chan countResult, 1)
	transfersCh := make(chan countResult, 1)
	restocksCh := make(chan countResult, 1)

	go func() {
		n, err := uc.analyticsRepo.CountProducts(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovementsByType(ctx, entity.MovementSale)
		salesCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovementsByType(ctx, entity.MovementTransferToSale)
		transfersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountMovementsByType(ctx, entity.MovementRestockFromSale)
		restocksCh <- countResult{n, err}
	}()

	products := <-productsCh
	sales := <-salesCh
	transfers := <-transfersCh
	restocks := <-restocksCh

	for _, r := range []countResult{products, sales, transfers, restocks} {
		if r.err != nil {
			return nil, fmt.Errorf("dashboard counts: %w", r.err)
		}
	}

	return &dto.DashboardCountsDTO{
		ProductCount:          products.n,
		SalesCount:            sales.n,
		TransfersToSaleCount:  transfers.n,
		RestocksFromSaleCount: restocks.n,
	}, nil
}

// GetStockTransferSeries returns transfers-to-sale and restocks-from-sale
// bucketed by the requested period. The two series queries run in parallel.
func (uc *DashboardUseCase) GetStockTransferSeries(ctx context.Context, period string) (*dto.StockTransferSeriesDTO, error) {
	since, bucket, err := periodRange(period, time.Now())
	if err != nil {
		return nil, err
	}

	type seriesResult struct {
		points []repository.SeriesPoint
		err    error
	}
	transfersCh := make(chan seriesResult, 1)
	restocksCh := make(chan seriesResult, 1)

	go func() {
		points, err := uc.analyticsRepo.MovementSeries(ctx, entity.MovementTransferToSale, since, bucket)
		transfersCh <- seriesResult{points, err}
	}()
	go func() {
		points, err := uc.analyticsRepo.MovementSeries(ctx, entity.MovementRestockFromSale, since, bucket)
		restocksCh <- seriesResult{points, err}
	}()

	transfers := <-transfersCh
	restocks := <-restocksCh
	if transfers.err != nil {
		return nil, fmt.Errorf("dashboard series: transfers: %w", transfers.err)
	}
	if restocks.err != nil {
		return nil, fmt.Errorf("dashboard series: restocks: %w", restocks.err)
	}

	return &dto.StockTransferSeriesDTO{
		Period:           period,
		TransfersToSale:  toSeriesDTO(transfers.points),
		RestocksFromSale: toSeriesDTO(restocks.points),
	}, nil
}

// periodRange maps the period to a window start and a date_trunc bucket.
func periodRange(period string, now time.Time) (time.Time, string, error) {
	switch period {
	case "daily":
		return now.AddDate(0, 0, -30), "day", nil
	case "weekly":
		return now.AddDate(0, 0, -7*12), "week", nil
	case "monthly":
		return now.AddDate(0, -12, 0), "month", nil
	case "yearly":
		return now.AddDate(-5, 0, 0), "year", nil
	}
	return time.Time{}, "", domain.ErrInvalidInput
}

func toSeriesDTO(points []repository.SeriesPoint) []dto.SeriesPointDTO {
	out := make([]dto.SeriesPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.SeriesPointDTO{
			Date:          p.Bucket.Format("2006-01-02"),
			TotalQuantity: p.TotalQuantity,
		})
	}
	return out
}
