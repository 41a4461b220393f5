package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// StockRepository persistence port for per-location stock rows.
// Get/GetForUpdate return a zero-quantity row when none exists yet.
type StockRepository interface {
	Get(productID, warehouseID, location string) (*entity.Stock, error)
	GetForUpdate(productID, warehouseID, location string) (*entity.Stock, error)
	Upsert(stock *entity.Stock) error
	ListByWarehouse(warehouseID, location string) ([]*entity.Stock, error)
}
