package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// StockMovementRepository persistence port for the append-only movement log.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByType(movementType string, warehouseID string, limit, offset int) ([]*entity.StockMovement, error)
}
