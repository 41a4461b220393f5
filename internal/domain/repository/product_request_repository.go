package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// ProductRequestRepository persistence port for stock requests between warehouses.
// GetForUpdate locks the row so a resolution decision is race-free.
type ProductRequestRepository interface {
	Create(request *entity.ProductRequest) error
	GetByID(id string) (*entity.ProductRequest, error)
	GetForUpdate(id string) (*entity.ProductRequest, error)
	UpdateStatus(request *entity.ProductRequest) error
	List(status string, warehouseID string, limit, offset int) ([]*entity.ProductRequest, error)
}
