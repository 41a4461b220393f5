package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// WarehouseRepository persistence port for warehouses.
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	Update(warehouse *entity.Warehouse) error
	List(limit, offset int) ([]*entity.Warehouse, error)
}
