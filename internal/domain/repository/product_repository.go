package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// ProductRepository persistence port for the product catalog.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(limit, offset int) ([]*entity.Product, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Product, error)
}
