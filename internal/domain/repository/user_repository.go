package repository

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// UserRepository persistence port for users.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByPhone(phone string) (*entity.User, error)
	UpdatePassword(id, passwordHash string) error
	List(limit, offset int) ([]*entity.User, error)
	ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.User, error)
}
