package usecase

import (
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// UserUseCase user listing for the administration screens.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// List returns all users. superAdmin view.
func (uc *UserUseCase) List(limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

// ListByWarehouse returns the users assigned to one warehouse.
func (uc *UserUseCase) ListByWarehouse(warehouseID string, limit, offset int) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func toUserResponses(users []*entity.User) []*dto.UserResponse {
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, &dto.UserResponse{
			ID:          u.ID,
			FullName:    u.FullName,
			PhoneNumber: u.PhoneNumber,
			Role:        u.Role,
			WarehouseID: u.WarehouseID,
			Status:      u.Status,
			CreatedAt:   u.CreatedAt,
			UpdatedAt:   u.UpdatedAt,
		})
	}
	return out
}
