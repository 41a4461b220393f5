package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// WarehouseUseCase warehouse catalog operations.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository, stockRepo repository.StockRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo, stockRepo: stockRepo}
}

// Create registers a new warehouse.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.Location == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	wh := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.Create(wh); err != nil {
		return nil, err
	}
	return toWarehouseResponse(wh, nil), nil
}

// List returns warehouses with pagination.
func (uc *WarehouseUseCase) List(limit, offset int) ([]*dto.WarehouseResponse, error) {
	list, err := uc.warehouseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WarehouseResponse, 0, len(list))
	for _, wh := range list {
		out = append(out, toWarehouseResponse(wh, nil))
	}
	return out, nil
}

// Detail returns one warehouse and its backroom stock rows.
func (uc *WarehouseUseCase) Detail(id string) (*dto.WarehouseResponse, error) {
	wh, err := uc.warehouseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	stocks, err := uc.stockRepo.ListByWarehouse(id, entity.LocationWarehouse)
	if err != nil {
		return nil, err
	}
	return toWarehouseResponse(wh, stocks), nil
}

func toWarehouseResponse(wh *entity.Warehouse, stocks []*entity.Stock) *dto.WarehouseResponse {
	resp := &dto.WarehouseResponse{
		ID:        wh.ID,
		Name:      wh.Name,
		Location:  wh.Location,
		CreatedAt: wh.CreatedAt,
	}
	for _, s := range stocks {
		resp.Stock = append(resp.Stock, dto.StockResponse{
			ProductID:   s.ProductID,
			WarehouseID: s.WarehouseID,
			Location:    s.Location,
			Quantity:    s.Quantity,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return resp
}
