package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// ProductUseCase catalog operations. Creation credits the received quantity to
// the warehouse backroom through the movement engine so the stock row and the
// catalog row stay consistent.
type ProductUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	stockRepo     repository.StockRepository
	movements     *inventory.MovementUseCase
}

// NewProductUseCase builds the use case.
func NewProductUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	stockRepo repository.StockRepository,
	movements *inventory.MovementUseCase,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		stockRepo:     stockRepo,
		movements:     movements,
	}
}

// AddInput parsed product creation fields. GRNImage is the stored image reference.
type AddInput struct {
	Name        string
	Category    string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
	Description string
	Barcode     string
	WarehouseID string
	GRNNumber   string
	GRNImage    string
}

// Add creates a product and credits its initial quantity to the warehouse.
func (uc *ProductUseCase) Add(ctx context.Context, in AddInput) (*dto.ProductResponse, error) {
	if in.Name == "" || in.WarehouseID == "" || in.Unit == "" || in.GRNNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Quantity.GreaterThan(decimal.Zero) || !in.Quantity.IsInteger() {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	wh, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Category:    in.Category,
		Unit:        in.Unit,
		UnitPrice:   in.UnitPrice,
		Description: in.Description,
		Barcode:     in.Barcode,
		WarehouseID: in.WarehouseID,
		GRNNumber:   in.GRNNumber,
		GRNImage:    in.GRNImage,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	if err := uc.movements.AddStock(ctx, product.ID, in.WarehouseID, in.Quantity); err != nil {
		return nil, err
	}
	return uc.toResponse(product)
}

// GetByID returns one product with its current quantities.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product)
}

// List returns the catalog with current quantities.
func (uc *ProductUseCase) List(limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(products)
}

// ListByWarehouse returns the catalog of one warehouse.
func (uc *ProductUseCase) ListByWarehouse(warehouseID string, limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.ListByWarehouse(warehouseID, limit, offset)
	if err != nil {
		return nil, err
	}
	return uc.toResponses(products)
}

// SalesFloor returns the sales-floor stock rows of a warehouse.
func (uc *ProductUseCase) SalesFloor(warehouseID string) ([]dto.StockResponse, error) {
	stocks, err := uc.stockRepo.ListByWarehouse(warehouseID, entity.LocationSalesFloor)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, dto.StockResponse{
			ProductID:   s.ProductID,
			WarehouseID: s.WarehouseID,
			Location:    s.Location,
			Quantity:    s.Quantity,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	return out, nil
}

func (uc *ProductUseCase) toResponses(products []*entity.Product) ([]*dto.ProductResponse, error) {
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp, err := uc.toResponse(p)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) (*dto.ProductResponse, error) {
	warehouseStock, err := uc.stockRepo.Get(p.ID, p.WarehouseID, entity.LocationWarehouse)
	if err != nil {
		return nil, err
	}
	floorStock, err := uc.stockRepo.Get(p.ID, p.WarehouseID, entity.LocationSalesFloor)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Unit:          p.Unit,
		UnitPrice:     p.UnitPrice,
		Description:   p.Description,
		Barcode:       p.Barcode,
		WarehouseID:   p.WarehouseID,
		GRNNumber:     p.GRNNumber,
		GRNImage:      p.GRNImage,
		WarehouseQty:  warehouseStock.Quantity,
		SalesFloorQty: floorStock.Quantity,
		CreatedAt:     p.CreatedAt,
	}, nil
}
