package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// MovementUseCase is the stock-movement engine. Every transition between
// warehouse stock, sales-floor stock and a sale runs here, transactionally,
// with row locks (SELECT FOR UPDATE) and a single conservation rule: the source
// location is decremented by exactly the amount the destination is incremented,
// and no quantity ever goes negative. Handlers never touch stock directly.
type MovementUseCase struct {
	txRunner      TxRunner
	movementRepo  repository.StockMovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewMovementUseCase builds the engine.
func NewMovementUseCase(
	txRunner TxRunner,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:      txRunner,
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// MovementInput input for transfer-to-sale, restock-from-sale and record-sale.
// Reference carries the stock-transfer number (transfers/restocks) or the SIV
// number (sales). Evidence is the stored slip image reference, already saved
// from the same multipart request.
type MovementInput struct {
	ProductID   string
	WarehouseID string
	Quantity    decimal.Decimal
	Reference   string
	Evidence    string
	Remark      string
	ActorID     string
}

// SendInput input for a warehouse-to-warehouse send.
type SendInput struct {
	ProductID           string
	FromWarehouseID     string
	ToWarehouseID       string
	Quantity            decimal.Decimal
	StockTransferNumber string
	Evidence            string
	Remark              string
	ActorID             string
}

// validQuantity: positive whole number of units.
func validQuantity(q decimal.Decimal) bool {
	return q.GreaterThan(decimal.Zero) && q.IsInteger()
}

// TransferToSale moves quantity from warehouse stock to the sales floor.
// Precondition: quantity <= current warehouse stock, otherwise ErrInsufficientStock.
func (uc *MovementUseCase) TransferToSale(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if err := uc.checkMovementInput(in); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:              uuid.New().String(),
		Type:            entity.MovementTransferToSale,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		FromWarehouseID: in.WarehouseID,
		FromLocation:    entity.LocationWarehouse,
		ToWarehouseID:   in.WarehouseID,
		ToLocation:      entity.LocationSalesFloor,
		Reference:       in.Reference,
		Evidence:        in.Evidence,
		Remark:          in.Remark,
		ActorID:         in.ActorID,
		CreatedAt:       time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, stockRepo repository.StockRepository) error {
		return Apply(movRepo, stockRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RestockFromSale moves quantity from the sales floor back to warehouse stock.
// Symmetric to TransferToSale with source and destination swapped.
func (uc *MovementUseCase) RestockFromSale(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if err := uc.checkMovementInput(in); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:              uuid.New().String(),
		Type:            entity.MovementRestockFromSale,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		FromWarehouseID: in.WarehouseID,
		FromLocation:    entity.LocationSalesFloor,
		ToWarehouseID:   in.WarehouseID,
		ToLocation:      entity.LocationWarehouse,
		Reference:       in.Reference,
		Evidence:        in.Evidence,
		Remark:          in.Remark,
		ActorID:         in.ActorID,
		CreatedAt:       time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, stockRepo repository.StockRepository) error {
		return Apply(movRepo, stockRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// RecordSale consumes quantity from the sales floor. There is no destination:
// this is the one irreversible transition in the model.
func (uc *MovementUseCase) RecordSale(ctx context.Context, in MovementInput) (*entity.StockMovement, error) {
	if err := uc.checkMovementInput(in); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:              uuid.New().String(),
		Type:            entity.MovementSale,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		FromWarehouseID: in.WarehouseID,
		FromLocation:    entity.LocationSalesFloor,
		Reference:       in.Reference,
		Evidence:        in.Evidence,
		Remark:          in.Remark,
		ActorID:         in.ActorID,
		CreatedAt:       time.Now(),
	}
	err := uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, stockRepo repository.StockRepository) error {
		return Apply(movRepo, stockRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// SendToWarehouse moves quantity between the backroom stock of two warehouses.
func (uc *MovementUseCase) SendToWarehouse(ctx context.Context, in SendInput) (*entity.StockMovement, error) {
	if in.ProductID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" || in.StockTransferNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromWarehouseID == in.ToWarehouseID || !validQuantity(in.Quantity) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	fromWh, _ := uc.warehouseRepo.GetByID(in.FromWarehouseID)
	toWh, _ := uc.warehouseRepo.GetByID(in.ToWarehouseID)
	if fromWh == nil || toWh == nil {
		return nil, domain.ErrNotFound
	}
	mov := &entity.StockMovement{
		ID:              uuid.New().String(),
		Type:            entity.MovementWarehouseSend,
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		FromWarehouseID: in.FromWarehouseID,
		FromLocation:    entity.LocationWarehouse,
		ToWarehouseID:   in.ToWarehouseID,
		ToLocation:      entity.LocationWarehouse,
		Reference:       in.StockTransferNumber,
		Evidence:        in.Evidence,
		Remark:          in.Remark,
		ActorID:         in.ActorID,
		CreatedAt:       time.Now(),
	}
	err = uc.txRunner.Run(ctx, func(movRepo repository.StockMovementRepository, stockRepo repository.StockRepository) error {
		return Apply(movRepo, stockRepo, mov)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// checkMovementInput validates fields shared by the single-warehouse movements
// and that the product and warehouse exist.
func (uc *MovementUseCase) checkMovementInput(in MovementInput) error {
	if in.ProductID == "" || in.WarehouseID == "" || in.Reference == "" {
		return domain.ErrInvalidInput
	}
	if !validQuantity(in.Quantity) {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	wh, _ := uc.warehouseRepo.GetByID(in.WarehouseID)
	if wh == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Apply executes one movement against tx-bound repositories: locks the source
// row, enforces quantity <= source, decrements it, increments the destination
// (if any) and appends the movement record. Callers provide the transaction;
// nothing is visible unless it commits. Exported so the request use case can
// run a send inside its own resolution transaction.
func Apply(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	mov *entity.StockMovement,
) error {
	now := mov.CreatedAt

	source, err := stockRepo.GetForUpdate(mov.ProductID, mov.FromWarehouseID, mov.FromLocation)
	if err != nil {
		return err
	}
	if source.Quantity.LessThan(mov.Quantity) {
		return domain.ErrInsufficientStock
	}
	source.Quantity = source.Quantity.Sub(mov.Quantity)
	source.UpdatedAt = now
	if err := stockRepo.Upsert(source); err != nil {
		return err
	}

	if mov.ToWarehouseID != "" {
		dest, err := stockRepo.GetForUpdate(mov.ProductID, mov.ToWarehouseID, mov.ToLocation)
		if err != nil {
			return err
		}
		dest.Quantity = dest.Quantity.Add(mov.Quantity)
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}
	}

	return movRepo.Create(mov)
}

// List reads the movement log by type, optionally filtered to movements that
// touch one warehouse on either end.
func (uc *MovementUseCase) List(movementType, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	switch movementType {
	case entity.MovementTransferToSale, entity.MovementRestockFromSale,
		entity.MovementSale, entity.MovementWarehouseSend:
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.movementRepo.ListByType(movementType, warehouseID, limit, offset)
}

// AddStock credits newly received product quantity to a warehouse's backroom
// stock. Used by product creation (GRN intake) and the seeder.
func (uc *MovementUseCase) AddStock(ctx context.Context, productID, warehouseID string, qty decimal.Decimal) error {
	if !validQuantity(qty) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(_ repository.StockMovementRepository, stockRepo repository.StockRepository) error {
		stock, err := stockRepo.GetForUpdate(productID, warehouseID, entity.LocationWarehouse)
		if err != nil {
			return err
		}
		stock.Quantity = stock.Quantity.Add(qty)
		stock.UpdatedAt = time.Now()
		return stockRepo.Upsert(stock)
	})
}
