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

// RequestUseCase manages stock requests between warehouses.
//
// State machine: pending -> approved or pending -> rejected, both terminal.
// Approval executes the warehouse send in the same transaction, so an approval
// that cannot be fulfilled (insufficient stock at the source) commits nothing:
// the request stays pending and the caller sees ErrInsufficientStock.
type RequestUseCase struct {
	txRunner      RequestTxRunner
	requestRepo   repository.ProductRequestRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
}

// NewRequestUseCase builds the use case.
func NewRequestUseCase(
	txRunner RequestTxRunner,
	requestRepo repository.ProductRequestRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
) *RequestUseCase {
	return &RequestUseCase{
		txRunner:      txRunner,
		requestRepo:   requestRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
	}
}

// CreateInput input for a new stock request. BankSlip is the stored
// proof-of-payment image reference.
type CreateInput struct {
	ProductID       string
	Quantity        decimal.Decimal
	FromWarehouseID string
	ToWarehouseID   string
	BankSlip        string
	RequestedBy     string
}

// Create registers a pending request from the actor's warehouse.
func (uc *RequestUseCase) Create(ctx context.Context, in CreateInput) (*entity.ProductRequest, error) {
	if in.ProductID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" {
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
	req := &entity.ProductRequest{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		Quantity:        in.Quantity,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   in.ToWarehouseID,
		BankSlip:        in.BankSlip,
		Status:          entity.RequestPending,
		RequestedBy:     in.RequestedBy,
		CreatedAt:       time.Now(),
	}
	if err := uc.requestRepo.Create(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Approve transitions a pending request to approved and moves the stock from
// the supplying warehouse to the requesting one. A resolved request rejects any
// further resolution with ErrInvalidStateTransition.
func (uc *RequestUseCase) Approve(ctx context.Context, requestID, resolverID string) (*entity.ProductRequest, error) {
	var resolved *entity.ProductRequest
	err := uc.txRunner.RunRequest(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		requestRepo repository.ProductRequestRepository,
	) error {
		req, err := requestRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Resolved() {
			return domain.ErrInvalidStateTransition
		}

		now := time.Now()
		mov := &entity.StockMovement{
			ID:              uuid.New().String(),
			Type:            entity.MovementWarehouseSend,
			ProductID:       req.ProductID,
			Quantity:        req.Quantity,
			FromWarehouseID: req.FromWarehouseID,
			FromLocation:    entity.LocationWarehouse,
			ToWarehouseID:   req.ToWarehouseID,
			ToLocation:      entity.LocationWarehouse,
			Reference:       "REQ-" + req.ID,
			Evidence:        req.BankSlip,
			ActorID:         resolverID,
			CreatedAt:       now,
		}
		if err := Apply(movRepo, stockRepo, mov); err != nil {
			return err
		}

		req.Status = entity.RequestApproved
		req.ResolvedBy = resolverID
		req.ResolvedAt = &now
		if err := requestRepo.UpdateStatus(req); err != nil {
			return err
		}
		resolved = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// Reject transitions a pending request to rejected. No stock effect.
func (uc *RequestUseCase) Reject(ctx context.Context, requestID, resolverID string) (*entity.ProductRequest, error) {
	var resolved *entity.ProductRequest
	err := uc.txRunner.RunRequest(ctx, func(
		_ repository.StockMovementRepository,
		_ repository.StockRepository,
		requestRepo repository.ProductRequestRepository,
	) error {
		req, err := requestRepo.GetForUpdate(requestID)
		if err != nil {
			return err
		}
		if req == nil {
			return domain.ErrNotFound
		}
		if req.Resolved() {
			return domain.ErrInvalidStateTransition
		}
		now := time.Now()
		req.Status = entity.RequestRejected
		req.ResolvedBy = resolverID
		req.ResolvedAt = &now
		if err := requestRepo.UpdateStatus(req); err != nil {
			return err
		}
		resolved = req
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

// List returns requests filtered by status and/or warehouse.
func (uc *RequestUseCase) List(status, warehouseID string, limit, offset int) ([]*entity.ProductRequest, error) {
	return uc.requestRepo.List(status, warehouseID, limit, offset)
}
