package inventory_test

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// In-memory repositories backing the use case tests. The fake tx runner
// snapshots the stores before running the closure and restores them on error,
// mimicking a rollback.

func stockKey(productID, warehouseID, location string) string {
	return productID + "|" + warehouseID + "|" + location
}

type fakeStockRepo struct {
	rows map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{rows: make(map[string]*entity.Stock)}
}

func (r *fakeStockRepo) set(productID, warehouseID, location string, qty int64) {
	r.rows[stockKey(productID, warehouseID, location)] = &entity.Stock{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Location:    location,
		Quantity:    decimal.NewFromInt(qty),
	}
}

func (r *fakeStockRepo) quantity(productID, warehouseID, location string) decimal.Decimal {
	if s, ok := r.rows[stockKey(productID, warehouseID, location)]; ok {
		return s.Quantity
	}
	return decimal.Zero
}

func (r *fakeStockRepo) Get(productID, warehouseID, location string) (*entity.Stock, error) {
	if s, ok := r.rows[stockKey(productID, warehouseID, location)]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Location: location}, nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID, location string) (*entity.Stock, error) {
	return r.Get(productID, warehouseID, location)
}

func (r *fakeStockRepo) Upsert(stock *entity.Stock) error {
	cp := *stock
	r.rows[stockKey(stock.ProductID, stock.WarehouseID, stock.Location)] = &cp
	return nil
}

func (r *fakeStockRepo) ListByWarehouse(warehouseID, location string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.rows {
		if s.WarehouseID == warehouseID && s.Location == location {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) snapshot() map[string]*entity.Stock {
	snap := make(map[string]*entity.Stock, len(r.rows))
	for k, v := range r.rows {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(mov *entity.StockMovement) error {
	cp := *mov
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeMovementRepo) ListByType(movementType, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.Type != movementType {
			continue
		}
		if warehouseID != "" && m.FromWarehouseID != warehouseID && m.ToWarehouseID != warehouseID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(ids ...string) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, id := range ids {
		r.products[id] = &entity.Product{ID: id, Name: "product " + id}
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByWarehouse(warehouseID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.WarehouseID == warehouseID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func newFakeWarehouseRepo(ids ...string) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[string]*entity.Warehouse)}
	for _, id := range ids {
		r.warehouses[id] = &entity.Warehouse{ID: id, Name: "warehouse " + id}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	r.warehouses[w.ID] = w
	return nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		out = append(out, w)
	}
	return out, nil
}

type fakeRequestRepo struct {
	requests map[string]*entity.ProductRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*entity.ProductRequest)}
}

func (r *fakeRequestRepo) Create(req *entity.ProductRequest) error {
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) GetByID(id string) (*entity.ProductRequest, error) {
	if req, ok := r.requests[id]; ok {
		cp := *req
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRequestRepo) GetForUpdate(id string) (*entity.ProductRequest, error) {
	return r.GetByID(id)
}

func (r *fakeRequestRepo) UpdateStatus(req *entity.ProductRequest) error {
	cp := *req
	r.requests[req.ID] = &cp
	return nil
}

func (r *fakeRequestRepo) List(status, warehouseID string, limit, offset int) ([]*entity.ProductRequest, error) {
	var out []*entity.ProductRequest
	for _, req := range r.requests {
		if status != "" && req.Status != status {
			continue
		}
		if warehouseID != "" && req.FromWarehouseID != warehouseID && req.ToWarehouseID != warehouseID {
			continue
		}
		cp := *req
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeRequestRepo) snapshot() map[string]*entity.ProductRequest {
	snap := make(map[string]*entity.ProductRequest, len(r.requests))
	for k, v := range r.requests {
		cp := *v
		snap[k] = &cp
	}
	return snap
}

// fakeTxRunner rolls back the in-memory stores when the closure fails.
type fakeTxRunner struct {
	stockRepo    *fakeStockRepo
	movementRepo *fakeMovementRepo
	requestRepo  *fakeRequestRepo
}

func (tx *fakeTxRunner) Run(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
) error) error {
	stockSnap := tx.stockRepo.snapshot()
	movCount := len(tx.movementRepo.movements)
	if err := fn(tx.movementRepo, tx.stockRepo); err != nil {
		tx.stockRepo.rows = stockSnap
		tx.movementRepo.movements = tx.movementRepo.movements[:movCount]
		return err
	}
	return nil
}

func (tx *fakeTxRunner) RunRequest(_ context.Context, fn func(
	movRepo repository.StockMovementRepository,
	stockRepo repository.StockRepository,
	requestRepo repository.ProductRequestRepository,
) error) error {
	stockSnap := tx.stockRepo.snapshot()
	requestSnap := tx.requestRepo.snapshot()
	movCount := len(tx.movementRepo.movements)
	if err := fn(tx.movementRepo, tx.stockRepo, tx.requestRepo); err != nil {
		tx.stockRepo.rows = stockSnap
		tx.requestRepo.requests = requestSnap
		tx.movementRepo.movements = tx.movementRepo.movements[:movCount]
		return err
	}
	return nil
}
