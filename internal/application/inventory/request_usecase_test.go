package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

type requestFixture struct {
	uc       *inventory.RequestUseCase
	stock    *fakeStockRepo
	movement *fakeMovementRepo
	requests *fakeRequestRepo
}

func newRequestFixture() *requestFixture {
	stock := newFakeStockRepo()
	movement := &fakeMovementRepo{}
	requests := newFakeRequestRepo()
	tx := &fakeTxRunner{stockRepo: stock, movementRepo: movement, requestRepo: requests}
	uc := inventory.NewRequestUseCase(tx, requests, newFakeProductRepo("p1"), newFakeWarehouseRepo("w1", "w2"))
	return &requestFixture{uc: uc, stock: stock, movement: movement, requests: requests}
}

func (f *requestFixture) pendingRequest(t *testing.T, quantity int64) *entity.ProductRequest {
	t.Helper()
	req, err := f.uc.Create(context.Background(), inventory.CreateInput{
		ProductID:       "p1",
		Quantity:        qty(quantity),
		FromWarehouseID: "w1",
		ToWarehouseID:   "w2",
		RequestedBy:     "u-requester",
	})
	require.NoError(t, err)
	require.Equal(t, entity.RequestPending, req.Status)
	return req
}

func TestApprove_ExecutesWarehouseSend(t *testing.T) {
	f := newRequestFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)
	req := f.pendingRequest(t, 40)

	resolved, err := f.uc.Approve(context.Background(), req.ID, "u-resolver")
	require.NoError(t, err)

	assert.Equal(t, entity.RequestApproved, resolved.Status)
	assert.Equal(t, "u-resolver", resolved.ResolvedBy)
	require.NotNil(t, resolved.ResolvedAt)

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(60)),
		"supplying warehouse loses the quantity")
	assert.True(t, f.stock.quantity("p1", "w2", entity.LocationWarehouse).Equal(qty(40)),
		"requesting warehouse receives it")
	require.Len(t, f.movement.movements, 1)
	assert.Equal(t, entity.MovementWarehouseSend, f.movement.movements[0].Type)
	assert.Equal(t, "REQ-"+req.ID, f.movement.movements[0].Reference)
}

func TestApprove_ResolvedRequestIsTerminal(t *testing.T) {
	f := newRequestFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)
	req := f.pendingRequest(t, 10)

	_, err := f.uc.Approve(context.Background(), req.ID, "u-resolver")
	require.NoError(t, err)

	_, err = f.uc.Approve(context.Background(), req.ID, "u-resolver")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition, "second approve must fail")

	_, err = f.uc.Reject(context.Background(), req.ID, "u-resolver")
	assert.ErrorIs(t, err, domain.ErrInvalidStateTransition, "reject after approve must fail")

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(90)),
		"stock moved exactly once")
}

func TestApprove_InsufficientStockLeavesRequestPending(t *testing.T) {
	f := newRequestFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 5)
	req := f.pendingRequest(t, 40)

	_, err := f.uc.Approve(context.Background(), req.ID, "u-resolver")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	stored, err := f.requests.GetByID(req.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, stored.Status, "request stays pending, nothing committed")
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(5)))
	assert.Empty(t, f.movement.movements)
}

func TestReject_HasNoStockEffect(t *testing.T) {
	f := newRequestFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)
	req := f.pendingRequest(t, 40)

	resolved, err := f.uc.Reject(context.Background(), req.ID, "u-resolver")
	require.NoError(t, err)

	assert.Equal(t, entity.RequestRejected, resolved.Status)
	assert.Equal(t, "u-resolver", resolved.ResolvedBy)
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(100)))
	assert.True(t, f.stock.quantity("p1", "w2", entity.LocationWarehouse).Equal(qty(0)))
	assert.Empty(t, f.movement.movements)
}

func TestResolve_UnknownRequest(t *testing.T) {
	f := newRequestFixture()

	_, err := f.uc.Approve(context.Background(), "missing", "u-resolver")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.uc.Reject(context.Background(), "missing", "u-resolver")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	f := newRequestFixture()

	_, err := f.uc.Create(context.Background(), inventory.CreateInput{
		ProductID: "p1", Quantity: qty(10), FromWarehouseID: "w1", ToWarehouseID: "w1",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "warehouses must differ")

	_, err = f.uc.Create(context.Background(), inventory.CreateInput{
		ProductID: "p1", Quantity: qty(0), FromWarehouseID: "w1", ToWarehouseID: "w2",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity must be positive")

	_, err = f.uc.Create(context.Background(), inventory.CreateInput{
		ProductID: "p-missing", Quantity: qty(10), FromWarehouseID: "w1", ToWarehouseID: "w2",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "product must exist")
}
