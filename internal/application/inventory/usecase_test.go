package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

type movementFixture struct {
	uc       *inventory.MovementUseCase
	stock    *fakeStockRepo
	movement *fakeMovementRepo
}

// newMovementFixture wires a movement engine over in-memory stores with
// product p1 and warehouses w1, w2.
func newMovementFixture() *movementFixture {
	stock := newFakeStockRepo()
	movement := &fakeMovementRepo{}
	requests := newFakeRequestRepo()
	tx := &fakeTxRunner{stockRepo: stock, movementRepo: movement, requestRepo: requests}
	uc := inventory.NewMovementUseCase(tx, movement, newFakeProductRepo("p1"), newFakeWarehouseRepo("w1", "w2"))
	return &movementFixture{uc: uc, stock: stock, movement: movement}
}

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestTransferToSale_MovesWarehouseStockToFloor(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)

	mov, err := f.uc.TransferToSale(context.Background(), inventory.MovementInput{
		ProductID:   "p1",
		WarehouseID: "w1",
		Quantity:    qty(30),
		Reference:   "ST-001",
		ActorID:     "u1",
	})
	require.NoError(t, err)
	require.NotNil(t, mov)

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(70)),
		"warehouse stock must drop to 70")
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationSalesFloor).Equal(qty(30)),
		"sales floor must rise to 30")
	require.Len(t, f.movement.movements, 1)
	assert.Equal(t, entity.MovementTransferToSale, f.movement.movements[0].Type)
	assert.Equal(t, "ST-001", f.movement.movements[0].Reference)
}

func TestRecordSale_ConsumesFloorOnly(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 70)
	f.stock.set("p1", "w1", entity.LocationSalesFloor, 20)

	_, err := f.uc.RecordSale(context.Background(), inventory.MovementInput{
		ProductID:   "p1",
		WarehouseID: "w1",
		Quantity:    qty(10),
		Reference:   "SIV-100",
		ActorID:     "u1",
	})
	require.NoError(t, err)

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationSalesFloor).Equal(qty(10)),
		"sale consumes the sales floor")
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(70)),
		"backroom stock is untouched by a sale")
}

func TestRestockFromSale_ReturnsFloorToWarehouse(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 70)
	f.stock.set("p1", "w1", entity.LocationSalesFloor, 10)

	_, err := f.uc.RestockFromSale(context.Background(), inventory.MovementInput{
		ProductID:   "p1",
		WarehouseID: "w1",
		Quantity:    qty(10),
		Reference:   "ST-002",
		ActorID:     "u1",
	})
	require.NoError(t, err)

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationSalesFloor).Equal(qty(0)))
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(80)))
}

func TestTransferToSale_InsufficientStockChangesNothing(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)

	_, err := f.uc.TransferToSale(context.Background(), inventory.MovementInput{
		ProductID:   "p1",
		WarehouseID: "w1",
		Quantity:    qty(150),
		Reference:   "ST-003",
		ActorID:     "u1",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(100)),
		"a failed transfer must leave the source untouched")
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationSalesFloor).Equal(qty(0)))
	assert.Empty(t, f.movement.movements, "no movement record on failure")
}

func TestRecordSale_OversellRejected(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationSalesFloor, 5)

	_, err := f.uc.RecordSale(context.Background(), inventory.MovementInput{
		ProductID:   "p1",
		WarehouseID: "w1",
		Quantity:    qty(6),
		Reference:   "SIV-101",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationSalesFloor).Equal(qty(5)))
}

func TestMovementInput_Validation(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)

	cases := []struct {
		name string
		in   inventory.MovementInput
	}{
		{"zero quantity", inventory.MovementInput{ProductID: "p1", WarehouseID: "w1", Quantity: qty(0), Reference: "ST-1"}},
		{"negative quantity", inventory.MovementInput{ProductID: "p1", WarehouseID: "w1", Quantity: qty(-3), Reference: "ST-1"}},
		{"fractional quantity", inventory.MovementInput{ProductID: "p1", WarehouseID: "w1", Quantity: decimal.NewFromFloat(2.5), Reference: "ST-1"}},
		{"missing reference", inventory.MovementInput{ProductID: "p1", WarehouseID: "w1", Quantity: qty(1)}},
		{"missing product", inventory.MovementInput{WarehouseID: "w1", Quantity: qty(1), Reference: "ST-1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.TransferToSale(context.Background(), tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	_, err := f.uc.TransferToSale(context.Background(), inventory.MovementInput{
		ProductID: "p-missing", WarehouseID: "w1", Quantity: qty(1), Reference: "ST-1",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "unknown product")
}

func TestSendToWarehouse_MovesBetweenBackrooms(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)

	mov, err := f.uc.SendToWarehouse(context.Background(), inventory.SendInput{
		ProductID:           "p1",
		FromWarehouseID:     "w1",
		ToWarehouseID:       "w2",
		Quantity:            qty(40),
		StockTransferNumber: "ST-010",
		ActorID:             "u1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MovementWarehouseSend, mov.Type)

	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(60)))
	assert.True(t, f.stock.quantity("p1", "w2", entity.LocationWarehouse).Equal(qty(40)))
}

func TestSendToWarehouse_SameWarehouseRejected(t *testing.T) {
	f := newMovementFixture()
	f.stock.set("p1", "w1", entity.LocationWarehouse, 100)

	_, err := f.uc.SendToWarehouse(context.Background(), inventory.SendInput{
		ProductID:           "p1",
		FromWarehouseID:     "w1",
		ToWarehouseID:       "w1",
		Quantity:            qty(10),
		StockTransferNumber: "ST-011",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddStock_CreditsBackroom(t *testing.T) {
	f := newMovementFixture()

	require.NoError(t, f.uc.AddStock(context.Background(), "p1", "w1", qty(25)))
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(25)))

	require.NoError(t, f.uc.AddStock(context.Background(), "p1", "w1", qty(5)))
	assert.True(t, f.stock.quantity("p1", "w1", entity.LocationWarehouse).Equal(qty(30)))
}

func TestList_RejectsUnknownType(t *testing.T) {
	f := newMovementFixture()
	_, err := f.uc.List("teleport", "", 20, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
