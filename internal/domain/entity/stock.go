package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock locations within a warehouse.
const (
	LocationWarehouse  = "warehouse"   // backroom stock
	LocationSalesFloor = "sales_floor" // inventory available for sale
)

// Stock is the current quantity of a product at one location of a warehouse.
// A row is identified by (product, warehouse, location).
type Stock struct {
	ProductID   string
	WarehouseID string
	Location    string // warehouse | sales_floor
	Quantity    decimal.Decimal
	UpdatedAt   time.Time
}
