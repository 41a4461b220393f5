package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item. Quantities live in Stock per (warehouse, location);
// the GRN fields record the goods-received note captured when the product entered.
type Product struct {
	ID          string
	Name        string
	Category    string
	Unit        string // pcs, box, kg...
	UnitPrice   decimal.Decimal
	Description string
	Barcode     string
	WarehouseID string // warehouse that received the product
	GRNNumber   string
	GRNImage    string // media store reference, optional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
