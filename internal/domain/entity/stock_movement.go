package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock movement types.
const (
	MovementTransferToSale  = "transfer_to_sale"  // warehouse -> sales floor
	MovementRestockFromSale = "restock_from_sale" // sales floor -> warehouse
	MovementSale            = "sale"              // sales floor -> consumed (terminal)
	MovementWarehouseSend   = "warehouse_send"    // warehouse -> another warehouse
)

// StockMovement is the append-only fact of one stock transition. Every movement
// decrements its source by exactly what it adds to its destination; a sale has
// no destination. Reference holds the stock-transfer number or SIV number and
// Evidence the uploaded slip image, both captured with the quantity change.
type StockMovement struct {
	ID              string
	Type            string
	ProductID       string
	Quantity        decimal.Decimal
	FromWarehouseID string
	FromLocation    string
	ToWarehouseID   string // empty for sale
	ToLocation      string // empty for sale
	Reference       string // stock transfer number or SIV number
	Evidence        string // media store reference, optional
	Remark          string
	ActorID         string // user who performed the movement
	CreatedAt       time.Time
}
