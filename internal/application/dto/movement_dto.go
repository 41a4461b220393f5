package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferToSaleRequest multipart form fields for a warehouse -> sales floor
// transfer. The evidence image travels in the same request under
// "stockTransferImage" so quantity and slip are applied atomically.
type TransferToSaleRequest struct {
	ProductID           string `form:"productId"`
	WarehouseID         string `form:"warehouseId"`
	Quantity            string `form:"quantityToTransfer"`
	StockTransferNumber string `form:"stockTransferNumber"`
	Remark              string `form:"remark"`
}

// RestockFromSaleRequest multipart form fields for a sales floor -> warehouse
// restock. Same field names as the transfer form.
type RestockFromSaleRequest struct {
	ProductID           string `form:"productId"`
	WarehouseID         string `form:"warehouseId"`
	Quantity            string `form:"quantityToTransfer"`
	StockTransferNumber string `form:"stockTransferNumber"`
	Remark              string `form:"remark"`
}

// RecordSaleRequest multipart form fields for recording a sale. The SIV image
// travels under "sivImage".
type RecordSaleRequest struct {
	ProductID   string `form:"productId"`
	WarehouseID string `form:"warehouseId"`
	Quantity    string `form:"quantitySold"`
	SIVNumber   string `form:"sivNumber"`
	Remark      string `form:"remark"`
}

// SendToWarehouseRequest multipart form fields for a warehouse-to-warehouse send.
type SendToWarehouseRequest struct {
	ProductID           string `form:"productId"`
	FromWarehouseID     string `form:"fromWarehouseId"`
	ToWarehouseID       string `form:"toWarehouseId"`
	Quantity            string `form:"quantity"`
	StockTransferNumber string `form:"stockTransferNumber"`
	Remark              string `form:"remark"`
}

// MovementResponse one record of the append-only movement log.
type MovementResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	ProductID       string          `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	FromWarehouseID string          `json:"from_warehouse_id,omitempty"`
	FromLocation    string          `json:"from_location,omitempty"`
	ToWarehouseID   string          `json:"to_warehouse_id,omitempty"`
	ToLocation      string          `json:"to_location,omitempty"`
	Reference       string          `json:"reference"`
	Evidence        string          `json:"evidence,omitempty"`
	Remark          string          `json:"remark,omitempty"`
	ActorID         string          `json:"actor_id"`
	CreatedAt       time.Time       `json:"created_at"`
}
