package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddProductRequest multipart form fields for product creation.
// The GRN image file travels in the same request under "grnImage".
type AddProductRequest struct {
	Name        string `form:"name"`
	Category    string `form:"category"`
	Quantity    string `form:"quantity"`
	Unit        string `form:"unit"`
	UnitPrice   string `form:"unitPrice"`
	Description string `form:"description"`
	Barcode     string `form:"barcode"`
	WarehouseID string `form:"warehouseId"`
	GRNNumber   string `form:"grnNumber"`
}

// ProductResponse catalog item with its current quantities.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Description    string          `json:"description,omitempty"`
	Barcode        string          `json:"barcode,omitempty"`
	WarehouseID    string          `json:"warehouse_id"`
	GRNNumber      string          `json:"grn_number,omitempty"`
	GRNImage       string          `json:"grn_image,omitempty"`
	WarehouseQty   decimal.Decimal `json:"warehouse_quantity"`
	SalesFloorQty  decimal.Decimal `json:"sales_floor_quantity"`
	CreatedAt      time.Time       `json:"created_at"`
}

// StockResponse one stock row (product at a location).
type StockResponse struct {
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	Location    string          `json:"location"`
	Quantity    decimal.Decimal `json:"quantity"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
