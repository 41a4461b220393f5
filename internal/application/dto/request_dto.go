package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequestRequest multipart form fields for a stock request.
// The proof-of-payment slip travels under "bankSlip".
type CreateProductRequestRequest struct {
	ProductID       string `form:"productId"`
	Quantity        string `form:"quantity"`
	FromWarehouseID string `form:"fromWarehouseId"`
}

// ProductRequestResponse one stock request with its status.
type ProductRequestResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	FromWarehouseID string          `json:"from_warehouse_id"`
	ToWarehouseID   string          `json:"to_warehouse_id"`
	BankSlip        string          `json:"bank_slip,omitempty"`
	Status          string          `json:"status"`
	RequestedBy     string          `json:"requested_by"`
	ResolvedBy      string          `json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time      `json:"resolved_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
