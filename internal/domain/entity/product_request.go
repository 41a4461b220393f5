package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product request statuses. pending -> approved and pending -> rejected are the
// only legal transitions; both are terminal.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// ProductRequest is a warehouse-originated ask for additional stock from another
// warehouse. Approval executes the warehouse send; rejection has no stock effect.
type ProductRequest struct {
	ID              string
	ProductID       string
	Quantity        decimal.Decimal
	FromWarehouseID string // warehouse asked to supply
	ToWarehouseID   string // requesting warehouse
	BankSlip        string // proof-of-payment image reference
	Status          string
	RequestedBy     string
	ResolvedBy      string
	ResolvedAt      *time.Time
	CreatedAt       time.Time
}

// Resolved reports whether the request reached a terminal status.
func (r *ProductRequest) Resolved() bool {
	return r.Status == RequestApproved || r.Status == RequestRejected
}
