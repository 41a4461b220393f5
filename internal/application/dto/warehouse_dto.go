package dto

import "time"

// CreateWarehouseRequest superAdmin warehouse creation.
type CreateWarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// WarehouseResponse warehouse with optional contained stock.
type WarehouseResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Stock     []StockResponse `json:"stock,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
