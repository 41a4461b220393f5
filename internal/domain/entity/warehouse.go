package entity

import "time"

// Warehouse is a physical store location holding backroom stock.
// The sales floor of each warehouse is tracked as a separate stock location.
type Warehouse struct {
	ID        string
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
