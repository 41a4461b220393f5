package entity

import "time"

// Valid roles for User. Closed set; anything else is denied by default.
const (
	RoleSuperAdmin = "superAdmin" // head office, owns warehouses and users
	RoleAdmin      = "admin"      // warehouse administrator
	RoleManager    = "manager"    // stock manager
	RoleSales      = "sales"      // sales agent on the sales floor
)

// ValidRole reports whether role belongs to the closed set.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleSales:
		return true
	}
	return false
}

// User is an account that can authenticate. Login is by phone number.
type User struct {
	ID           string
	FullName     string
	PhoneNumber  string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Role         string // superAdmin, admin, manager, sales
	WarehouseID  string // assigned warehouse; empty for superAdmin
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity held for the lifetime of a session.
// It is what the session store persists and what every gated operation sees.
type Principal struct {
	SessionID   string    `json:"session_id"`
	UserID      string    `json:"user_id"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	WarehouseID string    `json:"warehouse_id,omitempty"`
	IssuedAt    time.Time `json:"issued_at"`
}
