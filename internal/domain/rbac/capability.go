// Package rbac is the single place authorization is decided. Every route and
// view consults CapabilitiesFor instead of comparing role strings; an unknown
// role maps to the empty set.
package rbac

import "github.com/stockflow/stockflow-api/internal/domain/entity"

// Action identifies one workflow action a role may invoke.
type Action string

// Workflow actions.
const (
	ActionViewDashboard    Action = "dashboard.view"
	ActionCreateWarehouse  Action = "warehouse.create"
	ActionListWarehouses   Action = "warehouse.list"
	ActionViewWarehouse    Action = "warehouse.detail"
	ActionSendToWarehouse  Action = "warehouse.send"
	ActionRegisterUser     Action = "user.register"
	ActionListUsers        Action = "user.list"
	ActionAddProduct       Action = "product.add"
	ActionListProducts     Action = "product.list"
	ActionViewSalesFloor   Action = "product.sales_floor"
	ActionTransferToSale   Action = "movement.transfer_to_sale"
	ActionRestockFromSale  Action = "movement.restock_from_sale"
	ActionRecordSale       Action = "movement.record_sale"
	ActionListMovements    Action = "movement.list"
	ActionViewSoldRecords  Action = "sales.records"
	ActionCreateRequest    Action = "request.create"
	ActionListRequests     Action = "request.list"
	ActionResolveRequest   Action = "request.resolve"
)

// Set is a capability set keyed by action.
type Set map[Action]struct{}

// Has reports whether the action is in the set.
func (s Set) Has(a Action) bool {
	_, ok := s[a]
	return ok
}

func newSet(actions ...Action) Set {
	s := make(Set, len(actions))
	for _, a := range actions {
		s[a] = struct{}{}
	}
	return s
}

// Per-role action lists. superAdmin is derived as the union of every other
// role's set plus its own administrative actions, so it is a superset by
// construction.
var (
	adminActions = []Action{
		ActionViewDashboard,
		ActionListProducts,
		ActionTransferToSale,
		ActionListMovements,
		ActionRegisterUser,
		ActionListUsers,
		ActionCreateRequest,
		ActionListRequests,
	}

	managerActions = []Action{
		ActionViewDashboard,
		ActionListProducts,
		ActionTransferToSale,
		ActionRestockFromSale,
		ActionListMovements,
	}

	salesActions = []Action{
		ActionViewDashboard,
		ActionViewSalesFloor,
		ActionRestockFromSale,
		ActionRecordSale,
		ActionViewSoldRecords,
		ActionListMovements,
	}

	superAdminOnly = []Action{
		ActionCreateWarehouse,
		ActionListWarehouses,
		ActionViewWarehouse,
		ActionSendToWarehouse,
		ActionAddProduct,
		ActionResolveRequest,
	}
)

var capabilities map[string]Set

func init() {
	super := newSet(superAdminOnly...)
	for _, actions := range [][]Action{adminActions, managerActions, salesActions} {
		for _, a := range actions {
			super[a] = struct{}{}
		}
	}
	capabilities = map[string]Set{
		entity.RoleSuperAdmin: super,
		entity.RoleAdmin:      newSet(adminActions...),
		entity.RoleManager:    newSet(managerActions...),
		entity.RoleSales:      newSet(salesActions...),
	}
}

// CapabilitiesFor returns the capability set for a role.
// Unknown roles get an empty set: deny by default.
func CapabilitiesFor(role string) Set {
	if s, ok := capabilities[role]; ok {
		return s
	}
	return Set{}
}

// Allowed reports whether the role may invoke the action.
func Allowed(role string, action Action) bool {
	return CapabilitiesFor(role).Has(action)
}
