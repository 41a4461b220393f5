package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/reports"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
	"github.com/stockflow/stockflow-api/internal/domain/rbac"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	WarehouseUC *usecase.WarehouseUseCase
	ProductUC   *usecase.ProductUseCase
	MovementUC  *inventory.MovementUseCase
	RequestUC   *inventory.RequestUseCase
	DashboardUC *analytics.DashboardUseCase
	SalesReport *reports.SalesReportUseCase
	Media       inventory.EvidenceStore
	Sessions    auth.SessionStore
	JWTSecret   string
}

// Router registers the API routes. Every protected route passes AuthMiddleware
// and then the capability gate for its action; no handler checks roles itself.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login is public, the rest requires a session)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Sessions))

	protectedAuth := protected.Group("/auth")
	protectedAuth.Post("/logout", authHandler.Logout)
	protectedAuth.Put("/password", authHandler.ChangePassword)

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	users.Post("/", RequireCapability(rbac.ActionRegisterUser), userHandler.Register)
	users.Get("/", RequireCapability(rbac.ActionListUsers), userHandler.List)

	// Warehouses
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", RequireCapability(rbac.ActionCreateWarehouse), warehouseHandler.Create)
	warehouses.Get("/", RequireCapability(rbac.ActionListWarehouses), warehouseHandler.List)
	warehouses.Get("/:id", RequireCapability(rbac.ActionViewWarehouse), warehouseHandler.Detail)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Media)
	products.Post("/", RequireCapability(rbac.ActionAddProduct), productHandler.Add)
	products.Get("/", RequireCapability(rbac.ActionListProducts), productHandler.List)
	products.Get("/sales-floor", RequireCapability(rbac.ActionViewSalesFloor), productHandler.SalesFloor)
	products.Get("/:id", RequireCapability(rbac.ActionListProducts), productHandler.GetByID)

	// Stock movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC, deps.SalesReport, deps.Media)
	movements.Post("/transfer-to-sale", RequireCapability(rbac.ActionTransferToSale), movementHandler.TransferToSale)
	movements.Post("/restock-from-sale", RequireCapability(rbac.ActionRestockFromSale), movementHandler.RestockFromSale)
	movements.Post("/sales", RequireCapability(rbac.ActionRecordSale), movementHandler.RecordSale)
	movements.Post("/warehouse-send", RequireCapability(rbac.ActionSendToWarehouse), movementHandler.SendToWarehouse)
	movements.Get("/", RequireCapability(rbac.ActionListMovements), movementHandler.List)
	movements.Get("/sales/report", RequireCapability(rbac.ActionViewSoldRecords), movementHandler.SoldRecordsPDF)

	// Stock requests
	requests := protected.Group("/requests")
	requestHandler := NewRequestHandler(deps.RequestUC, deps.Media)
	requests.Post("/", RequireCapability(rbac.ActionCreateRequest), requestHandler.Create)
	requests.Get("/", RequireCapability(rbac.ActionListRequests), requestHandler.List)
	requests.Put("/:id/approve", RequireCapability(rbac.ActionResolveRequest), requestHandler.Approve)
	requests.Put("/:id/reject", RequireCapability(rbac.ActionResolveRequest), requestHandler.Reject)

	// Dashboard
	dashboard := protected.Group("/dashboard", RequireCapability(rbac.ActionViewDashboard))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/counts", dashboardHandler.Counts)
	dashboard.Get("/stock-transfers", dashboardHandler.StockTransferSeries)
}
