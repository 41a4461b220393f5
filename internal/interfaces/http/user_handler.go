package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/auth"
	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// UserHandler user registration and listing.
type UserHandler struct {
	authUC *auth.AuthUseCase
	userUC *usecase.UserUseCase
}

// NewUserHandler builds the handler.
func NewUserHandler(authUC *auth.AuthUseCase, userUC *usecase.UserUseCase) *UserHandler {
	return &UserHandler{authUC: authUC, userUC: userUC}
}

// Register godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.RegisterRequest  true  "full_name, phone_number, password, role, warehouse_id"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password must be at least 8 characters"})
	}
	user, err := h.authUC.RegisterUser(GetPrincipal(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        warehouse_id  query  string  false  "filter by warehouse"
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()

	// admin sees only their warehouse; superAdmin may filter freely
	warehouseID := c.Query("warehouse_id")
	if p := GetPrincipal(c); p != nil && p.WarehouseID != "" {
		warehouseID = p.WarehouseID
	}

	var (
		users interface{}
		err   error
	)
	if warehouseID != "" {
		users, err = h.userUC.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	} else {
		users, err = h.userUC.List(page.Limit, page.Offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
