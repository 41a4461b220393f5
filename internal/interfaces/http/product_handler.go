package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/usecase"
)

// ProductHandler catalog endpoints. Creation is multipart: the GRN image
// travels with the form fields.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	media inventory.EvidenceStore
}

// NewProductHandler builds the handler.
func NewProductHandler(uc *usecase.ProductUseCase, media inventory.EvidenceStore) *ProductHandler {
	return &ProductHandler{uc: uc, media: media}
}

// parseDecimal parses a form number field. Empty input is zero.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// Add godoc
// @Summary      Add a product with its received quantity
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "product name"
// @Param        quantity     formData  string  true   "received quantity"
// @Param        unit         formData  string  true   "unit of measure"
// @Param        unitPrice    formData  string  false  "unit price"
// @Param        warehouseId  formData  string  true   "receiving warehouse"
// @Param        grnNumber    formData  string  true   "goods received note number"
// @Param        grnImage     formData  file    false  "goods received note image"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	var in dto.AddProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form"})
	}
	quantity, err := parseDecimal(in.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity must be a number"})
	}
	unitPrice, err := parseDecimal(in.UnitPrice)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "unitPrice must be a number"})
	}
	grnImage, err := saveUpload(c, h.media, "grnImage")
	if err != nil {
		return respondError(c, err)
	}

	// non-superAdmin always receives into their own warehouse
	warehouseID := in.WarehouseID
	if p := GetPrincipal(c); p != nil && p.WarehouseID != "" {
		warehouseID = p.WarehouseID
	}

	product, err := h.uc.Add(c.Context(), usecase.AddInput{
		Name:        in.Name,
		Category:    in.Category,
		Quantity:    quantity,
		Unit:        in.Unit,
		UnitPrice:   unitPrice,
		Description: in.Description,
		Barcode:     in.Barcode,
		WarehouseID: warehouseID,
		GRNNumber:   in.GRNNumber,
		GRNImage:    grnImage,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      List products with current quantities
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        warehouse_id  query  string  false  "filter by warehouse"
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()

	warehouseID := c.Query("warehouse_id")
	if p := GetPrincipal(c); p != nil && p.WarehouseID != "" {
		warehouseID = p.WarehouseID
	}

	var (
		products interface{}
		err      error
	)
	if warehouseID != "" {
		products, err = h.uc.ListByWarehouse(warehouseID, page.Limit, page.Offset)
	} else {
		products, err = h.uc.List(page.Limit, page.Offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(products)
}

// GetByID godoc
// @Summary      Product detail
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "product id"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	product, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(product)
}

// SalesFloor godoc
// @Summary      Sales-floor stock of a warehouse
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        warehouse_id  query  string  false  "warehouse (defaults to own)"
// @Success      200  {array}  dto.StockResponse
// @Router       /api/products/sales-floor [get]
func (h *ProductHandler) SalesFloor(c *fiber.Ctx) error {
	warehouseID := c.Query("warehouse_id")
	if p := GetPrincipal(c); p != nil && p.WarehouseID != "" {
		warehouseID = p.WarehouseID
	}
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id is required"})
	}
	stocks, err := h.uc.SalesFloor(warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stocks)
}
