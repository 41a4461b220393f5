package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// RequestHandler stock request workflow: create, list, approve, reject.
type RequestHandler struct {
	uc    *inventory.RequestUseCase
	media inventory.EvidenceStore
}

// NewRequestHandler builds the handler.
func NewRequestHandler(uc *inventory.RequestUseCase, media inventory.EvidenceStore) *RequestHandler {
	return &RequestHandler{uc: uc, media: media}
}

// Create godoc
// @Summary      Request stock from another warehouse
// @Tags         requests
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productId        formData  string  true   "product"
// @Param        quantity         formData  string  true   "units requested"
// @Param        fromWarehouseId  formData  string  true   "supplying warehouse"
// @Param        bankSlip         formData  file    false  "proof of payment"
// @Success      201  {object}  dto.ProductRequestResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequestRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form"})
	}
	quantity, err := parseDecimal(in.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity must be a number"})
	}
	bankSlip, err := saveUpload(c, h.media, "bankSlip")
	if err != nil {
		return respondError(c, err)
	}

	// requests always deliver to the actor's own warehouse
	p := GetPrincipal(c)
	toWarehouseID := ""
	if p != nil {
		toWarehouseID = p.WarehouseID
	}

	req, err := h.uc.Create(c.Context(), inventory.CreateInput{
		ProductID:       in.ProductID,
		Quantity:        quantity,
		FromWarehouseID: in.FromWarehouseID,
		ToWarehouseID:   toWarehouseID,
		BankSlip:        bankSlip,
		RequestedBy:     GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toRequestResponse(req))
}

// List godoc
// @Summary      List stock requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        status        query  string  false  "pending | approved | rejected"
// @Param        warehouse_id  query  string  false  "filter by warehouse on either end"
// @Success      200  {array}  dto.ProductRequestResponse
// @Router       /api/requests [get]
func (h *RequestHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()

	warehouseID := c.Query("warehouse_id")
	if p := GetPrincipal(c); p != nil && p.WarehouseID != "" {
		warehouseID = p.WarehouseID
	}

	list, err := h.uc.List(c.Query("status"), warehouseID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.ProductRequestResponse, 0, len(list))
	for _, req := range list {
		out = append(out, toRequestResponse(req))
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Approve a pending request, executing the send
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "request id"
// @Success      200  {object}  dto.ProductRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/approve [put]
func (h *RequestHandler) Approve(c *fiber.Ctx) error {
	req, err := h.uc.Approve(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestResponse(req))
}

// Reject godoc
// @Summary      Reject a pending request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "request id"
// @Success      200  {object}  dto.ProductRequestResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/requests/{id}/reject [put]
func (h *RequestHandler) Reject(c *fiber.Ctx) error {
	req, err := h.uc.Reject(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toRequestResponse(req))
}

func toRequestResponse(req *entity.ProductRequest) *dto.ProductRequestResponse {
	return &dto.ProductRequestResponse{
		ID:              req.ID,
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		FromWarehouseID: req.FromWarehouseID,
		ToWarehouseID:   req.ToWarehouseID,
		BankSlip:        req.BankSlip,
		Status:          req.Status,
		RequestedBy:     req.RequestedBy,
		ResolvedBy:      req.ResolvedBy,
		ResolvedAt:      req.ResolvedAt,
		CreatedAt:       req.CreatedAt,
	}
}
