package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/dto"
	"github.com/stockflow/stockflow-api/internal/application/inventory"
	"github.com/stockflow/stockflow-api/internal/application/reports"
	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
)

// MovementHandler the stock-movement endpoints. All mutations are multipart:
// the evidence image arrives with the quantity and reference number so the
// whole movement is applied, or none of it.
type MovementHandler struct {
	uc     *inventory.MovementUseCase
	report *reports.SalesReportUseCase
	media  inventory.EvidenceStore
}

// NewMovementHandler builds the handler.
func NewMovementHandler(uc *inventory.MovementUseCase, report *reports.SalesReportUseCase, media inventory.EvidenceStore) *MovementHandler {
	return &MovementHandler{uc: uc, report: report, media: media}
}

// actorWarehouse resolves the warehouse a movement runs against: the form
// value, overridden by the principal's own warehouse for everyone but superAdmin.
func actorWarehouse(c *fiber.Ctx, formValue string) string {
	if p := GetPrincipal(c); p != nil && p.WarehouseID != "" {
		return p.WarehouseID
	}
	return formValue
}

// TransferToSale godoc
// @Summary      Move stock from the warehouse to the sales floor
// @Tags         movements
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productId            formData  string  true   "product"
// @Param        warehouseId          formData  string  false  "warehouse (superAdmin only)"
// @Param        quantityToTransfer   formData  string  true   "units to move"
// @Param        stockTransferNumber  formData  string  true   "stock transfer number"
// @Param        stockTransferImage   formData  file    false  "transfer slip image"
// @Param        remark               formData  string  false  "remark"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/transfer-to-sale [post]
func (h *MovementHandler) TransferToSale(c *fiber.Ctx) error {
	var in dto.TransferToSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form"})
	}
	input, err := h.movementInput(c, in.ProductID, in.WarehouseID, in.Quantity, in.StockTransferNumber, in.Remark, "stockTransferImage")
	if err != nil {
		return respondError(c, err)
	}
	mov, err := h.uc.TransferToSale(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RestockFromSale godoc
// @Summary      Return stock from the sales floor to the warehouse
// @Tags         movements
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productId            formData  string  true   "product"
// @Param        quantityToTransfer   formData  string  true   "units to move"
// @Param        stockTransferNumber  formData  string  true   "stock transfer number"
// @Param        stockTransferImage   formData  file    false  "transfer slip image"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/restock-from-sale [post]
func (h *MovementHandler) RestockFromSale(c *fiber.Ctx) error {
	var in dto.RestockFromSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form"})
	}
	input, err := h.movementInput(c, in.ProductID, in.WarehouseID, in.Quantity, in.StockTransferNumber, in.Remark, "stockTransferImage")
	if err != nil {
		return respondError(c, err)
	}
	mov, err := h.uc.RestockFromSale(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// RecordSale godoc
// @Summary      Record a sale from the sales floor
// @Tags         movements
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productId     formData  string  true   "product"
// @Param        quantitySold  formData  string  true   "units sold"
// @Param        sivNumber     formData  string  true   "sales invoice number"
// @Param        sivImage      formData  file    false  "sales invoice image"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/sales [post]
func (h *MovementHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form"})
	}
	input, err := h.movementInput(c, in.ProductID, in.WarehouseID, in.Quantity, in.SIVNumber, in.Remark, "sivImage")
	if err != nil {
		return respondError(c, err)
	}
	mov, err := h.uc.RecordSale(c.Context(), input)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// SendToWarehouse godoc
// @Summary      Send stock to another warehouse
// @Tags         movements
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        productId            formData  string  true   "product"
// @Param        fromWarehouseId      formData  string  false  "source warehouse (superAdmin only)"
// @Param        toWarehouseId        formData  string  true   "destination warehouse"
// @Param        quantity             formData  string  true   "units to send"
// @Param        stockTransferNumber  formData  string  true   "stock transfer number"
// @Param        stockTransferImage   formData  file    false  "transfer slip image"
// @Success      201  {object}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/movements/warehouse-send [post]
func (h *MovementHandler) SendToWarehouse(c *fiber.Ctx) error {
	var in dto.SendToWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid form"})
	}
	quantity, err := parseDecimal(in.Quantity)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity must be a number"})
	}
	evidence, err := saveUpload(c, h.media, "stockTransferImage")
	if err != nil {
		return respondError(c, err)
	}
	mov, err := h.uc.SendToWarehouse(c.Context(), inventory.SendInput{
		ProductID:           in.ProductID,
		FromWarehouseID:     actorWarehouse(c, in.FromWarehouseID),
		ToWarehouseID:       in.ToWarehouseID,
		Quantity:            quantity,
		StockTransferNumber: in.StockTransferNumber,
		Evidence:            evidence,
		Remark:              in.Remark,
		ActorID:             GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Movement log by type
// @Tags         movements
// @Produce      json
// @Security     BearerAuth
// @Param        type  query  string  true  "transfer_to_sale | restock_from_sale | sale | warehouse_send"
// @Success      200  {array}  dto.MovementResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "invalid pagination"})
	}
	page.DefaultPage()

	warehouseID := actorWarehouse(c, c.Query("warehouse_id"))
	movements, err := h.uc.List(c.Query("type"), warehouseID, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, mov := range movements {
		out = append(out, toMovementResponse(mov))
	}
	return c.JSON(out)
}

// SoldRecordsPDF godoc
// @Summary      Printable sold-records report
// @Tags         movements
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        warehouse_id  query  string  false  "warehouse (defaults to own)"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/sales/report [get]
func (h *MovementHandler) SoldRecordsPDF(c *fiber.Ctx) error {
	warehouseID := actorWarehouse(c, c.Query("warehouse_id"))
	if warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "warehouse_id is required"})
	}
	pdfBytes, err := h.report.SoldRecordsPDF(c.Context(), warehouseID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sold-records.pdf"`)
	return c.Send(pdfBytes)
}

func (h *MovementHandler) movementInput(c *fiber.Ctx, productID, warehouseID, quantity, reference, remark, imageField string) (inventory.MovementInput, error) {
	qty, err := parseDecimal(quantity)
	if err != nil {
		return inventory.MovementInput{}, domain.ErrInvalidInput
	}
	evidence, err := saveUpload(c, h.media, imageField)
	if err != nil {
		return inventory.MovementInput{}, err
	}
	return inventory.MovementInput{
		ProductID:   productID,
		WarehouseID: actorWarehouse(c, warehouseID),
		Quantity:    qty,
		Reference:   reference,
		Evidence:    evidence,
		Remark:      remark,
		ActorID:     GetUserID(c),
	}, nil
}

func toMovementResponse(mov *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              mov.ID,
		Type:            mov.Type,
		ProductID:       mov.ProductID,
		Quantity:        mov.Quantity,
		FromWarehouseID: mov.FromWarehouseID,
		FromLocation:    mov.FromLocation,
		ToWarehouseID:   mov.ToWarehouseID,
		ToLocation:      mov.ToLocation,
		Reference:       mov.Reference,
		Evidence:        mov.Evidence,
		Remark:          mov.Remark,
		ActorID:         mov.ActorID,
		CreatedAt:       mov.CreatedAt,
	}
}
