package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stockflow/stockflow-api/internal/application/analytics"
)

// DashboardHandler read-only dashboard endpoints.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Counts godoc
// @Summary      Dashboard summary counts
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.DashboardCountsDTO
// @Router       /api/dashboard/counts [get]
func (h *DashboardHandler) Counts(c *fiber.Ctx) error {
	counts, err := h.uc.GetCounts(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(counts)
}

// StockTransferSeries godoc
// @Summary      Transfer and restock series for the chart
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        period  query  string  false  "daily | weekly | monthly | yearly"  default(daily)
// @Success      200  {object}  dto.StockTransferSeriesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stock-transfers [get]
func (h *DashboardHandler) StockTransferSeries(c *fiber.Ctx) error {
	period := c.Query("period", "daily")
	series, err := h.uc.GetStockTransferSeries(c.Context(), period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(series)
}
