package dto

import "github.com/shopspring/decimal"

// DashboardCountsDTO read-only summary counts for the dashboard cards.
type DashboardCountsDTO struct {
	ProductCount         int `json:"productCount"`
	SalesCount           int `json:"salesCount"`
	TransfersToSaleCount int `json:"transfersToSaleCount"`
	RestocksFromSaleCount int `json:"restocksFromSaleCount"`
}

// SeriesPointDTO one time bucket of a movement series.
type SeriesPointDTO struct {
	Date          string          `json:"date"` // bucket start, YYYY-MM-DD
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
}

// StockTransferSeriesDTO the charting payload: transfers and restocks bucketed
// by the requested period (daily, weekly, monthly, yearly).
type StockTransferSeriesDTO struct {
	Period           string           `json:"period"`
	TransfersToSale  []SeriesPointDTO `json:"transfersToSale"`
	RestocksFromSale []SeriesPointDTO `json:"restocksFromSale"`
}
