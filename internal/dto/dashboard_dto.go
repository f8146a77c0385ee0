package dto

import "github.com/shopspring/decimal"

// DashboardStatsResponse is recomputed on every call; nothing here is cached.
type DashboardStatsResponse struct {
	TotalProducts      int64                 `json:"total_products"`
	AvailableProducts  int64                 `json:"available_products"`
	SoldProducts       int64                 `json:"sold_products"`
	TotalCustomers     int64                 `json:"total_customers"`
	TotalSources       int64                 `json:"total_sources"`
	TotalTransactions  int64                 `json:"total_transactions"`
	TotalRevenue       decimal.Decimal       `json:"total_revenue"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}
