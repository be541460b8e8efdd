package dto

// DashboardSummaryDTO conteos agregados + últimos productos para la vista principal.
type DashboardSummaryDTO struct {
	TotalProducts   int               `json:"total_products"`
	LowStockCount   int               `json:"low_stock_count"`
	OutOfStockCount int               `json:"out_of_stock_count"`
	TotalCategories int               `json:"total_categories"`
	RecentProducts  []ProductResponse `json:"recent_products"`
}
