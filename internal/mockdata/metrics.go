package mockdata

import "github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"

func DashboardMetrics() entity.DashboardMetrics {
	return entity.DashboardMetrics{
		TotalUsers:      2847,
		ActiveListings:  1234,
		CategoriesCount: 12,
		TotalRevenue:    485200,
		UserGrowth: []entity.MonthlyUsers{
			{Month: "Jan", Users: 400},
			{Month: "Feb", Users: 520},
			{Month: "Mar", Users: 680},
			{Month: "Apr", Users: 850},
			{Month: "May", Users: 1200},
			{Month: "Jun", Users: 2847},
		},
		SalesByCategory: []entity.CategorySales{
			{Category: "Agricultural Produce", Sales: 4500},
			{Category: "Handicrafts", Sales: 3800},
			{Category: "Textiles", Sales: 3200},
			{Category: "Cultural Items", Sales: 2800},
			{Category: "Herbal Products", Sales: 2100},
			{Category: "Local Services", Sales: 1600},
		},
		RecentTransactions: []entity.RecentTransaction{
			{ID: "tx_001", Buyer: "Chinedu Okonkwo", Amount: 45000, Date: "2025-01-14"},
			{ID: "tx_002", Buyer: "Blessing Eze", Amount: 28500, Date: "2025-01-13"},
			{ID: "tx_003", Buyer: "Grace Adekunle", Amount: 62000, Date: "2025-01-13"},
			{ID: "tx_004", Buyer: "Emeka Nwosu", Amount: 15200, Date: "2025-01-12"},
			{ID: "tx_005", Buyer: "Zainab Ahmed", Amount: 38900, Date: "2025-01-12"},
		},
	}
}

// Analytics report defaults.
const (
	AnalyticsStart = "2025-01-01"
	AnalyticsEnd   = "2025-01-14"
)

func Analytics() entity.AnalyticsReport {
	return entity.AnalyticsReport{
		DateRange: entity.DateRange{Start: AnalyticsStart, End: AnalyticsEnd},
		SalesByCategory: []entity.CategorySales{
			{Category: "Agricultural Produce", Sales: 4500, Percentage: 28},
			{Category: "Handicrafts", Sales: 3800, Percentage: 24},
			{Category: "Textiles", Sales: 3200, Percentage: 20},
			{Category: "Cultural Items", Sales: 2800, Percentage: 17},
			{Category: "Herbal Products", Sales: 2100, Percentage: 11},
		},
		UserDemographics: []entity.RegionUsers{
			{Region: "Benin City", Users: 1200, Percentage: 42},
			{Region: "Edo Rural", Users: 850, Percentage: 30},
			{Region: "Diaspora (US)", Users: 420, Percentage: 15},
			{Region: "Diaspora (UK)", Users: 377, Percentage: 13},
		},
		TopSellers: []entity.TopSeller{
			{Name: "Okoro Crafts", Revenue: 185000, Items: 128},
			{Name: "Edo Textiles Ltd", Revenue: 162000, Items: 94},
			{Name: "Premium Produce", Revenue: 145000, Items: 187},
			{Name: "Heritage Arts", Revenue: 128000, Items: 76},
			{Name: "Herbal Wellness", Revenue: 98000, Items: 145},
		},
	}
}
