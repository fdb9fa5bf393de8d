package entity

type MonthlyUsers struct {
	Month string `json:"month"`
	Users int    `json:"users"`
}

type CategorySales struct {
	Category   string  `json:"category"`
	Sales      float64 `json:"sales"`
	Percentage float64 `json:"percentage,omitempty"`
}

type RecentTransaction struct {
	ID     string  `json:"id"`
	Buyer  string  `json:"buyer"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// DashboardMetrics is the payload of GET /dashboard/metrics.
type DashboardMetrics struct {
	TotalUsers         int                 `json:"totalUsers"`
	ActiveListings     int                 `json:"activeListings"`
	CategoriesCount    int                 `json:"categoriesCount"`
	TotalRevenue       float64             `json:"totalRevenue"`
	UserGrowth         []MonthlyUsers      `json:"userGrowth"`
	SalesByCategory    []CategorySales     `json:"salesByCategory"`
	RecentTransactions []RecentTransaction `json:"recentTransactions"`
}

type RegionUsers struct {
	Region     string  `json:"region"`
	Users      int     `json:"users"`
	Percentage float64 `json:"percentage"`
}

type TopSeller struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Items   int     `json:"items"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AnalyticsReport struct {
	DateRange        DateRange       `json:"dateRange"`
	SalesByCategory  []CategorySales `json:"salesByCategory"`
	UserDemographics []RegionUsers   `json:"userDemographics"`
	TopSellers       []TopSeller     `json:"topSellers"`
}
