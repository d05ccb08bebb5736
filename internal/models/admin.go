package models

// AdminToken is the backend login response.
type AdminToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Username    string `json:"username,omitempty"`
}

// DashboardStats is the admin dashboard summary.
type DashboardStats struct {
	TotalProducts    int                      `json:"totalProducts"`
	TotalOrders      int                      `json:"totalOrders"`
	TotalRevenue     Money                    `json:"totalRevenue"`
	PendingOrders    int                      `json:"pendingOrders"`
	LowStockProducts int                      `json:"lowStockProducts"`
	TotalCategories  int                      `json:"totalCategories"`
	RecentOrders     []map[string]interface{} `json:"recentOrders"`
}

// RevenueData is one point of the revenue chart.
type RevenueData struct {
	Date    string `json:"date"`
	Revenue Money  `json:"revenue"`
}

// TopProduct is one row of the best-sellers table.
type TopProduct struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Sales   int    `json:"sales"`
	Revenue Money  `json:"revenue"`
}

// OrderStats counts orders by status.
type OrderStats struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Shipped    int `json:"shipped"`
	Delivered  int `json:"delivered"`
	Cancelled  int `json:"cancelled"`
}

// ImageUpload is the media upload response (relative URL).
type ImageUpload struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
