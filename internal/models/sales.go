package models

type OrderItem struct {
	MenuItemID  string  `json:"menu_item_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	GuestNumber int     `json:"guest_number"`
	Timestamp   string  `json:"timestamp"` // full ISO-8601 datetime
}

type HourlyRecord struct {
	Date         string      `json:"date"` // YYYY-MM-DD
	Hour         int         `json:"hour"` // 0-23
	TableCount   int         `json:"table_count"`
	Items        []OrderItem `json:"items"`
	Revenue      float64     `json:"revenue"`
	AverageCheck float64     `json:"average_check"`
	ItemCount    int         `json:"item_count"`
}

type DailyAggregate struct {
	Date         string  `json:"date"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalTables  int     `json:"total_tables"`
	TotalItems   int     `json:"total_items"`
	AverageCheck float64 `json:"average_check"`
	PeakHour     int     `json:"peak_hour"`
	PeakRevenue  float64 `json:"peak_revenue"`
}

type WeeklyAggregate struct {
	WeekStart    string  `json:"week_start"` // Sunday-aligned YYYY-MM-DD
	TotalRevenue float64 `json:"total_revenue"`
	TotalTables  int     `json:"total_tables"`
	TotalItems   int     `json:"total_items"`
	AverageCheck float64 `json:"average_check"`
}
