package models

type StaffMember struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Section string `json:"section,omitempty"`
}

type ShiftPerformance struct {
	ServerID             string  `json:"server_id"`
	Date                 string  `json:"date"`
	Shift                string  `json:"shift"`
	TablesServed         int     `json:"tables_served"`
	AverageTurnoverTime  float64 `json:"average_turnover_time"` // minutes
	TotalTips            float64 `json:"total_tips"`
	TotalSales           float64 `json:"total_sales"`
	AverageCheckSize     float64 `json:"average_check_size"`
	ErrorCount           int     `json:"error_count"`
	CustomerSatisfaction float64 `json:"customer_satisfaction"` // 1.0-5.0
	UpsellRate           float64 `json:"upsell_rate"`           // 0-1
}

type ShiftAverages struct {
	Shifts              int     `json:"shifts"`
	AverageTables       float64 `json:"average_tables"`
	AverageTips         float64 `json:"average_tips"`
	AverageSatisfaction float64 `json:"average_satisfaction"`
}

type ServerKPI struct {
	ServerID              string                   `json:"server_id"`
	TotalShifts           int                      `json:"total_shifts"`
	TotalTables           int                      `json:"total_tables"`
	TotalTips             float64                  `json:"total_tips"`
	TotalSales            float64                  `json:"total_sales"`
	TotalErrors           int                      `json:"total_errors"`
	AverageTurnoverTime   float64                  `json:"average_turnover_time"`
	AverageSatisfaction   float64                  `json:"average_satisfaction"`
	AverageUpsellRate     float64                  `json:"average_upsell_rate"`
	AverageCheckSize      float64                  `json:"average_check_size"`
	ErrorRatePer100Tables float64                  `json:"error_rate_per_100_tables"`
	ByShift               map[string]ShiftAverages `json:"by_shift"`
}

type KPIRanking struct {
	ServerID   string  `json:"server_id"`
	Field      string  `json:"field"`
	Value      float64 `json:"value"`
	Rank       int     `json:"rank"`
	Percentile float64 `json:"percentile"`
}
