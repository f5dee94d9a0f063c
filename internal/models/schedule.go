package models

type StaffingRecommendation struct {
	Date               string  `json:"date"`
	Shift              string  `json:"shift"`
	RecommendedServers int     `json:"recommended_servers"`
	RecommendedHosts   int     `json:"recommended_hosts"`
	RecommendedCooks   int     `json:"recommended_cooks"`
	ExpectedTables     float64 `json:"expected_tables"`
	PeakTables         float64 `json:"peak_tables"`
	Confidence         float64 `json:"confidence"`
	Reasoning          string  `json:"reasoning"`
}

type ScheduledShift struct {
	ID        string `json:"id"`
	StaffID   string `json:"staff_id"`
	Date      string `json:"date"`
	ShiftType string `json:"shift_type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type TimePunch struct {
	ID               string  `json:"id"`
	StaffID          string  `json:"staff_id"`
	ScheduledShiftID string  `json:"scheduled_shift_id"`
	ClockInTime      string  `json:"clock_in_time"`
	ClockOutTime     string  `json:"clock_out_time"`
	BreakMinutes     int     `json:"break_minutes"`
	HoursWorked      float64 `json:"hours_worked"`
	LaborCost        float64 `json:"labor_cost"`
}

type SchedulingConflict struct {
	StaffID string           `json:"staff_id"`
	Date    string           `json:"date"`
	Shifts  []ScheduledShift `json:"shifts"`
}

type DailyLaborCost struct {
	Date       string  `json:"date"`
	TotalHours float64 `json:"total_hours"`
	TotalCost  float64 `json:"total_cost"`
}
