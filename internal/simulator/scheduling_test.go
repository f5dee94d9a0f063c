package simulator

import (
	"fmt"
	"testing"
	"time"

	"github.com/restodata/restosim/internal/factories"
	"github.com/restodata/restosim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecommendStaffingNoHistory(t *testing.T) {
	gen := NewSchedulingGenerator(testConfig())

	rec := gen.RecommendStaffing(nil, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), models.ShiftLunch)
	assert.Equal(t, 3, rec.RecommendedServers)
	assert.Equal(t, 1, rec.RecommendedHosts)
	assert.Equal(t, 2, rec.RecommendedCooks)
	assert.Equal(t, 0.3, rec.Confidence)
	assert.Contains(t, rec.Reasoning, "No historical data")
}

func TestRecommendStaffingFromHistory(t *testing.T) {
	gen := NewSchedulingGenerator(testConfig())

	// one prior Tuesday with hourly counts of 8 and 4
	history := []models.HourlyRecord{
		{Date: "2025-06-03", Hour: 12, TableCount: 8},
		{Date: "2025-06-03", Hour: 15, TableCount: 4},
	}

	// a later non-holiday Tuesday
	rec := gen.RecommendStaffing(history, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), models.ShiftLunch)

	assert.Equal(t, 6.0, rec.ExpectedTables)
	assert.Equal(t, 8.0, rec.PeakTables)
	assert.Equal(t, 2, rec.RecommendedServers) // ceil(8/4)
	assert.Equal(t, 1, rec.RecommendedHosts)   // max(1, ceil(6/12))
	assert.Equal(t, 2, rec.RecommendedCooks)   // max(2, ceil(8*2.5/15))
	assert.Equal(t, 0.35, rec.Confidence)      // 0.3 + 0.05 * one sampled day
}

func TestRecommendStaffingWeekendAndHolidayScalePeak(t *testing.T) {
	cfg := testConfig()
	cfg.Holidays = []string{"2025-06-14"}
	gen := NewSchedulingGenerator(cfg)

	history := []models.HourlyRecord{
		{Date: "2025-06-07", Hour: 19, TableCount: 10}, // a prior Saturday
	}

	// holiday Saturday: peak 10 * 1.2 * 1.5 = 18
	rec := gen.RecommendStaffing(history, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC), models.ShiftDinner)
	assert.Equal(t, 18.0, rec.PeakTables)
	assert.Equal(t, 5, rec.RecommendedServers) // ceil(18/4)
	assert.Equal(t, 3, rec.RecommendedCooks)   // ceil(18*2.5/15)
}

func TestGenerateWeeklyRecommendations(t *testing.T) {
	gen := NewSchedulingGenerator(testConfig())

	week := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) // Sunday
	recs := gen.GenerateWeeklyRecommendations(nil, week)
	assert.Len(t, recs, 14)

	assert.Equal(t, "2025-06-01", recs[0].Date)
	assert.Equal(t, models.ShiftLunch, recs[0].Shift)
	assert.Equal(t, models.ShiftDinner, recs[1].Shift)
	assert.Equal(t, "2025-06-07", recs[13].Date)
}

func TestAssignShiftsRoundRobin(t *testing.T) {
	gen := NewSchedulingGenerator(testConfig())
	staff := factories.NewStaff(3, 1, 1)

	recs := []models.StaffingRecommendation{
		{Date: "2025-06-02", Shift: models.ShiftLunch, RecommendedServers: 2},
		{Date: "2025-06-02", Shift: models.ShiftDinner, RecommendedServers: 2},
	}

	shifts := gen.AssignShifts(recs, staff)
	assert.Len(t, shifts, 4)

	// cursor wraps across recommendations
	assert.Equal(t, "srv-1", shifts[0].StaffID)
	assert.Equal(t, "srv-2", shifts[1].StaffID)
	assert.Equal(t, "srv-3", shifts[2].StaffID)
	assert.Equal(t, "srv-1", shifts[3].StaffID)

	for _, shift := range shifts {
		assert.NotEmpty(t, shift.ID)
		assert.Equal(t, models.RoleServer, shift.Role)
		assert.Equal(t, models.ShiftStatusScheduled, shift.Status)
	}
	assert.Equal(t, "11:00", shifts[0].StartTime)
	assert.Equal(t, "16:00", shifts[0].EndTime)
}

func TestAssignShiftsCapsAtRosterSize(t *testing.T) {
	gen := NewSchedulingGenerator(testConfig())
	staff := factories.NewStaff(2, 0, 0)

	recs := []models.StaffingRecommendation{
		{Date: "2025-06-02", Shift: models.ShiftDinner, RecommendedServers: 5},
	}
	shifts := gen.AssignShifts(recs, staff)
	assert.Len(t, shifts, 2)
}

func TestCheckSchedulingConflicts(t *testing.T) {
	shifts := []models.ScheduledShift{
		{ID: "a", StaffID: "srv-1", Date: "2025-06-02", ShiftType: models.ShiftLunch},
		{ID: "b", StaffID: "srv-1", Date: "2025-06-02", ShiftType: models.ShiftDinner},
		{ID: "c", StaffID: "srv-2", Date: "2025-06-02", ShiftType: models.ShiftLunch},
		{ID: "d", StaffID: "srv-1", Date: "2025-06-03", ShiftType: models.ShiftLunch},
	}

	conflicts := CheckSchedulingConflicts(shifts)
	assert.Len(t, conflicts, 1)
	assert.Equal(t, "srv-1", conflicts[0].StaffID)
	assert.Equal(t, "2025-06-02", conflicts[0].Date)
	assert.Len(t, conflicts[0].Shifts, 2)
}

func TestGeneratePunches(t *testing.T) {
	cfg := testConfig()
	cfg.HourlyRates = map[string]float64{"srv-1": 20.00}
	gen := NewSchedulingGenerator(cfg)

	shifts := []models.ScheduledShift{
		{ID: "a", StaffID: "srv-1", Date: "2025-06-02", ShiftType: models.ShiftDinner, StartTime: "16:00", EndTime: "22:30"},
		{ID: "b", StaffID: "srv-2", Date: "2025-06-02", ShiftType: models.ShiftLunch, StartTime: "11:00", EndTime: "16:00"},
	}

	punches := gen.GeneratePunches(shifts)
	assert.Len(t, punches, 2)

	dinner := punches[0]
	assert.Equal(t, "a", dinner.ScheduledShiftID)
	// 6.5h scheduled, so even with the punch variance the span passes 6h
	assert.Equal(t, 30, dinner.BreakMinutes)
	assert.InDelta(t, 6.0, dinner.HoursWorked, 0.25)
	assert.Equal(t, round2(dinner.HoursWorked*20.00), dinner.LaborCost)

	clockIn, err := time.Parse(time.RFC3339, dinner.ClockInTime)
	assert.NoError(t, err)
	scheduled := time.Date(2025, 6, 2, 16, 0, 0, 0, clockIn.Location())
	assert.LessOrEqual(t, clockIn.Sub(scheduled).Abs(), 5*time.Minute)

	lunch := punches[1]
	assert.Equal(t, 0, lunch.BreakMinutes)
	assert.InDelta(t, 5.0, lunch.HoursWorked, 0.25)
	assert.Equal(t, round2(lunch.HoursWorked*cfg.DefaultHourlyRate), lunch.LaborCost)
}

func TestGeneratePunchesBreakFollowsScheduledLength(t *testing.T) {
	gen := NewSchedulingGenerator(testConfig())

	// exactly six scheduled hours never earns a break, even when the punch
	// variance stretches the actual span past six hours
	shifts := make([]models.ScheduledShift, 0, 20)
	for i := 0; i < 20; i++ {
		shifts = append(shifts, models.ScheduledShift{
			ID:        fmt.Sprintf("shift-%d", i),
			StaffID:   "srv-1",
			Date:      "2025-06-02",
			ShiftType: models.ShiftLunch,
			StartTime: "10:00",
			EndTime:   "16:00",
		})
	}

	punches := gen.GeneratePunches(shifts)
	assert.Len(t, punches, 20)

	stretched := false
	for _, punch := range punches {
		assert.Equal(t, 0, punch.BreakMinutes)

		clockIn, err := time.Parse(time.RFC3339, punch.ClockInTime)
		assert.NoError(t, err)
		clockOut, err := time.Parse(time.RFC3339, punch.ClockOutTime)
		assert.NoError(t, err)
		if clockOut.Sub(clockIn) > 6*time.Hour {
			stretched = true
		}
	}
	assert.True(t, stretched, "expected at least one punch span past six hours")
}

func TestLaborCostByDay(t *testing.T) {
	punches := []models.TimePunch{
		{ClockInTime: "2025-06-02T11:02:00Z", HoursWorked: 5.0, LaborCost: 82.50},
		{ClockInTime: "2025-06-02T16:04:00Z", HoursWorked: 6.0, LaborCost: 99.00},
		{ClockInTime: "2025-06-03T11:01:00Z", HoursWorked: 4.5, LaborCost: 74.25},
	}

	costs := LaborCostByDay(punches)
	assert.Len(t, costs, 2)
	assert.Equal(t, models.DailyLaborCost{Date: "2025-06-02", TotalHours: 11.0, TotalCost: 181.50}, costs[0])
	assert.Equal(t, models.DailyLaborCost{Date: "2025-06-03", TotalHours: 4.5, TotalCost: 74.25}, costs[1])
}
