package simulator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lucsky/cuid"
	"github.com/restodata/restosim/internal/models"
)

// SchedulingGenerator derives staffing recommendations from historical
// table-count patterns, assigns shifts, and simulates time punches. Punch
// variance uses its own stream so the sales and performance histories stay
// untouched by scheduling runs.
type SchedulingGenerator struct {
	cfg *models.Config
	rng *Rand
	// round-robin cursor over the server roster, persists across
	// recommendations so consecutive shifts rotate through the staff
	cursor int
}

func NewSchedulingGenerator(cfg *models.Config) *SchedulingGenerator {
	return &SchedulingGenerator{cfg: cfg, rng: NewRand(cfg.SalesSeed)}
}

// RecommendStaffing projects staffing for one (date, shift) from the hourly
// records sharing that date's day of week. With no matching history it
// returns a fixed low-confidence default.
func (g *SchedulingGenerator) RecommendStaffing(history []models.HourlyRecord, date time.Time, shift string) models.StaffingRecommendation {
	weekday := date.Weekday()

	var (
		total   float64
		peak    float64
		matches int
	)
	sampleDates := make(map[string]struct{})

	for _, rec := range history {
		recDate, err := time.Parse(models.DateLayout, rec.Date)
		if err != nil || recDate.Weekday() != weekday {
			continue
		}
		total += float64(rec.TableCount)
		if float64(rec.TableCount) > peak {
			peak = float64(rec.TableCount)
		}
		matches++
		sampleDates[rec.Date] = struct{}{}
	}

	if matches == 0 {
		return models.StaffingRecommendation{
			Date:               date.Format(models.DateLayout),
			Shift:              shift,
			RecommendedServers: 3,
			RecommendedHosts:   1,
			RecommendedCooks:   2,
			Confidence:         0.3,
			Reasoning:          fmt.Sprintf("No historical data for %ss; using default staffing", weekday),
		}
	}

	avg := total / float64(matches)

	adjustedPeak := peak
	if isWeekend(date) {
		adjustedPeak *= 1.2
	}
	if g.cfg.IsHoliday(date.Format(models.DateLayout)) {
		adjustedPeak *= 1.5
	}

	servers := int(math.Ceil(adjustedPeak / g.cfg.TablesPerServer))
	hosts := int(math.Ceil(avg / g.cfg.TablesPerHost))
	if hosts < 1 {
		hosts = 1
	}
	cooks := int(math.Ceil(adjustedPeak * 2.5 / g.cfg.CoversPerCook))
	if cooks < 2 {
		cooks = 2
	}

	sampleDays := len(sampleDates)
	confidence := 0.3 + 0.05*float64(sampleDays)
	if confidence > 0.95 {
		confidence = 0.95
	}

	return models.StaffingRecommendation{
		Date:               date.Format(models.DateLayout),
		Shift:              shift,
		RecommendedServers: servers,
		RecommendedHosts:   hosts,
		RecommendedCooks:   cooks,
		ExpectedTables:     round1(avg),
		PeakTables:         round1(adjustedPeak),
		Confidence:         round2(confidence),
		Reasoning: fmt.Sprintf("Based on %d %s samples: avg %.1f tables/hour, adjusted peak %.1f",
			sampleDays, weekday, avg, adjustedPeak),
	}
}

// GenerateWeeklyRecommendations emits lunch and dinner recommendations for
// each of the seven days starting at weekStartDate.
func (g *SchedulingGenerator) GenerateWeeklyRecommendations(history []models.HourlyRecord, weekStartDate time.Time) []models.StaffingRecommendation {
	recommendations := make([]models.StaffingRecommendation, 0, 14)
	for d := 0; d < 7; d++ {
		date := weekStartDate.AddDate(0, 0, d)
		for _, shift := range []string{models.ShiftLunch, models.ShiftDinner} {
			recommendations = append(recommendations, g.RecommendStaffing(history, date, shift))
		}
	}
	return recommendations
}

// AssignShifts fills each recommendation's server count by round-robin over
// the server roster. The cursor wraps across recommendations, so a small
// roster against a busy week can double-book a server on one date; those
// cases surface through CheckSchedulingConflicts rather than being avoided
// here.
func (g *SchedulingGenerator) AssignShifts(recommendations []models.StaffingRecommendation, staff []models.StaffMember) []models.ScheduledShift {
	var servers []models.StaffMember
	for _, member := range staff {
		if member.Role == models.RoleServer {
			servers = append(servers, member)
		}
	}
	if len(servers) == 0 {
		return nil
	}

	var shifts []models.ScheduledShift
	for _, rec := range recommendations {
		count := rec.RecommendedServers
		if count > len(servers) {
			count = len(servers)
		}
		window := ShiftWindows[rec.Shift]

		for i := 0; i < count; i++ {
			server := servers[g.cursor%len(servers)]
			g.cursor++

			shifts = append(shifts, models.ScheduledShift{
				ID:        cuid.New(),
				StaffID:   server.ID,
				Date:      rec.Date,
				ShiftType: rec.Shift,
				StartTime: window.Start,
				EndTime:   window.End,
				Role:      models.RoleServer,
				Status:    models.ShiftStatusScheduled,
			})
		}
	}
	return shifts
}

// CheckSchedulingConflicts flags every staff member holding more than one
// shift on the same date.
func CheckSchedulingConflicts(shifts []models.ScheduledShift) []models.SchedulingConflict {
	type key struct {
		staffID string
		date    string
	}
	grouped := make(map[key][]models.ScheduledShift)
	for _, shift := range shifts {
		k := key{staffID: shift.StaffID, date: shift.Date}
		grouped[k] = append(grouped[k], shift)
	}

	keys := make([]key, 0, len(grouped))
	for k, group := range grouped {
		if len(group) > 1 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].staffID < keys[j].staffID
	})

	conflicts := make([]models.SchedulingConflict, 0, len(keys))
	for _, k := range keys {
		conflicts = append(conflicts, models.SchedulingConflict{
			StaffID: k.staffID,
			Date:    k.date,
			Shifts:  grouped[k],
		})
	}
	return conflicts
}

// GeneratePunches simulates clock-in/out events for scheduled shifts with a
// +/-5 minute variance on each end. Shifts scheduled for more than six hours
// get a 30-minute unpaid break; the punch variance never changes break
// eligibility.
func (g *SchedulingGenerator) GeneratePunches(shifts []models.ScheduledShift) []models.TimePunch {
	punches := make([]models.TimePunch, 0, len(shifts))

	for _, shift := range shifts {
		date, err := time.Parse(models.DateLayout, shift.Date)
		if err != nil {
			continue
		}
		start := shiftClock(date, shift.StartTime)
		end := shiftClock(date, shift.EndTime)

		clockIn := start.Add(time.Duration((g.rng.Next()*10 - 5) * float64(time.Minute)))
		clockOut := end.Add(time.Duration((g.rng.Next()*10 - 5) * float64(time.Minute)))

		breakMinutes := 0
		if end.Sub(start) > 6*time.Hour {
			breakMinutes = 30
		}
		worked := clockOut.Sub(clockIn)
		hours := round2((worked - time.Duration(breakMinutes)*time.Minute).Hours())

		punches = append(punches, models.TimePunch{
			ID:               cuid.New(),
			StaffID:          shift.StaffID,
			ScheduledShiftID: shift.ID,
			ClockInTime:      clockIn.Format(time.RFC3339),
			ClockOutTime:     clockOut.Format(time.RFC3339),
			BreakMinutes:     breakMinutes,
			HoursWorked:      hours,
			LaborCost:        round2(hours * g.cfg.HourlyRate(shift.StaffID)),
		})
	}
	return punches
}

// shiftClock combines a date with an "HH:MM" wall-clock string.
func shiftClock(date time.Time, hhmm string) time.Time {
	var hour, minute int
	fmt.Sscanf(hhmm, "%d:%d", &hour, &minute)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// LaborCostByDay rolls punches up into per-date hour and cost totals,
// sorted by date.
func LaborCostByDay(punches []models.TimePunch) []models.DailyLaborCost {
	byDate := make(map[string]*models.DailyLaborCost)

	for _, punch := range punches {
		clockIn, err := time.Parse(time.RFC3339, punch.ClockInTime)
		if err != nil {
			continue
		}
		date := clockIn.Format(models.DateLayout)

		agg, ok := byDate[date]
		if !ok {
			agg = &models.DailyLaborCost{Date: date}
			byDate[date] = agg
		}
		agg.TotalHours = round2(agg.TotalHours + punch.HoursWorked)
		agg.TotalCost = round2(agg.TotalCost + punch.LaborCost)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	costs := make([]models.DailyLaborCost, 0, len(dates))
	for _, date := range dates {
		costs = append(costs, *byDate[date])
	}
	return costs
}
