package simulator

import (
	"math"
	"sort"
	"time"

	"github.com/restodata/restosim/internal/models"
)

// PerformanceGenerator fabricates per-shift server performance history.
// Each server gets its own PRNG stream derived from the digits of its id,
// so adding or removing one server never perturbs another's history.
type PerformanceGenerator struct {
	cfg *models.Config
	rng *Rand
}

func NewPerformanceGenerator(cfg *models.Config) *PerformanceGenerator {
	return &PerformanceGenerator{
		cfg: cfg,
		rng: NewRand(cfg.PerformanceSeed),
	}
}

func (g *PerformanceGenerator) skillLevel(serverID string) float64 {
	if level, ok := g.cfg.SkillLevels[serverID]; ok {
		return level
	}
	if level, ok := SkillLevel(serverID); ok {
		return level
	}
	return DefaultSkillLevel
}

// GenerateHistory produces shift records for each server over [start, end].
// A server sits out roughly 35% of days; a worked day is a lunch or dinner
// shift with even odds.
func (g *PerformanceGenerator) GenerateHistory(servers []models.StaffMember, start, end time.Time) []models.ShiftPerformance {
	var history []models.ShiftPerformance

	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	for _, server := range servers {
		if server.Role != models.RoleServer {
			continue
		}
		g.rng.Reset(serverSeed(server.ID))

		for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
			if g.rng.Next() < 0.35 {
				continue
			}
			shift := models.ShiftDinner
			if g.rng.Next() < 0.5 {
				shift = models.ShiftLunch
			}
			history = append(history, g.generateShift(server.ID, day, shift))
		}
	}
	return history
}

func (g *PerformanceGenerator) generateShift(serverID string, date time.Time, shift string) models.ShiftPerformance {
	skill := g.skillLevel(serverID)

	turnover := round1(70 - 6*skill + (g.rng.Next()*10 - 5))

	tables := ShiftBaseTables[shift] * (0.7 + 0.06*skill)
	if isWeekend(date) {
		tables *= 1.2
	}
	tables *= 0.85 + g.rng.Next()*0.3
	tableCount := int(tables + 0.5)

	tipBase := 8.0
	if shift == models.ShiftDinner {
		tipBase = 12.0
	}
	tipPerTable := tipBase + 2*skill + g.rng.Next()*5
	totalTips := round2(float64(tableCount) * tipPerTable)

	errorChance := 0.15 - 0.02*skill
	errors := 0
	for i := 0; i < tableCount; i++ {
		if g.rng.Next() < errorChance {
			errors++
		}
	}

	satisfaction := clamp(2.5+0.5*skill+(g.rng.Next()*0.6-0.3), 1, 5)

	avgCheck := round2(22 + 3*skill + (g.rng.Next()*8 - 4))
	totalSales := round2(float64(tableCount) * avgCheck)

	upsell := clamp(0.15+0.08*skill+(g.rng.Next()*0.1-0.05), 0.05, 0.8)

	return models.ShiftPerformance{
		ServerID:             serverID,
		Date:                 date.Format(models.DateLayout),
		Shift:                shift,
		TablesServed:         tableCount,
		AverageTurnoverTime:  turnover,
		TotalTips:            totalTips,
		TotalSales:           totalSales,
		AverageCheckSize:     avgCheck,
		ErrorCount:           errors,
		CustomerSatisfaction: round1(satisfaction),
		UpsellRate:           round2(upsell),
	}
}

// ComputeKPIs aggregates shift history into one KPI row per server, with a
// per-shift-type breakdown. Servers with no shifts in the history are omitted.
func ComputeKPIs(history []models.ShiftPerformance) []models.ServerKPI {
	type acc struct {
		kpi      models.ServerKPI
		turnover float64
		sat      float64
		upsell   float64
		byShift  map[string]*models.ShiftAverages
		tipSums  map[string]float64
		tblSums  map[string]int
		satSums  map[string]float64
	}

	byServer := make(map[string]*acc)
	var order []string

	for _, perf := range history {
		a, ok := byServer[perf.ServerID]
		if !ok {
			a = &acc{
				kpi:     models.ServerKPI{ServerID: perf.ServerID, ByShift: make(map[string]models.ShiftAverages)},
				byShift: make(map[string]*models.ShiftAverages),
				tipSums: make(map[string]float64),
				tblSums: make(map[string]int),
				satSums: make(map[string]float64),
			}
			byServer[perf.ServerID] = a
			order = append(order, perf.ServerID)
		}
		a.kpi.TotalShifts++
		a.kpi.TotalTables += perf.TablesServed
		a.kpi.TotalTips = round2(a.kpi.TotalTips + perf.TotalTips)
		a.kpi.TotalSales = round2(a.kpi.TotalSales + perf.TotalSales)
		a.kpi.TotalErrors += perf.ErrorCount
		a.turnover += perf.AverageTurnoverTime
		a.sat += perf.CustomerSatisfaction
		a.upsell += perf.UpsellRate

		s, ok := a.byShift[perf.Shift]
		if !ok {
			s = &models.ShiftAverages{}
			a.byShift[perf.Shift] = s
		}
		s.Shifts++
		a.tipSums[perf.Shift] += perf.TotalTips
		a.tblSums[perf.Shift] += perf.TablesServed
		a.satSums[perf.Shift] += perf.CustomerSatisfaction
	}

	sort.Strings(order)

	kpis := make([]models.ServerKPI, 0, len(order))
	for _, id := range order {
		a := byServer[id]
		n := float64(a.kpi.TotalShifts)
		a.kpi.AverageTurnoverTime = round1(a.turnover / n)
		a.kpi.AverageSatisfaction = round1(a.sat / n)
		a.kpi.AverageUpsellRate = round2(a.upsell / n)
		if a.kpi.TotalTables > 0 {
			a.kpi.AverageCheckSize = round2(a.kpi.TotalSales / float64(a.kpi.TotalTables))
			a.kpi.ErrorRatePer100Tables = round1(float64(a.kpi.TotalErrors) / float64(a.kpi.TotalTables) * 100)
		}
		for shift, s := range a.byShift {
			sn := float64(s.Shifts)
			a.kpi.ByShift[shift] = models.ShiftAverages{
				Shifts:              s.Shifts,
				AverageTables:       round1(float64(a.tblSums[shift]) / sn),
				AverageTips:         round2(a.tipSums[shift] / sn),
				AverageSatisfaction: round1(a.satSums[shift] / sn),
			}
		}
		kpis = append(kpis, a.kpi)
	}
	return kpis
}

// kpiField extracts the ranking value for a named KPI field.
func kpiField(kpi models.ServerKPI, field string) float64 {
	switch field {
	case "total_tips":
		return kpi.TotalTips
	case "total_sales":
		return kpi.TotalSales
	case "total_tables":
		return float64(kpi.TotalTables)
	case "average_turnover_time":
		return kpi.AverageTurnoverTime
	case "average_satisfaction":
		return kpi.AverageSatisfaction
	case "average_upsell_rate":
		return kpi.AverageUpsellRate
	case "average_check_size":
		return kpi.AverageCheckSize
	case "error_rate_per_100_tables":
		return kpi.ErrorRatePer100Tables
	default:
		return 0
	}
}

// RankServers orders servers by one KPI field and assigns dense 1-based
// ranks plus a percentile. ascending=true ranks the smallest value first,
// which fits fields like turnover time and error rate where lower is better.
func RankServers(kpis []models.ServerKPI, field string, ascending bool) []models.KPIRanking {
	ranked := make([]models.KPIRanking, 0, len(kpis))
	for _, kpi := range kpis {
		ranked = append(ranked, models.KPIRanking{
			ServerID: kpi.ServerID,
			Field:    field,
			Value:    kpiField(kpi, field),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return ranked[i].Value < ranked[j].Value
		}
		return ranked[i].Value > ranked[j].Value
	})

	n := len(ranked)
	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].Percentile = math.Round(float64(n-ranked[i].Rank+1) / float64(n) * 100)
	}
	return ranked
}
