package simulator

import (
	"testing"
	"time"

	"github.com/restodata/restosim/internal/factories"
	"github.com/restodata/restosim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestGenerateHistoryDeterminism(t *testing.T) {
	cfg := testConfig()
	staff := factories.NewStaff(4, 1, 2)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	first := NewPerformanceGenerator(cfg).GenerateHistory(staff, start, end)
	second := NewPerformanceGenerator(cfg).GenerateHistory(staff, start, end)

	assert.Equal(t, first, second)
}

func TestGenerateHistoryServersOnly(t *testing.T) {
	cfg := testConfig()
	staff := factories.NewStaff(3, 2, 2)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	history := NewPerformanceGenerator(cfg).GenerateHistory(staff, start, end)
	assert.NotEmpty(t, history)

	serverIDs := map[string]bool{"srv-1": true, "srv-2": true, "srv-3": true}
	for _, perf := range history {
		assert.True(t, serverIDs[perf.ServerID], "non-server %s has performance records", perf.ServerID)
		assert.Contains(t, []string{models.ShiftLunch, models.ShiftDinner}, perf.Shift)
	}
}

func TestGenerateHistoryMetricBounds(t *testing.T) {
	cfg := testConfig()
	staff := factories.NewStaff(8, 0, 0)
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	history := NewPerformanceGenerator(cfg).GenerateHistory(staff, start, end)
	for _, perf := range history {
		assert.GreaterOrEqual(t, perf.CustomerSatisfaction, 1.0)
		assert.LessOrEqual(t, perf.CustomerSatisfaction, 5.0)
		assert.GreaterOrEqual(t, perf.UpsellRate, 0.05)
		assert.LessOrEqual(t, perf.UpsellRate, 0.8)
		assert.GreaterOrEqual(t, perf.TablesServed, 0)
		assert.LessOrEqual(t, perf.ErrorCount, perf.TablesServed)
		assert.GreaterOrEqual(t, perf.TotalTips, 0.0)
	}
}

func TestPerServerStreamsAreIndependent(t *testing.T) {
	cfg := testConfig()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)

	soloRoster := []models.StaffMember{{ID: "srv-2", Role: models.RoleServer}}
	pairRoster := []models.StaffMember{
		{ID: "srv-1", Role: models.RoleServer},
		{ID: "srv-2", Role: models.RoleServer},
	}

	solo := NewPerformanceGenerator(cfg).GenerateHistory(soloRoster, start, end)
	pair := NewPerformanceGenerator(cfg).GenerateHistory(pairRoster, start, end)

	var pairSrv2 []models.ShiftPerformance
	for _, perf := range pair {
		if perf.ServerID == "srv-2" {
			pairSrv2 = append(pairSrv2, perf)
		}
	}
	assert.Equal(t, solo, pairSrv2, "adding srv-1 to the roster changed srv-2's history")
}

func TestComputeKPIs(t *testing.T) {
	history := []models.ShiftPerformance{
		{
			ServerID: "srv-1", Date: "2025-06-02", Shift: models.ShiftLunch,
			TablesServed: 10, AverageTurnoverTime: 50, TotalTips: 100,
			TotalSales: 300, ErrorCount: 1, CustomerSatisfaction: 4.0, UpsellRate: 0.4,
		},
		{
			ServerID: "srv-1", Date: "2025-06-03", Shift: models.ShiftDinner,
			TablesServed: 15, AverageTurnoverTime: 40, TotalTips: 200,
			TotalSales: 450, ErrorCount: 2, CustomerSatisfaction: 4.4, UpsellRate: 0.5,
		},
	}

	kpis := ComputeKPIs(history)
	assert.Len(t, kpis, 1)

	kpi := kpis[0]
	assert.Equal(t, "srv-1", kpi.ServerID)
	assert.Equal(t, 2, kpi.TotalShifts)
	assert.Equal(t, 25, kpi.TotalTables)
	assert.Equal(t, 300.00, kpi.TotalTips)
	assert.Equal(t, 750.00, kpi.TotalSales)
	assert.Equal(t, 3, kpi.TotalErrors)
	assert.Equal(t, 45.0, kpi.AverageTurnoverTime)
	assert.Equal(t, 4.2, kpi.AverageSatisfaction)
	assert.Equal(t, 0.45, kpi.AverageUpsellRate)
	assert.Equal(t, 30.00, kpi.AverageCheckSize)
	assert.Equal(t, 12.0, kpi.ErrorRatePer100Tables)

	lunch, ok := kpi.ByShift[models.ShiftLunch]
	assert.True(t, ok)
	assert.Equal(t, 1, lunch.Shifts)
	assert.Equal(t, 10.0, lunch.AverageTables)
	assert.Equal(t, 100.00, lunch.AverageTips)
	assert.Equal(t, 4.0, lunch.AverageSatisfaction)
}

func TestRankServers(t *testing.T) {
	kpis := []models.ServerKPI{
		{ServerID: "srv-1", TotalSales: 400},
		{ServerID: "srv-2", TotalSales: 900},
		{ServerID: "srv-3", TotalSales: 700},
		{ServerID: "srv-4", TotalSales: 100},
	}

	rankings := RankServers(kpis, "total_sales", false)
	assert.Len(t, rankings, 4)

	assert.Equal(t, "srv-2", rankings[0].ServerID)
	assert.Equal(t, 1, rankings[0].Rank)
	assert.Equal(t, 100.0, rankings[0].Percentile)

	assert.Equal(t, "srv-4", rankings[3].ServerID)
	assert.Equal(t, 4, rankings[3].Rank)
	assert.Equal(t, 25.0, rankings[3].Percentile)

	ascending := RankServers(kpis, "total_sales", true)
	assert.Equal(t, "srv-4", ascending[0].ServerID)
	assert.Equal(t, 100.0, ascending[0].Percentile)
}
