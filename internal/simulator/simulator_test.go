package simulator

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/restodata/restosim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDateRangeDefaults(t *testing.T) {
	cfg := testConfig()
	sim := NewSimulator(cfg)

	start, end := sim.dateRange()
	assert.Equal(t, 28, int(end.Sub(start).Hours()/24)+1, "default range should cover four weeks")
	assert.False(t, start.After(end))
}

func TestDateRangeExplicit(t *testing.T) {
	cfg := testConfig()
	cfg.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndDate = time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	sim := NewSimulator(cfg)

	start, end := sim.dateRange()
	assert.Equal(t, cfg.StartDate, start)
	assert.Equal(t, cfg.EndDate, end)
}

func TestInitializeDataFillsDefaults(t *testing.T) {
	cfg := &models.Config{}
	cfg.ApplyDefaults()
	sim := NewSimulator(cfg)

	assert.Len(t, sim.Menu, 14)
	assert.Len(t, sim.Staff, cfg.ServerCount+cfg.HostCount+cfg.CookCount)
	assert.NotEmpty(t, sim.Inventory)
	assert.Equal(t, DefaultHolidays, cfg.Holidays)
	assert.Equal(t, DefaultPopularityWeights, cfg.PopularityWeights)
}

func TestJSONOutputPartitionsByDate(t *testing.T) {
	dir := t.TempDir()
	sink := NewJSONOutput(dir, "out")

	row := HourlySalesRow{Date: "2025-06-02", Hour: 12, TableCount: 4, Revenue: 120, AverageCheck: 30, ItemCount: 10}
	msg, _ := jsonMarshal(t, row)
	assert.NoError(t, sink.WriteMessage(TopicHourlySales, msg))
	assert.NoError(t, sink.Close())

	written, err := os.ReadFile(filepath.Join(dir, "out", TopicHourlySales, "date=2025-06-02", "data.json"))
	assert.NoError(t, err)
	assert.Contains(t, string(written), `"revenue":120`)
}

func TestCSVOutputWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	sink := NewCSVOutput(dir, "out")

	for hour := int32(11); hour <= 12; hour++ {
		row := HourlySalesRow{Date: "2025-06-02", Hour: hour, TableCount: 4, Revenue: 100, AverageCheck: 25, ItemCount: 8}
		msg, _ := jsonMarshal(t, row)
		assert.NoError(t, sink.WriteMessage(TopicHourlySales, msg))
	}
	assert.NoError(t, sink.Close())

	written, err := os.ReadFile(filepath.Join(dir, "out", TopicHourlySales, "date=2025-06-02", "data.csv"))
	assert.NoError(t, err)

	lines := 0
	for _, b := range written {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 3, lines, "expected one header line and two data lines")
}

func TestWriteDatasetsCoversEveryTopic(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	cfg.EndDate = time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	sim := NewSimulator(cfg)

	salesGen := NewSalesGenerator(cfg, sim.Menu)
	hourly := salesGen.GenerateHistoricalSales(cfg.StartDate, cfg.EndDate, nil)
	daily := AggregateDaily(hourly)
	weekly := AggregateWeekly(daily)

	performance := NewPerformanceGenerator(cfg).GenerateHistory(sim.Staff, cfg.StartDate, cfg.EndDate)
	kpis := ComputeKPIs(performance)

	invGen := NewInventoryGenerator(cfg, sim.Recipes, sim.Inventory)
	usage := invGen.GenerateUsageHistory(hourly)
	predictions := invGen.GeneratePredictions(usage, cfg.EndDate)
	notifications := invGen.GenerateReorderNotifications(predictions)

	schedGen := NewSchedulingGenerator(cfg)
	recommendations := schedGen.GenerateWeeklyRecommendations(hourly, cfg.StartDate)
	shifts := schedGen.AssignShifts(recommendations, sim.Staff)
	conflicts := CheckSchedulingConflicts(shifts)
	punches := schedGen.GeneratePunches(shifts)

	sink := NewJSONOutput(dir, "out")
	err := sim.writeDatasets(sink, hourly, daily, weekly, performance, kpis,
		usage, predictions, notifications, recommendations, shifts, conflicts,
		punches, nil, models.ProfitabilitySummary{})
	assert.NoError(t, err)
	assert.NoError(t, sink.Close())

	// every topic that had rows must have produced files
	for _, topic := range []string{
		TopicHourlySales, TopicOrderItems, TopicDailySales, TopicWeeklySales,
		TopicShiftPerformance, TopicServerKPIs, TopicInventoryUsage,
		TopicInventoryPredictions, TopicStaffingRecommendation,
		TopicScheduledShifts, TopicTimePunches, TopicProfitabilitySummary,
	} {
		entries, err := os.ReadDir(filepath.Join(dir, "out", topic))
		assert.NoError(t, err, "topic %s missing", topic)
		assert.NotEmpty(t, entries, "topic %s empty", topic)
	}
}

func jsonMarshal(t *testing.T, v interface{}) ([]byte, error) {
	t.Helper()
	msg, err := json.Marshal(v)
	assert.NoError(t, err)
	return msg, err
}
