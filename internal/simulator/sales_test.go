package simulator

import (
	"testing"
	"time"

	"github.com/restodata/restosim/internal/factories"
	"github.com/restodata/restosim/internal/models"
	"github.com/stretchr/testify/assert"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.ApplyDefaults()
	cfg.Holidays = DefaultHolidays
	return cfg
}

func TestGenerateHistoricalSalesDeterminism(t *testing.T) {
	cfg := testConfig()
	menu := factories.NewMenu()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	first := NewSalesGenerator(cfg, menu).GenerateHistoricalSales(start, end, nil)
	second := NewSalesGenerator(cfg, menu).GenerateHistoricalSales(start, end, nil)

	assert.Equal(t, first, second)
}

func TestRevenueMatchesItemPrices(t *testing.T) {
	cfg := testConfig()
	menu := factories.NewMenu()
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)

	records := NewSalesGenerator(cfg, menu).GenerateHistoricalSales(start, end, nil)
	assert.NotEmpty(t, records)

	for _, rec := range records {
		sum := 0.0
		for _, item := range rec.Items {
			sum += item.Price
		}
		assert.Equal(t, round2(sum), rec.Revenue, "revenue mismatch on %s hour %d", rec.Date, rec.Hour)
		assert.Equal(t, len(rec.Items), rec.ItemCount)
	}
}

func TestUnavailableItemsNeverSold(t *testing.T) {
	cfg := testConfig()
	menu := factories.NewMenu()
	menu[4].Available = false // 86 the ribeye

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
	records := NewSalesGenerator(cfg, menu).GenerateHistoricalSales(start, end, nil)

	for _, rec := range records {
		for _, item := range rec.Items {
			assert.NotEqual(t, menu[4].ID, item.MenuItemID, "sold an unavailable item on %s", rec.Date)
		}
	}
}

func TestCalculateTableCountLunchBounds(t *testing.T) {
	cfg := testConfig()
	gen := NewSalesGenerator(cfg, factories.NewMenu())

	// non-holiday Tuesday, lunch hour: raw count is 4*1.5 = 6 before the
	// +/-25% jitter, so the rounded result stays within [5, 8]
	tuesday := time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		count := gen.CalculateTableCount(tuesday, 12)
		assert.GreaterOrEqual(t, count, 5)
		assert.LessOrEqual(t, count, 8)
	}
}

func TestCalculateTableCountAppliesFactors(t *testing.T) {
	cfg := testConfig()
	cfg.Holidays = []string{"2025-06-07"}
	gen := NewSalesGenerator(cfg, factories.NewMenu())

	// holiday Saturday, dinner hour: 4 * 1.8 * 1.3 * 1.5 = 14.04 pre-jitter
	holidaySaturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		count := gen.CalculateTableCount(holidaySaturday, 19)
		assert.GreaterOrEqual(t, count, 11)
		assert.LessOrEqual(t, count, 18)
	}
}

func TestGenerateDailySalesCoversOpenHours(t *testing.T) {
	cfg := testConfig()
	gen := NewSalesGenerator(cfg, factories.NewMenu())

	records := gen.GenerateDailySales(time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC))
	assert.Len(t, records, cfg.CloseHour-cfg.OpenHour)
	assert.Equal(t, cfg.OpenHour, records[0].Hour)
	assert.Equal(t, cfg.CloseHour-1, records[len(records)-1].Hour)
	for _, rec := range records {
		assert.Equal(t, "2025-06-02", rec.Date)
	}
}

func TestAggregateDaily(t *testing.T) {
	records := []models.HourlyRecord{
		{Date: "2025-06-02", Hour: 11, TableCount: 4, Revenue: 120.00, ItemCount: 10},
		{Date: "2025-06-02", Hour: 18, TableCount: 6, Revenue: 260.00, ItemCount: 16},
		{Date: "2025-06-01", Hour: 12, TableCount: 5, Revenue: 150.00, ItemCount: 12},
	}

	daily := AggregateDaily(records)
	assert.Len(t, daily, 2)

	// sorted by date
	assert.Equal(t, "2025-06-01", daily[0].Date)
	assert.Equal(t, "2025-06-02", daily[1].Date)

	june2 := daily[1]
	assert.Equal(t, 380.00, june2.TotalRevenue)
	assert.Equal(t, 10, june2.TotalTables)
	assert.Equal(t, 26, june2.TotalItems)
	assert.Equal(t, 38.00, june2.AverageCheck)
	assert.Equal(t, 18, june2.PeakHour)
	assert.Equal(t, 260.00, june2.PeakRevenue)
}

func TestAggregateWeeklySundayAligned(t *testing.T) {
	daily := []models.DailyAggregate{
		{Date: "2025-06-01", TotalRevenue: 100, TotalTables: 10, TotalItems: 20}, // Sunday
		{Date: "2025-06-07", TotalRevenue: 200, TotalTables: 10, TotalItems: 25}, // Saturday, same week
		{Date: "2025-06-08", TotalRevenue: 300, TotalTables: 15, TotalItems: 30}, // next Sunday
	}

	weekly := AggregateWeekly(daily)
	assert.Len(t, weekly, 2)

	assert.Equal(t, "2025-06-01", weekly[0].WeekStart)
	assert.Equal(t, 300.00, weekly[0].TotalRevenue)
	assert.Equal(t, 20, weekly[0].TotalTables)
	assert.Equal(t, 45, weekly[0].TotalItems)

	assert.Equal(t, "2025-06-08", weekly[1].WeekStart)
	assert.Equal(t, 300.00, weekly[1].TotalRevenue)
}
