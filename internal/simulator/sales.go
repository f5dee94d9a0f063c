package simulator

import (
	"sort"
	"time"

	"github.com/restodata/restosim/internal/models"
)

// SalesGenerator fabricates per-hour table counts and order line items for a
// date range. All randomness comes from its own stream, so the generated
// history is a pure function of (seed, config, menu).
type SalesGenerator struct {
	cfg     *models.Config
	rng     *Rand
	menu    []models.MenuItem
	weights []float64
}

func NewSalesGenerator(cfg *models.Config, menu []models.MenuItem) *SalesGenerator {
	popularity := cfg.PopularityWeights
	if len(popularity) == 0 {
		popularity = DefaultPopularityWeights
	}

	weights := make([]float64, len(menu))
	for i, item := range menu {
		w, ok := popularity[item.Category]
		if !ok {
			w = 1.0
		}
		weights[i] = w
	}

	return &SalesGenerator{
		cfg:     cfg,
		rng:     NewRand(cfg.SalesSeed),
		menu:    menu,
		weights: weights,
	}
}

// CalculateTableCount returns the simulated table count for one hour:
// base x time-of-day multiplier x weekend multiplier x holiday multiplier,
// with a uniform +/-25% jitter, rounded to the nearest nonnegative integer.
func (g *SalesGenerator) CalculateTableCount(date time.Time, hour int) int {
	count := float64(g.cfg.BaseTablesPerHour) * g.timeOfDayFactor(hour)

	if isWeekend(date) {
		count *= g.cfg.WeekendFactor
	}
	if g.cfg.IsHoliday(date.Format(models.DateLayout)) {
		count *= g.cfg.HolidayFactor
	}

	count *= 0.75 + g.rng.Next()*0.5

	rounded := int(count + 0.5)
	if rounded < 0 {
		return 0
	}
	return rounded
}

func (g *SalesGenerator) timeOfDayFactor(hour int) float64 {
	switch {
	case hour >= 11 && hour <= 14:
		return g.cfg.LunchRushFactor
	case hour >= 17 && hour <= 21:
		return g.cfg.DinnerRushFactor
	default:
		return g.cfg.SlowPeriodFactor
	}
}

// GenerateOrderItems draws the line items for tableCount virtual tables.
// Each table seats 1-6 guests and orders 2-4 items, capped at guests+1.
// Items are sampled over the whole menu by category popularity; a sampled
// item that is unavailable drops that slot entirely rather than resampling,
// so busy hours with 86'd items under-fill slightly.
func (g *SalesGenerator) GenerateOrderItems(tableCount int, date time.Time, hour int) []models.OrderItem {
	var items []models.OrderItem

	for t := 0; t < tableCount; t++ {
		guests := g.rng.RandomInt(1, 6)
		slots := g.rng.RandomInt(2, 4)
		if slots > guests+1 {
			slots = guests + 1
		}

		for s := 0; s < slots; s++ {
			idx := g.rng.WeightedIndex(g.weights)
			if idx < 0 {
				continue
			}
			item := g.menu[idx]
			if !item.Available {
				continue
			}
			guest := g.rng.RandomInt(1, guests)
			minute := g.rng.RandomInt(0, 59)

			ts := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
			items = append(items, models.OrderItem{
				MenuItemID:  item.ID,
				Name:        item.Name,
				Price:       item.Price,
				GuestNumber: guest,
				Timestamp:   ts.Format(time.RFC3339),
			})
		}
	}

	return items
}

// GenerateDailySales produces one HourlyRecord per open hour of the day.
func (g *SalesGenerator) GenerateDailySales(date time.Time) []models.HourlyRecord {
	records := make([]models.HourlyRecord, 0, g.cfg.CloseHour-g.cfg.OpenHour)

	for hour := g.cfg.OpenHour; hour < g.cfg.CloseHour; hour++ {
		tables := g.CalculateTableCount(date, hour)
		items := g.GenerateOrderItems(tables, date, hour)

		revenue := 0.0
		for _, item := range items {
			revenue += item.Price
		}
		revenue = round2(revenue)

		averageCheck := 0.0
		if tables > 0 {
			averageCheck = round2(revenue / float64(tables))
		}

		records = append(records, models.HourlyRecord{
			Date:         date.Format(models.DateLayout),
			Hour:         hour,
			TableCount:   tables,
			Items:        items,
			Revenue:      revenue,
			AverageCheck: averageCheck,
			ItemCount:    len(items),
		})
	}

	return records
}

// GenerateHistoricalSales generates hourly records for every day in
// [start, end]. The stream is reset exactly once, before the whole range;
// resetting per day would repeat the same day over and over. onDay, when
// non-nil, is invoked after each generated day.
func (g *SalesGenerator) GenerateHistoricalSales(start, end time.Time, onDay func()) []models.HourlyRecord {
	g.rng.Reset(g.cfg.SalesSeed)

	var records []models.HourlyRecord
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		records = append(records, g.GenerateDailySales(day)...)
		if onDay != nil {
			onDay()
		}
	}
	return records
}

// AggregateDaily rolls hourly records up into per-day totals, keyed by the
// ISO date string, tracking each day's peak-revenue hour.
func AggregateDaily(records []models.HourlyRecord) []models.DailyAggregate {
	byDate := make(map[string]*models.DailyAggregate)

	for _, rec := range records {
		agg, ok := byDate[rec.Date]
		if !ok {
			agg = &models.DailyAggregate{Date: rec.Date, PeakHour: -1}
			byDate[rec.Date] = agg
		}
		agg.TotalRevenue = round2(agg.TotalRevenue + rec.Revenue)
		agg.TotalTables += rec.TableCount
		agg.TotalItems += rec.ItemCount
		if rec.Revenue > agg.PeakRevenue {
			agg.PeakRevenue = rec.Revenue
			agg.PeakHour = rec.Hour
		}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	aggregates := make([]models.DailyAggregate, 0, len(dates))
	for _, date := range dates {
		agg := byDate[date]
		if agg.TotalTables > 0 {
			agg.AverageCheck = round2(agg.TotalRevenue / float64(agg.TotalTables))
		}
		aggregates = append(aggregates, *agg)
	}
	return aggregates
}

// AggregateWeekly rolls daily aggregates up into Sunday-aligned weeks,
// keyed by the week-start ISO date string.
func AggregateWeekly(daily []models.DailyAggregate) []models.WeeklyAggregate {
	byWeek := make(map[string]*models.WeeklyAggregate)

	for _, day := range daily {
		date, err := time.Parse(models.DateLayout, day.Date)
		if err != nil {
			continue
		}
		key := weekStart(date).Format(models.DateLayout)

		agg, ok := byWeek[key]
		if !ok {
			agg = &models.WeeklyAggregate{WeekStart: key}
			byWeek[key] = agg
		}
		agg.TotalRevenue = round2(agg.TotalRevenue + day.TotalRevenue)
		agg.TotalTables += day.TotalTables
		agg.TotalItems += day.TotalItems
	}

	weeks := make([]string, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	aggregates := make([]models.WeeklyAggregate, 0, len(weeks))
	for _, week := range weeks {
		agg := byWeek[week]
		if agg.TotalTables > 0 {
			agg.AverageCheck = round2(agg.TotalRevenue / float64(agg.TotalTables))
		}
		aggregates = append(aggregates, *agg)
	}
	return aggregates
}
