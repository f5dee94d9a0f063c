package simulator

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/restodata/restosim/internal/analytics"
	"github.com/restodata/restosim/internal/factories"
	"github.com/restodata/restosim/internal/models"
	"github.com/restodata/restosim/internal/output"
	"github.com/schollz/progressbar/v3"
)

// Simulator wires the generators together: it builds the menu, roster and
// starting inventory, runs every generation stage in dependency order, and
// fans the resulting datasets out to the configured sinks.
type Simulator struct {
	Config    *models.Config
	Menu      []models.MenuItem
	Staff     []models.StaffMember
	Inventory []models.InventoryItem
	Recipes   map[string][]models.RecipeIngredient
	Costs     map[string]float64
}

func NewSimulator(config *models.Config) *Simulator {
	sim := &Simulator{Config: config}
	sim.initializeData()
	return sim
}

func (s *Simulator) initializeData() {
	s.Menu = factories.NewMenu()
	s.Staff = factories.NewStaff(s.Config.ServerCount, s.Config.HostCount, s.Config.CookCount)
	s.Inventory = DefaultInventory
	s.Recipes = DefaultRecipes
	s.Costs = IngredientCosts

	if len(s.Config.Holidays) == 0 {
		s.Config.Holidays = DefaultHolidays
	}
	if len(s.Config.PopularityWeights) == 0 {
		s.Config.PopularityWeights = DefaultPopularityWeights
	}
}

// dateRange normalizes the configured range: an unset range defaults to the
// four weeks ending today.
func (s *Simulator) dateRange() (time.Time, time.Time) {
	start, end := s.Config.StartDate, s.Config.EndDate
	if end.IsZero() {
		now := time.Now()
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	if start.IsZero() || start.After(end) {
		start = end.AddDate(0, 0, -27)
	}
	return start, end
}

func (s *Simulator) Run() error {
	start, end := s.dateRange()
	days := int(end.Sub(start).Hours()/24) + 1
	log.Printf("Generating %d days of history (%s to %s)",
		days, start.Format(models.DateLayout), end.Format(models.DateLayout))

	// sales feed inventory, scheduling and profitability downstream
	salesGen := NewSalesGenerator(s.Config, s.Menu)
	bar := progressbar.Default(int64(days), "generating sales")
	hourly := salesGen.GenerateHistoricalSales(start, end, func() {
		_ = bar.Add(1)
	})
	daily := AggregateDaily(hourly)
	weekly := AggregateWeekly(daily)
	log.Printf("Generated %d hourly records across %d days", len(hourly), len(daily))

	perfGen := NewPerformanceGenerator(s.Config)
	performance := perfGen.GenerateHistory(s.Staff, start, end)
	kpis := ComputeKPIs(performance)
	if rankings := RankServers(kpis, "total_sales", false); len(rankings) > 0 {
		log.Printf("Top server by sales: %s ($%.2f)", rankings[0].ServerID, rankings[0].Value)
	}

	invGen := NewInventoryGenerator(s.Config, s.Recipes, s.Inventory)
	usage := invGen.GenerateUsageHistory(hourly)
	predictions := invGen.GeneratePredictions(usage, end)
	notifications := invGen.GenerateReorderNotifications(predictions)
	log.Printf("Generated %d usage records, %d reorder notifications", len(usage), len(notifications))

	schedGen := NewSchedulingGenerator(s.Config)
	var (
		recommendations []models.StaffingRecommendation
		shifts          []models.ScheduledShift
	)
	for week := weekStart(start); !week.After(end); week = week.AddDate(0, 0, 7) {
		weekRecs := schedGen.GenerateWeeklyRecommendations(hourly, week)
		recommendations = append(recommendations, weekRecs...)
		shifts = append(shifts, schedGen.AssignShifts(weekRecs, s.Staff)...)
	}
	conflicts := CheckSchedulingConflicts(shifts)
	punches := schedGen.GeneratePunches(shifts)
	laborCosts := LaborCostByDay(punches)
	log.Printf("Scheduled %d shifts (%d conflicts), %d punches", len(shifts), len(conflicts), len(punches))

	calc := analytics.NewCalculator(s.Recipes, s.Costs)
	profitability := make([]models.MenuItemProfitability, 0, len(s.Menu))
	for _, item := range s.Menu {
		profitability = append(profitability, calc.ItemProfitability(item, hourly))
	}
	summary := calc.Summary(profitability, laborCosts)
	log.Printf("Food cost %.1f%%, prime cost %.1f%%", summary.FoodCostPercent, summary.PrimeCostPercent)

	sink := s.determineOutputDestination()
	if err := s.writeDatasets(sink, hourly, daily, weekly, performance, kpis,
		usage, predictions, notifications, recommendations, shifts, conflicts,
		punches, profitability, summary); err != nil {
		_ = sink.Close()
		return err
	}
	if err := sink.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	if s.Config.PostgresEnabled {
		if err := s.loadPostgres(hourly, daily, weekly, performance, kpis,
			usage, predictions, notifications, recommendations, shifts,
			punches, profitability, summary); err != nil {
			return err
		}
	}

	log.Printf("Simulation complete")
	return nil
}

func writeRows[T any](sink OutputDestination, topic string, rows []T) error {
	for _, row := range rows {
		msg, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("failed to marshal %s row: %w", topic, err)
		}
		if err := sink.WriteMessage(topic, msg); err != nil {
			return fmt.Errorf("failed to write %s: %w", topic, err)
		}
	}
	return nil
}

func (s *Simulator) writeDatasets(
	sink OutputDestination,
	hourly []models.HourlyRecord,
	daily []models.DailyAggregate,
	weekly []models.WeeklyAggregate,
	performance []models.ShiftPerformance,
	kpis []models.ServerKPI,
	usage []models.UsageRecord,
	predictions []models.InventoryPrediction,
	notifications []models.ReorderNotification,
	recommendations []models.StaffingRecommendation,
	shifts []models.ScheduledShift,
	conflicts []models.SchedulingConflict,
	punches []models.TimePunch,
	profitability []models.MenuItemProfitability,
	summary models.ProfitabilitySummary,
) error {
	hourlyRows := make([]HourlySalesRow, 0, len(hourly))
	var itemRows []OrderItemRow
	for _, rec := range hourly {
		hourlyRows = append(hourlyRows, hourlySalesRow(rec))
		itemRows = append(itemRows, orderItemRows(rec)...)
	}
	if err := writeRows(sink, TopicHourlySales, hourlyRows); err != nil {
		return err
	}
	if err := writeRows(sink, TopicOrderItems, itemRows); err != nil {
		return err
	}

	dailyRows := make([]DailySalesRow, 0, len(daily))
	for _, agg := range daily {
		dailyRows = append(dailyRows, dailySalesRow(agg))
	}
	if err := writeRows(sink, TopicDailySales, dailyRows); err != nil {
		return err
	}

	weeklyRows := make([]WeeklySalesRow, 0, len(weekly))
	for _, agg := range weekly {
		weeklyRows = append(weeklyRows, weeklySalesRow(agg))
	}
	if err := writeRows(sink, TopicWeeklySales, weeklyRows); err != nil {
		return err
	}

	perfRows := make([]ShiftPerformanceRow, 0, len(performance))
	for _, perf := range performance {
		perfRows = append(perfRows, shiftPerformanceRow(perf))
	}
	if err := writeRows(sink, TopicShiftPerformance, perfRows); err != nil {
		return err
	}

	kpiRows := make([]ServerKPIRow, 0, len(kpis))
	for _, kpi := range kpis {
		kpiRows = append(kpiRows, serverKPIRow(kpi))
	}
	if err := writeRows(sink, TopicServerKPIs, kpiRows); err != nil {
		return err
	}

	usageRows := make([]InventoryUsageRow, 0, len(usage))
	for _, rec := range usage {
		usageRows = append(usageRows, inventoryUsageRow(rec))
	}
	if err := writeRows(sink, TopicInventoryUsage, usageRows); err != nil {
		return err
	}

	predRows := make([]InventoryPredictionRow, 0, len(predictions))
	for _, pred := range predictions {
		predRows = append(predRows, inventoryPredictionRow(pred))
	}
	if err := writeRows(sink, TopicInventoryPredictions, predRows); err != nil {
		return err
	}

	notifRows := make([]ReorderNotificationRow, 0, len(notifications))
	for _, n := range notifications {
		notifRows = append(notifRows, reorderNotificationRow(n))
	}
	if err := writeRows(sink, TopicReorderNotifications, notifRows); err != nil {
		return err
	}

	recRows := make([]StaffingRecommendationRow, 0, len(recommendations))
	for _, rec := range recommendations {
		recRows = append(recRows, staffingRecommendationRow(rec))
	}
	if err := writeRows(sink, TopicStaffingRecommendation, recRows); err != nil {
		return err
	}

	shiftRows := make([]ScheduledShiftRow, 0, len(shifts))
	for _, shift := range shifts {
		shiftRows = append(shiftRows, scheduledShiftRow(shift))
	}
	if err := writeRows(sink, TopicScheduledShifts, shiftRows); err != nil {
		return err
	}

	punchRows := make([]TimePunchRow, 0, len(punches))
	for _, punch := range punches {
		punchRows = append(punchRows, timePunchRow(punch))
	}
	if err := writeRows(sink, TopicTimePunches, punchRows); err != nil {
		return err
	}

	conflictRows := make([]SchedulingConflictRow, 0, len(conflicts))
	for _, conflict := range conflicts {
		conflictRows = append(conflictRows, schedulingConflictRow(conflict))
	}
	if err := writeRows(sink, TopicSchedulingConflicts, conflictRows); err != nil {
		return err
	}

	profRows := make([]MenuItemProfitabilityRow, 0, len(profitability))
	for _, item := range profitability {
		profRows = append(profRows, menuItemProfitabilityRow(item))
	}
	if err := writeRows(sink, TopicMenuItemProfitability, profRows); err != nil {
		return err
	}

	return writeRows(sink, TopicProfitabilitySummary,
		[]ProfitabilitySummaryRow{profitabilitySummaryRow(summary)})
}

func (s *Simulator) loadPostgres(
	hourly []models.HourlyRecord,
	daily []models.DailyAggregate,
	weekly []models.WeeklyAggregate,
	performance []models.ShiftPerformance,
	kpis []models.ServerKPI,
	usage []models.UsageRecord,
	predictions []models.InventoryPrediction,
	notifications []models.ReorderNotification,
	recommendations []models.StaffingRecommendation,
	shifts []models.ScheduledShift,
	punches []models.TimePunch,
	profitability []models.MenuItemProfitability,
	summary models.ProfitabilitySummary,
) error {
	ctx := context.Background()
	sink, err := output.NewPostgresSink(ctx, &s.Config.Database)
	if err != nil {
		return err
	}
	defer sink.Close()

	if err := sink.CreateTables(ctx); err != nil {
		return err
	}
	if err := sink.TruncateAll(ctx); err != nil {
		return err
	}

	steps := []func() error{
		func() error { return sink.InsertHourlySales(ctx, hourly) },
		func() error { return sink.InsertOrderItems(ctx, hourly) },
		func() error { return sink.InsertDailySales(ctx, daily) },
		func() error { return sink.InsertWeeklySales(ctx, weekly) },
		func() error { return sink.InsertShiftPerformance(ctx, performance) },
		func() error { return sink.InsertServerKPIs(ctx, kpis) },
		func() error { return sink.InsertInventoryUsage(ctx, usage) },
		func() error { return sink.InsertInventoryPredictions(ctx, predictions) },
		func() error { return sink.InsertReorderNotifications(ctx, notifications) },
		func() error { return sink.InsertStaffingRecommendations(ctx, recommendations) },
		func() error { return sink.InsertScheduledShifts(ctx, shifts) },
		func() error { return sink.InsertTimePunches(ctx, punches) },
		func() error { return sink.InsertMenuItemProfitability(ctx, profitability) },
		func() error { return sink.InsertProfitabilitySummary(ctx, summary) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
