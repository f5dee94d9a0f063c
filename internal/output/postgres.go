// Package output holds the database sink for generated datasets.
package output

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/restodata/restosim/internal/models"
)

// PostgresSink bulk-loads generated datasets with COPY. One table per
// dataset family, truncated before each run so reruns stay idempotent.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(ctx context.Context, config *models.DatabaseConfig) (*PostgresSink, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

var tableDDL = []string{
	`CREATE TABLE IF NOT EXISTS hourly_sales (
		date TEXT NOT NULL,
		hour INT NOT NULL,
		table_count INT NOT NULL,
		revenue DOUBLE PRECISION NOT NULL,
		average_check DOUBLE PRECISION NOT NULL,
		item_count INT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		date TEXT NOT NULL,
		hour INT NOT NULL,
		menu_item_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		guest_number INT NOT NULL,
		ordered_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_sales (
		date TEXT PRIMARY KEY,
		total_revenue DOUBLE PRECISION NOT NULL,
		total_tables INT NOT NULL,
		total_items INT NOT NULL,
		average_check DOUBLE PRECISION NOT NULL,
		peak_hour INT NOT NULL,
		peak_revenue DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS weekly_sales (
		week_start TEXT PRIMARY KEY,
		total_revenue DOUBLE PRECISION NOT NULL,
		total_tables INT NOT NULL,
		total_items INT NOT NULL,
		average_check DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS server_shift_performance (
		server_id TEXT NOT NULL,
		date TEXT NOT NULL,
		shift TEXT NOT NULL,
		tables_served INT NOT NULL,
		average_turnover_time DOUBLE PRECISION NOT NULL,
		total_tips DOUBLE PRECISION NOT NULL,
		total_sales DOUBLE PRECISION NOT NULL,
		average_check_size DOUBLE PRECISION NOT NULL,
		error_count INT NOT NULL,
		customer_satisfaction DOUBLE PRECISION NOT NULL,
		upsell_rate DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS server_kpis (
		server_id TEXT PRIMARY KEY,
		total_shifts INT NOT NULL,
		total_tables INT NOT NULL,
		total_tips DOUBLE PRECISION NOT NULL,
		total_sales DOUBLE PRECISION NOT NULL,
		total_errors INT NOT NULL,
		average_turnover_time DOUBLE PRECISION NOT NULL,
		average_satisfaction DOUBLE PRECISION NOT NULL,
		average_upsell_rate DOUBLE PRECISION NOT NULL,
		average_check_size DOUBLE PRECISION NOT NULL,
		error_rate_per_100_tables DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_usage (
		item_id TEXT NOT NULL,
		date TEXT NOT NULL,
		quantity_used DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_predictions (
		item_id TEXT PRIMARY KEY,
		current_stock DOUBLE PRECISION NOT NULL,
		average_daily_usage DOUBLE PRECISION NOT NULL,
		predicted_days_until_out DOUBLE PRECISION,
		recommended_reorder_quantity DOUBLE PRECISION NOT NULL,
		reorder_urgency TEXT NOT NULL,
		below_min_threshold BOOLEAN NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS reorder_notifications (
		id TEXT PRIMARY KEY,
		item_id TEXT NOT NULL,
		item_name TEXT NOT NULL,
		recommended_quantity DOUBLE PRECISION NOT NULL,
		urgency TEXT NOT NULL,
		reason TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS staffing_recommendations (
		date TEXT NOT NULL,
		shift TEXT NOT NULL,
		recommended_servers INT NOT NULL,
		recommended_hosts INT NOT NULL,
		recommended_cooks INT NOT NULL,
		expected_tables DOUBLE PRECISION NOT NULL,
		peak_tables DOUBLE PRECISION NOT NULL,
		confidence DOUBLE PRECISION NOT NULL,
		reasoning TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_shifts (
		id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		date TEXT NOT NULL,
		shift_type TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS time_punches (
		id TEXT PRIMARY KEY,
		staff_id TEXT NOT NULL,
		scheduled_shift_id TEXT NOT NULL,
		clock_in_time TIMESTAMPTZ NOT NULL,
		clock_out_time TIMESTAMPTZ NOT NULL,
		break_minutes INT NOT NULL,
		hours_worked DOUBLE PRECISION NOT NULL,
		labor_cost DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS menu_item_profitability (
		menu_item_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		selling_price DOUBLE PRECISION NOT NULL,
		ingredient_cost DOUBLE PRECISION NOT NULL,
		gross_profit DOUBLE PRECISION NOT NULL,
		gross_margin DOUBLE PRECISION NOT NULL,
		quantity_sold INT NOT NULL,
		total_revenue DOUBLE PRECISION NOT NULL,
		total_cost DOUBLE PRECISION NOT NULL,
		contribution_margin DOUBLE PRECISION NOT NULL,
		recommendation TEXT NOT NULL,
		reasoning TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profitability_summary (
		total_revenue DOUBLE PRECISION NOT NULL,
		total_cogs DOUBLE PRECISION NOT NULL,
		total_labor_cost DOUBLE PRECISION NOT NULL,
		gross_profit DOUBLE PRECISION NOT NULL,
		food_cost_percent DOUBLE PRECISION NOT NULL,
		prime_cost DOUBLE PRECISION NOT NULL,
		prime_cost_percent DOUBLE PRECISION NOT NULL
	)`,
}

var sinkTables = []string{
	"hourly_sales", "order_items", "daily_sales", "weekly_sales",
	"server_shift_performance", "server_kpis", "inventory_usage",
	"inventory_predictions", "reorder_notifications",
	"staffing_recommendations", "scheduled_shifts", "time_punches",
	"menu_item_profitability", "profitability_summary",
}

// CreateTables makes sure every dataset table exists.
func (p *PostgresSink) CreateTables(ctx context.Context) error {
	for _, ddl := range tableDDL {
		if _, err := p.pool.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// TruncateAll clears every dataset table before a fresh load.
func (p *PostgresSink) TruncateAll(ctx context.Context) error {
	for _, table := range sinkTables {
		if _, err := p.pool.Exec(ctx, "TRUNCATE TABLE "+table); err != nil {
			return fmt.Errorf("failed to truncate %s: %w", table, err)
		}
	}
	return nil
}

func (p *PostgresSink) copyFrom(ctx context.Context, table string, columns []string, rows [][]interface{}) error {
	count, err := p.pool.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("copy into %s failed: %w", table, err)
	}
	log.Printf("Loaded %d rows into %s", count, table)
	return nil
}

func (p *PostgresSink) InsertHourlySales(ctx context.Context, records []models.HourlyRecord) error {
	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []interface{}{
			rec.Date, rec.Hour, rec.TableCount, rec.Revenue, rec.AverageCheck, rec.ItemCount,
		})
	}
	return p.copyFrom(ctx, "hourly_sales",
		[]string{"date", "hour", "table_count", "revenue", "average_check", "item_count"}, rows)
}

func (p *PostgresSink) InsertOrderItems(ctx context.Context, records []models.HourlyRecord) error {
	var rows [][]interface{}
	for _, rec := range records {
		for _, item := range rec.Items {
			orderedAt, err := time.Parse(time.RFC3339, item.Timestamp)
			if err != nil {
				return fmt.Errorf("invalid order item timestamp %q: %w", item.Timestamp, err)
			}
			rows = append(rows, []interface{}{
				rec.Date, rec.Hour, item.MenuItemID, item.Name, item.Price, item.GuestNumber, orderedAt,
			})
		}
	}
	return p.copyFrom(ctx, "order_items",
		[]string{"date", "hour", "menu_item_id", "name", "price", "guest_number", "ordered_at"}, rows)
}

func (p *PostgresSink) InsertDailySales(ctx context.Context, aggregates []models.DailyAggregate) error {
	rows := make([][]interface{}, 0, len(aggregates))
	for _, agg := range aggregates {
		rows = append(rows, []interface{}{
			agg.Date, agg.TotalRevenue, agg.TotalTables, agg.TotalItems,
			agg.AverageCheck, agg.PeakHour, agg.PeakRevenue,
		})
	}
	return p.copyFrom(ctx, "daily_sales",
		[]string{"date", "total_revenue", "total_tables", "total_items", "average_check", "peak_hour", "peak_revenue"}, rows)
}

func (p *PostgresSink) InsertWeeklySales(ctx context.Context, aggregates []models.WeeklyAggregate) error {
	rows := make([][]interface{}, 0, len(aggregates))
	for _, agg := range aggregates {
		rows = append(rows, []interface{}{
			agg.WeekStart, agg.TotalRevenue, agg.TotalTables, agg.TotalItems, agg.AverageCheck,
		})
	}
	return p.copyFrom(ctx, "weekly_sales",
		[]string{"week_start", "total_revenue", "total_tables", "total_items", "average_check"}, rows)
}

func (p *PostgresSink) InsertShiftPerformance(ctx context.Context, history []models.ShiftPerformance) error {
	rows := make([][]interface{}, 0, len(history))
	for _, perf := range history {
		rows = append(rows, []interface{}{
			perf.ServerID, perf.Date, perf.Shift, perf.TablesServed, perf.AverageTurnoverTime,
			perf.TotalTips, perf.TotalSales, perf.AverageCheckSize, perf.ErrorCount,
			perf.CustomerSatisfaction, perf.UpsellRate,
		})
	}
	return p.copyFrom(ctx, "server_shift_performance",
		[]string{"server_id", "date", "shift", "tables_served", "average_turnover_time",
			"total_tips", "total_sales", "average_check_size", "error_count",
			"customer_satisfaction", "upsell_rate"}, rows)
}

func (p *PostgresSink) InsertServerKPIs(ctx context.Context, kpis []models.ServerKPI) error {
	rows := make([][]interface{}, 0, len(kpis))
	for _, kpi := range kpis {
		rows = append(rows, []interface{}{
			kpi.ServerID, kpi.TotalShifts, kpi.TotalTables, kpi.TotalTips, kpi.TotalSales,
			kpi.TotalErrors, kpi.AverageTurnoverTime, kpi.AverageSatisfaction,
			kpi.AverageUpsellRate, kpi.AverageCheckSize, kpi.ErrorRatePer100Tables,
		})
	}
	return p.copyFrom(ctx, "server_kpis",
		[]string{"server_id", "total_shifts", "total_tables", "total_tips", "total_sales",
			"total_errors", "average_turnover_time", "average_satisfaction",
			"average_upsell_rate", "average_check_size", "error_rate_per_100_tables"}, rows)
}

func (p *PostgresSink) InsertInventoryUsage(ctx context.Context, history []models.UsageRecord) error {
	rows := make([][]interface{}, 0, len(history))
	for _, rec := range history {
		rows = append(rows, []interface{}{rec.ItemID, rec.Date, rec.QuantityUsed, rec.Unit})
	}
	return p.copyFrom(ctx, "inventory_usage",
		[]string{"item_id", "date", "quantity_used", "unit"}, rows)
}

func (p *PostgresSink) InsertInventoryPredictions(ctx context.Context, predictions []models.InventoryPrediction) error {
	rows := make([][]interface{}, 0, len(predictions))
	for _, pred := range predictions {
		rows = append(rows, []interface{}{
			pred.ItemID, pred.CurrentStock, pred.AverageDailyUsage, pred.PredictedDaysUntilOut,
			pred.RecommendedReorderQuantity, pred.ReorderUrgency, pred.BelowMinThreshold,
		})
	}
	return p.copyFrom(ctx, "inventory_predictions",
		[]string{"item_id", "current_stock", "average_daily_usage", "predicted_days_until_out",
			"recommended_reorder_quantity", "reorder_urgency", "below_min_threshold"}, rows)
}

func (p *PostgresSink) InsertReorderNotifications(ctx context.Context, notifications []models.ReorderNotification) error {
	rows := make([][]interface{}, 0, len(notifications))
	for _, n := range notifications {
		rows = append(rows, []interface{}{
			n.ID, n.ItemID, n.ItemName, n.RecommendedQuantity, n.Urgency, n.Reason, n.Status,
		})
	}
	return p.copyFrom(ctx, "reorder_notifications",
		[]string{"id", "item_id", "item_name", "recommended_quantity", "urgency", "reason", "status"}, rows)
}

func (p *PostgresSink) InsertStaffingRecommendations(ctx context.Context, recommendations []models.StaffingRecommendation) error {
	rows := make([][]interface{}, 0, len(recommendations))
	for _, rec := range recommendations {
		rows = append(rows, []interface{}{
			rec.Date, rec.Shift, rec.RecommendedServers, rec.RecommendedHosts, rec.RecommendedCooks,
			rec.ExpectedTables, rec.PeakTables, rec.Confidence, rec.Reasoning,
		})
	}
	return p.copyFrom(ctx, "staffing_recommendations",
		[]string{"date", "shift", "recommended_servers", "recommended_hosts", "recommended_cooks",
			"expected_tables", "peak_tables", "confidence", "reasoning"}, rows)
}

func (p *PostgresSink) InsertScheduledShifts(ctx context.Context, shifts []models.ScheduledShift) error {
	rows := make([][]interface{}, 0, len(shifts))
	for _, shift := range shifts {
		rows = append(rows, []interface{}{
			shift.ID, shift.StaffID, shift.Date, shift.ShiftType,
			shift.StartTime, shift.EndTime, shift.Role, shift.Status,
		})
	}
	return p.copyFrom(ctx, "scheduled_shifts",
		[]string{"id", "staff_id", "date", "shift_type", "start_time", "end_time", "role", "status"}, rows)
}

func (p *PostgresSink) InsertTimePunches(ctx context.Context, punches []models.TimePunch) error {
	rows := make([][]interface{}, 0, len(punches))
	for _, punch := range punches {
		clockIn, err := time.Parse(time.RFC3339, punch.ClockInTime)
		if err != nil {
			return fmt.Errorf("invalid clock-in time %q: %w", punch.ClockInTime, err)
		}
		clockOut, err := time.Parse(time.RFC3339, punch.ClockOutTime)
		if err != nil {
			return fmt.Errorf("invalid clock-out time %q: %w", punch.ClockOutTime, err)
		}
		rows = append(rows, []interface{}{
			punch.ID, punch.StaffID, punch.ScheduledShiftID, clockIn, clockOut,
			punch.BreakMinutes, punch.HoursWorked, punch.LaborCost,
		})
	}
	return p.copyFrom(ctx, "time_punches",
		[]string{"id", "staff_id", "scheduled_shift_id", "clock_in_time", "clock_out_time",
			"break_minutes", "hours_worked", "labor_cost"}, rows)
}

func (p *PostgresSink) InsertMenuItemProfitability(ctx context.Context, items []models.MenuItemProfitability) error {
	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		rows = append(rows, []interface{}{
			item.MenuItemID, item.Name, item.SellingPrice, item.IngredientCost, item.GrossProfit,
			item.GrossMargin, item.QuantitySold, item.TotalRevenue, item.TotalCost,
			item.ContributionMargin, item.Recommendation, item.Reasoning,
		})
	}
	return p.copyFrom(ctx, "menu_item_profitability",
		[]string{"menu_item_id", "name", "selling_price", "ingredient_cost", "gross_profit",
			"gross_margin", "quantity_sold", "total_revenue", "total_cost",
			"contribution_margin", "recommendation", "reasoning"}, rows)
}

func (p *PostgresSink) InsertProfitabilitySummary(ctx context.Context, summary models.ProfitabilitySummary) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO profitability_summary
		 (total_revenue, total_cogs, total_labor_cost, gross_profit,
		  food_cost_percent, prime_cost, prime_cost_percent)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		summary.TotalRevenue, summary.TotalCOGS, summary.TotalLaborCost, summary.GrossProfit,
		summary.FoodCostPercent, summary.PrimeCost, summary.PrimeCostPercent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert profitability summary: %w", err)
	}
	return nil
}

func (p *PostgresSink) Close() {
	p.pool.Close()
}
