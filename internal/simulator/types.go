package simulator

import (
	"fmt"

	"github.com/restodata/restosim/internal/models"
	"github.com/xitongsys/parquet-go/schema"
)

// Dataset topic names, one per record family the simulator emits.
const (
	TopicHourlySales            = "hourly_sales"
	TopicOrderItems             = "order_items"
	TopicDailySales             = "daily_sales"
	TopicWeeklySales            = "weekly_sales"
	TopicShiftPerformance       = "server_shift_performance"
	TopicServerKPIs             = "server_kpis"
	TopicInventoryUsage         = "inventory_usage"
	TopicInventoryPredictions   = "inventory_predictions"
	TopicReorderNotifications   = "reorder_notifications"
	TopicStaffingRecommendation = "staffing_recommendations"
	TopicScheduledShifts        = "scheduled_shifts"
	TopicTimePunches            = "time_punches"
	TopicSchedulingConflicts    = "scheduling_conflicts"
	TopicMenuItemProfitability  = "menu_item_profitability"
	TopicProfitabilitySummary   = "profitability_summary"
)

// Rows are the flat, column-friendly projections of the in-memory records.
// Nested fields (hourly item lists, KPI shift breakdowns, conflict shift
// lists) are either split into their own topic or reduced to counts so every
// sink format, parquet included, gets a flat schema.

type HourlySalesRow struct {
	Date         string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	Hour         int32   `json:"hour" parquet:"name=hour,type=INT32"`
	TableCount   int32   `json:"table_count" parquet:"name=table_count,type=INT32"`
	Revenue      float64 `json:"revenue" parquet:"name=revenue,type=DOUBLE"`
	AverageCheck float64 `json:"average_check" parquet:"name=average_check,type=DOUBLE"`
	ItemCount    int32   `json:"item_count" parquet:"name=item_count,type=INT32"`
}

type OrderItemRow struct {
	Date        string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	Hour        int32   `json:"hour" parquet:"name=hour,type=INT32"`
	MenuItemID  string  `json:"menu_item_id" parquet:"name=menu_item_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name        string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	Price       float64 `json:"price" parquet:"name=price,type=DOUBLE"`
	GuestNumber int32   `json:"guest_number" parquet:"name=guest_number,type=INT32"`
	Timestamp   string  `json:"timestamp" parquet:"name=timestamp,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type DailySalesRow struct {
	Date         string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalRevenue float64 `json:"total_revenue" parquet:"name=total_revenue,type=DOUBLE"`
	TotalTables  int32   `json:"total_tables" parquet:"name=total_tables,type=INT32"`
	TotalItems   int32   `json:"total_items" parquet:"name=total_items,type=INT32"`
	AverageCheck float64 `json:"average_check" parquet:"name=average_check,type=DOUBLE"`
	PeakHour     int32   `json:"peak_hour" parquet:"name=peak_hour,type=INT32"`
	PeakRevenue  float64 `json:"peak_revenue" parquet:"name=peak_revenue,type=DOUBLE"`
}

type WeeklySalesRow struct {
	WeekStart    string  `json:"week_start" parquet:"name=week_start,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalRevenue float64 `json:"total_revenue" parquet:"name=total_revenue,type=DOUBLE"`
	TotalTables  int32   `json:"total_tables" parquet:"name=total_tables,type=INT32"`
	TotalItems   int32   `json:"total_items" parquet:"name=total_items,type=INT32"`
	AverageCheck float64 `json:"average_check" parquet:"name=average_check,type=DOUBLE"`
}

type ShiftPerformanceRow struct {
	ServerID             string  `json:"server_id" parquet:"name=server_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Date                 string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	Shift                string  `json:"shift" parquet:"name=shift,type=BYTE_ARRAY,convertedtype=UTF8"`
	TablesServed         int32   `json:"tables_served" parquet:"name=tables_served,type=INT32"`
	AverageTurnoverTime  float64 `json:"average_turnover_time" parquet:"name=average_turnover_time,type=DOUBLE"`
	TotalTips            float64 `json:"total_tips" parquet:"name=total_tips,type=DOUBLE"`
	TotalSales           float64 `json:"total_sales" parquet:"name=total_sales,type=DOUBLE"`
	AverageCheckSize     float64 `json:"average_check_size" parquet:"name=average_check_size,type=DOUBLE"`
	ErrorCount           int32   `json:"error_count" parquet:"name=error_count,type=INT32"`
	CustomerSatisfaction float64 `json:"customer_satisfaction" parquet:"name=customer_satisfaction,type=DOUBLE"`
	UpsellRate           float64 `json:"upsell_rate" parquet:"name=upsell_rate,type=DOUBLE"`
}

type ServerKPIRow struct {
	ServerID              string  `json:"server_id" parquet:"name=server_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	TotalShifts           int32   `json:"total_shifts" parquet:"name=total_shifts,type=INT32"`
	TotalTables           int32   `json:"total_tables" parquet:"name=total_tables,type=INT32"`
	TotalTips             float64 `json:"total_tips" parquet:"name=total_tips,type=DOUBLE"`
	TotalSales            float64 `json:"total_sales" parquet:"name=total_sales,type=DOUBLE"`
	TotalErrors           int32   `json:"total_errors" parquet:"name=total_errors,type=INT32"`
	AverageTurnoverTime   float64 `json:"average_turnover_time" parquet:"name=average_turnover_time,type=DOUBLE"`
	AverageSatisfaction   float64 `json:"average_satisfaction" parquet:"name=average_satisfaction,type=DOUBLE"`
	AverageUpsellRate     float64 `json:"average_upsell_rate" parquet:"name=average_upsell_rate,type=DOUBLE"`
	AverageCheckSize      float64 `json:"average_check_size" parquet:"name=average_check_size,type=DOUBLE"`
	ErrorRatePer100Tables float64 `json:"error_rate_per_100_tables" parquet:"name=error_rate_per_100_tables,type=DOUBLE"`
}

type InventoryUsageRow struct {
	ItemID       string  `json:"item_id" parquet:"name=item_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Date         string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	QuantityUsed float64 `json:"quantity_used" parquet:"name=quantity_used,type=DOUBLE"`
	Unit         string  `json:"unit" parquet:"name=unit,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type InventoryPredictionRow struct {
	ItemID                     string   `json:"item_id" parquet:"name=item_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	CurrentStock               float64  `json:"current_stock" parquet:"name=current_stock,type=DOUBLE"`
	AverageDailyUsage          float64  `json:"average_daily_usage" parquet:"name=average_daily_usage,type=DOUBLE"`
	PredictedDaysUntilOut      *float64 `json:"predicted_days_until_out" parquet:"name=predicted_days_until_out,type=DOUBLE,repetitiontype=OPTIONAL"`
	RecommendedReorderQuantity float64  `json:"recommended_reorder_quantity" parquet:"name=recommended_reorder_quantity,type=DOUBLE"`
	ReorderUrgency             string   `json:"reorder_urgency" parquet:"name=reorder_urgency,type=BYTE_ARRAY,convertedtype=UTF8"`
	BelowMinThreshold          bool     `json:"below_min_threshold" parquet:"name=below_min_threshold,type=BOOLEAN"`
}

type ReorderNotificationRow struct {
	ID                  string  `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemID              string  `json:"item_id" parquet:"name=item_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	ItemName            string  `json:"item_name" parquet:"name=item_name,type=BYTE_ARRAY,convertedtype=UTF8"`
	RecommendedQuantity float64 `json:"recommended_quantity" parquet:"name=recommended_quantity,type=DOUBLE"`
	Urgency             string  `json:"urgency" parquet:"name=urgency,type=BYTE_ARRAY,convertedtype=UTF8"`
	Reason              string  `json:"reason" parquet:"name=reason,type=BYTE_ARRAY,convertedtype=UTF8"`
	Status              string  `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type StaffingRecommendationRow struct {
	Date               string  `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	Shift              string  `json:"shift" parquet:"name=shift,type=BYTE_ARRAY,convertedtype=UTF8"`
	RecommendedServers int32   `json:"recommended_servers" parquet:"name=recommended_servers,type=INT32"`
	RecommendedHosts   int32   `json:"recommended_hosts" parquet:"name=recommended_hosts,type=INT32"`
	RecommendedCooks   int32   `json:"recommended_cooks" parquet:"name=recommended_cooks,type=INT32"`
	ExpectedTables     float64 `json:"expected_tables" parquet:"name=expected_tables,type=DOUBLE"`
	PeakTables         float64 `json:"peak_tables" parquet:"name=peak_tables,type=DOUBLE"`
	Confidence         float64 `json:"confidence" parquet:"name=confidence,type=DOUBLE"`
	Reasoning          string  `json:"reasoning" parquet:"name=reasoning,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type ScheduledShiftRow struct {
	ID        string `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	StaffID   string `json:"staff_id" parquet:"name=staff_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Date      string `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	ShiftType string `json:"shift_type" parquet:"name=shift_type,type=BYTE_ARRAY,convertedtype=UTF8"`
	StartTime string `json:"start_time" parquet:"name=start_time,type=BYTE_ARRAY,convertedtype=UTF8"`
	EndTime   string `json:"end_time" parquet:"name=end_time,type=BYTE_ARRAY,convertedtype=UTF8"`
	Role      string `json:"role" parquet:"name=role,type=BYTE_ARRAY,convertedtype=UTF8"`
	Status    string `json:"status" parquet:"name=status,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type TimePunchRow struct {
	ID               string  `json:"id" parquet:"name=id,type=BYTE_ARRAY,convertedtype=UTF8"`
	StaffID          string  `json:"staff_id" parquet:"name=staff_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	ScheduledShiftID string  `json:"scheduled_shift_id" parquet:"name=scheduled_shift_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	ClockInTime      string  `json:"clock_in_time" parquet:"name=clock_in_time,type=BYTE_ARRAY,convertedtype=UTF8"`
	ClockOutTime     string  `json:"clock_out_time" parquet:"name=clock_out_time,type=BYTE_ARRAY,convertedtype=UTF8"`
	BreakMinutes     int32   `json:"break_minutes" parquet:"name=break_minutes,type=INT32"`
	HoursWorked      float64 `json:"hours_worked" parquet:"name=hours_worked,type=DOUBLE"`
	LaborCost        float64 `json:"labor_cost" parquet:"name=labor_cost,type=DOUBLE"`
}

type SchedulingConflictRow struct {
	StaffID    string `json:"staff_id" parquet:"name=staff_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Date       string `json:"date" parquet:"name=date,type=BYTE_ARRAY,convertedtype=UTF8"`
	ShiftCount int32  `json:"shift_count" parquet:"name=shift_count,type=INT32"`
	ShiftIDs   string `json:"shift_ids" parquet:"name=shift_ids,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type MenuItemProfitabilityRow struct {
	MenuItemID         string  `json:"menu_item_id" parquet:"name=menu_item_id,type=BYTE_ARRAY,convertedtype=UTF8"`
	Name               string  `json:"name" parquet:"name=name,type=BYTE_ARRAY,convertedtype=UTF8"`
	SellingPrice       float64 `json:"selling_price" parquet:"name=selling_price,type=DOUBLE"`
	IngredientCost     float64 `json:"ingredient_cost" parquet:"name=ingredient_cost,type=DOUBLE"`
	GrossProfit        float64 `json:"gross_profit" parquet:"name=gross_profit,type=DOUBLE"`
	GrossMargin        float64 `json:"gross_margin" parquet:"name=gross_margin,type=DOUBLE"`
	QuantitySold       int32   `json:"quantity_sold" parquet:"name=quantity_sold,type=INT32"`
	TotalRevenue       float64 `json:"total_revenue" parquet:"name=total_revenue,type=DOUBLE"`
	TotalCost          float64 `json:"total_cost" parquet:"name=total_cost,type=DOUBLE"`
	ContributionMargin float64 `json:"contribution_margin" parquet:"name=contribution_margin,type=DOUBLE"`
	Recommendation     string  `json:"recommendation" parquet:"name=recommendation,type=BYTE_ARRAY,convertedtype=UTF8"`
	Reasoning          string  `json:"reasoning" parquet:"name=reasoning,type=BYTE_ARRAY,convertedtype=UTF8"`
}

type ProfitabilitySummaryRow struct {
	TotalRevenue     float64 `json:"total_revenue" parquet:"name=total_revenue,type=DOUBLE"`
	TotalCOGS        float64 `json:"total_cogs" parquet:"name=total_cogs,type=DOUBLE"`
	TotalLaborCost   float64 `json:"total_labor_cost" parquet:"name=total_labor_cost,type=DOUBLE"`
	GrossProfit      float64 `json:"gross_profit" parquet:"name=gross_profit,type=DOUBLE"`
	FoodCostPercent  float64 `json:"food_cost_percent" parquet:"name=food_cost_percent,type=DOUBLE"`
	PrimeCost        float64 `json:"prime_cost" parquet:"name=prime_cost,type=DOUBLE"`
	PrimeCostPercent float64 `json:"prime_cost_percent" parquet:"name=prime_cost_percent,type=DOUBLE"`
	InsightCount     int32   `json:"insight_count" parquet:"name=insight_count,type=INT32"`
}

// NewRow returns a fresh row struct pointer for a topic, used by sinks to
// decode messages back into their typed shape.
func NewRow(topic string) (interface{}, error) {
	switch topic {
	case TopicHourlySales:
		return new(HourlySalesRow), nil
	case TopicOrderItems:
		return new(OrderItemRow), nil
	case TopicDailySales:
		return new(DailySalesRow), nil
	case TopicWeeklySales:
		return new(WeeklySalesRow), nil
	case TopicShiftPerformance:
		return new(ShiftPerformanceRow), nil
	case TopicServerKPIs:
		return new(ServerKPIRow), nil
	case TopicInventoryUsage:
		return new(InventoryUsageRow), nil
	case TopicInventoryPredictions:
		return new(InventoryPredictionRow), nil
	case TopicReorderNotifications:
		return new(ReorderNotificationRow), nil
	case TopicStaffingRecommendation:
		return new(StaffingRecommendationRow), nil
	case TopicScheduledShifts:
		return new(ScheduledShiftRow), nil
	case TopicTimePunches:
		return new(TimePunchRow), nil
	case TopicSchedulingConflicts:
		return new(SchedulingConflictRow), nil
	case TopicMenuItemProfitability:
		return new(MenuItemProfitabilityRow), nil
	case TopicProfitabilitySummary:
		return new(ProfitabilitySummaryRow), nil
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}
}

// GetSchema builds the parquet schema handler for a topic.
func GetSchema(topic string) (*schema.SchemaHandler, error) {
	row, err := NewRow(topic)
	if err != nil {
		return nil, err
	}
	sh, err := schema.NewSchemaHandlerFromStruct(row)
	if err != nil {
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}
	return sh, nil
}

func hourlySalesRow(rec models.HourlyRecord) HourlySalesRow {
	return HourlySalesRow{
		Date:         rec.Date,
		Hour:         int32(rec.Hour),
		TableCount:   int32(rec.TableCount),
		Revenue:      rec.Revenue,
		AverageCheck: rec.AverageCheck,
		ItemCount:    int32(rec.ItemCount),
	}
}

func orderItemRows(rec models.HourlyRecord) []OrderItemRow {
	rows := make([]OrderItemRow, 0, len(rec.Items))
	for _, item := range rec.Items {
		rows = append(rows, OrderItemRow{
			Date:        rec.Date,
			Hour:        int32(rec.Hour),
			MenuItemID:  item.MenuItemID,
			Name:        item.Name,
			Price:       item.Price,
			GuestNumber: int32(item.GuestNumber),
			Timestamp:   item.Timestamp,
		})
	}
	return rows
}

func dailySalesRow(agg models.DailyAggregate) DailySalesRow {
	return DailySalesRow{
		Date:         agg.Date,
		TotalRevenue: agg.TotalRevenue,
		TotalTables:  int32(agg.TotalTables),
		TotalItems:   int32(agg.TotalItems),
		AverageCheck: agg.AverageCheck,
		PeakHour:     int32(agg.PeakHour),
		PeakRevenue:  agg.PeakRevenue,
	}
}

func weeklySalesRow(agg models.WeeklyAggregate) WeeklySalesRow {
	return WeeklySalesRow{
		WeekStart:    agg.WeekStart,
		TotalRevenue: agg.TotalRevenue,
		TotalTables:  int32(agg.TotalTables),
		TotalItems:   int32(agg.TotalItems),
		AverageCheck: agg.AverageCheck,
	}
}

func shiftPerformanceRow(perf models.ShiftPerformance) ShiftPerformanceRow {
	return ShiftPerformanceRow{
		ServerID:             perf.ServerID,
		Date:                 perf.Date,
		Shift:                perf.Shift,
		TablesServed:         int32(perf.TablesServed),
		AverageTurnoverTime:  perf.AverageTurnoverTime,
		TotalTips:            perf.TotalTips,
		TotalSales:           perf.TotalSales,
		AverageCheckSize:     perf.AverageCheckSize,
		ErrorCount:           int32(perf.ErrorCount),
		CustomerSatisfaction: perf.CustomerSatisfaction,
		UpsellRate:           perf.UpsellRate,
	}
}

func serverKPIRow(kpi models.ServerKPI) ServerKPIRow {
	return ServerKPIRow{
		ServerID:              kpi.ServerID,
		TotalShifts:           int32(kpi.TotalShifts),
		TotalTables:           int32(kpi.TotalTables),
		TotalTips:             kpi.TotalTips,
		TotalSales:            kpi.TotalSales,
		TotalErrors:           int32(kpi.TotalErrors),
		AverageTurnoverTime:   kpi.AverageTurnoverTime,
		AverageSatisfaction:   kpi.AverageSatisfaction,
		AverageUpsellRate:     kpi.AverageUpsellRate,
		AverageCheckSize:      kpi.AverageCheckSize,
		ErrorRatePer100Tables: kpi.ErrorRatePer100Tables,
	}
}

func inventoryUsageRow(rec models.UsageRecord) InventoryUsageRow {
	return InventoryUsageRow{
		ItemID:       rec.ItemID,
		Date:         rec.Date,
		QuantityUsed: rec.QuantityUsed,
		Unit:         rec.Unit,
	}
}

func inventoryPredictionRow(pred models.InventoryPrediction) InventoryPredictionRow {
	return InventoryPredictionRow{
		ItemID:                     pred.ItemID,
		CurrentStock:               pred.CurrentStock,
		AverageDailyUsage:          pred.AverageDailyUsage,
		PredictedDaysUntilOut:      pred.PredictedDaysUntilOut,
		RecommendedReorderQuantity: pred.RecommendedReorderQuantity,
		ReorderUrgency:             pred.ReorderUrgency,
		BelowMinThreshold:          pred.BelowMinThreshold,
	}
}

func reorderNotificationRow(n models.ReorderNotification) ReorderNotificationRow {
	return ReorderNotificationRow{
		ID:                  n.ID,
		ItemID:              n.ItemID,
		ItemName:            n.ItemName,
		RecommendedQuantity: n.RecommendedQuantity,
		Urgency:             n.Urgency,
		Reason:              n.Reason,
		Status:              n.Status,
	}
}

func staffingRecommendationRow(rec models.StaffingRecommendation) StaffingRecommendationRow {
	return StaffingRecommendationRow{
		Date:               rec.Date,
		Shift:              rec.Shift,
		RecommendedServers: int32(rec.RecommendedServers),
		RecommendedHosts:   int32(rec.RecommendedHosts),
		RecommendedCooks:   int32(rec.RecommendedCooks),
		ExpectedTables:     rec.ExpectedTables,
		PeakTables:         rec.PeakTables,
		Confidence:         rec.Confidence,
		Reasoning:          rec.Reasoning,
	}
}

func scheduledShiftRow(shift models.ScheduledShift) ScheduledShiftRow {
	return ScheduledShiftRow(shift)
}

func timePunchRow(punch models.TimePunch) TimePunchRow {
	return TimePunchRow{
		ID:               punch.ID,
		StaffID:          punch.StaffID,
		ScheduledShiftID: punch.ScheduledShiftID,
		ClockInTime:      punch.ClockInTime,
		ClockOutTime:     punch.ClockOutTime,
		BreakMinutes:     int32(punch.BreakMinutes),
		HoursWorked:      punch.HoursWorked,
		LaborCost:        punch.LaborCost,
	}
}

func schedulingConflictRow(conflict models.SchedulingConflict) SchedulingConflictRow {
	ids := ""
	for i, shift := range conflict.Shifts {
		if i > 0 {
			ids += ","
		}
		ids += shift.ID
	}
	return SchedulingConflictRow{
		StaffID:    conflict.StaffID,
		Date:       conflict.Date,
		ShiftCount: int32(len(conflict.Shifts)),
		ShiftIDs:   ids,
	}
}

func menuItemProfitabilityRow(p models.MenuItemProfitability) MenuItemProfitabilityRow {
	return MenuItemProfitabilityRow{
		MenuItemID:         p.MenuItemID,
		Name:               p.Name,
		SellingPrice:       p.SellingPrice,
		IngredientCost:     p.IngredientCost,
		GrossProfit:        p.GrossProfit,
		GrossMargin:        p.GrossMargin,
		QuantitySold:       int32(p.QuantitySold),
		TotalRevenue:       p.TotalRevenue,
		TotalCost:          p.TotalCost,
		ContributionMargin: p.ContributionMargin,
		Recommendation:     p.Recommendation,
		Reasoning:          p.Reasoning,
	}
}

func profitabilitySummaryRow(s models.ProfitabilitySummary) ProfitabilitySummaryRow {
	return ProfitabilitySummaryRow{
		TotalRevenue:     s.TotalRevenue,
		TotalCOGS:        s.TotalCOGS,
		TotalLaborCost:   s.TotalLaborCost,
		GrossProfit:      s.GrossProfit,
		FoodCostPercent:  s.FoodCostPercent,
		PrimeCost:        s.PrimeCost,
		PrimeCostPercent: s.PrimeCostPercent,
		InsightCount:     int32(len(s.Insights)),
	}
}
