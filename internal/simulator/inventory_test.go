package simulator

import (
	"testing"
	"time"

	"github.com/restodata/restosim/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCalculateIngredientUsage(t *testing.T) {
	recipes := map[string][]models.RecipeIngredient{
		"item-1": {
			{InventoryItemID: "inv-1", Quantity: 0.3},
			{InventoryItemID: "inv-2", Quantity: 0.5},
		},
	}
	gen := NewInventoryGenerator(testConfig(), recipes, DefaultInventory)

	items := []models.OrderItem{
		{MenuItemID: "item-1"},
		{MenuItemID: "item-1"},
		{MenuItemID: "item-unknown"}, // no recipe, no usage
	}

	usage := gen.CalculateIngredientUsage(items)
	assert.InDelta(t, 0.6, usage["inv-1"], 1e-9)
	assert.InDelta(t, 1.0, usage["inv-2"], 1e-9)
	assert.NotContains(t, usage, "item-unknown")
}

func TestGenerateUsageHistoryGroupsByDay(t *testing.T) {
	recipes := map[string][]models.RecipeIngredient{
		"item-1": {{InventoryItemID: "inv-1", Quantity: 1}},
	}
	gen := NewInventoryGenerator(testConfig(), recipes, DefaultInventory)

	records := []models.HourlyRecord{
		{Date: "2025-06-02", Hour: 12, Items: []models.OrderItem{{MenuItemID: "item-1"}, {MenuItemID: "item-1"}}},
		{Date: "2025-06-02", Hour: 18, Items: []models.OrderItem{{MenuItemID: "item-1"}}},
		{Date: "2025-06-01", Hour: 12, Items: []models.OrderItem{{MenuItemID: "item-1"}}},
		{Date: "2025-06-03", Hour: 12, Items: nil}, // zero usage day is omitted
	}

	history := gen.GenerateUsageHistory(records)
	assert.Len(t, history, 2)
	assert.Equal(t, models.UsageRecord{ItemID: "inv-1", Date: "2025-06-01", QuantityUsed: 1, Unit: "lb"}, history[0])
	assert.Equal(t, models.UsageRecord{ItemID: "inv-1", Date: "2025-06-02", QuantityUsed: 3, Unit: "lb"}, history[1])
}

func TestAverageDailyUsageDividesByWindow(t *testing.T) {
	cfg := testConfig()
	cfg.UsageWindowDays = 30
	gen := NewInventoryGenerator(cfg, DefaultRecipes, DefaultInventory)

	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	history := []models.UsageRecord{
		{ItemID: "inv-1", Date: "2025-06-29", QuantityUsed: 30},
		{ItemID: "inv-1", Date: "2025-06-10", QuantityUsed: 30},
		{ItemID: "inv-1", Date: "2025-05-01", QuantityUsed: 100}, // outside the window
		{ItemID: "inv-2", Date: "2025-06-15", QuantityUsed: 50},  // other item
	}

	// 60 units over a 30 day window; quiet days still count in the divisor
	assert.InDelta(t, 2.0, gen.AverageDailyUsage(history, "inv-1", asOf), 1e-9)
	assert.Zero(t, gen.AverageDailyUsage(history, "inv-3", asOf))
}

func TestPredictDaysUntilOut(t *testing.T) {
	days := PredictDaysUntilOut(5, 3)
	if assert.NotNil(t, days) {
		assert.Equal(t, 1.7, *days)
	}

	assert.Nil(t, PredictDaysUntilOut(5, 0))
}

func TestReorderQuantity(t *testing.T) {
	// ceil(1.5 * 3 * 7)
	assert.Equal(t, 32.0, ReorderQuantity(3))
	assert.Equal(t, 0.0, ReorderQuantity(0))
}

func TestReorderUrgencyBreakpoints(t *testing.T) {
	tests := []struct {
		name string
		days float64
		want string
	}{
		{"critical below two days", 1.7, models.UrgencyCritical},
		{"exactly two days", 2.0, models.UrgencyUrgent},
		{"urgent below five days", 4.0, models.UrgencyUrgent},
		{"exactly five days", 5.0, models.UrgencySoon},
		{"soon below ten days", 9.9, models.UrgencySoon},
		{"exactly ten days", 10.0, models.UrgencyOK},
		{"ok beyond ten days", 25.0, models.UrgencyOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := tt.days
			assert.Equal(t, tt.want, reorderUrgency(&days))
		})
	}

	assert.Equal(t, models.UrgencyOK, reorderUrgency(nil))
}

func TestUrgencyMonotonicWithStock(t *testing.T) {
	rank := map[string]int{
		models.UrgencyOK:       0,
		models.UrgencySoon:     1,
		models.UrgencyUrgent:   2,
		models.UrgencyCritical: 3,
	}

	previous := -1
	for stock := 40.0; stock >= 0; stock -= 0.5 {
		urgency := reorderUrgency(PredictDaysUntilOut(stock, 3))
		assert.GreaterOrEqual(t, rank[urgency], previous,
			"urgency dropped as stock fell to %.1f", stock)
		previous = rank[urgency]
	}
}

func TestGeneratePredictionsScenarios(t *testing.T) {
	cfg := testConfig()
	inventory := []models.InventoryItem{
		{ID: "inv-1", Name: "Tomatoes", Quantity: 5, Unit: "lb", MinThreshold: 1},
		{ID: "inv-2", Name: "Mozzarella", Quantity: 5, Unit: "lb", MinThreshold: 8},
		{ID: "inv-3", Name: "Bread", Quantity: 6, Unit: "loaf", MinThreshold: 1},
	}
	gen := NewInventoryGenerator(cfg, DefaultRecipes, inventory)

	asOf := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	history := []models.UsageRecord{
		// 90 units over the 30 day window, so 3/day
		{ItemID: "inv-1", Date: "2025-06-20", QuantityUsed: 90},
		{ItemID: "inv-3", Date: "2025-06-20", QuantityUsed: 90},
	}

	predictions := gen.GeneratePredictions(history, asOf)
	assert.Len(t, predictions, 3)

	depleting := predictions[0]
	assert.Equal(t, "inv-1", depleting.ItemID)
	if assert.NotNil(t, depleting.PredictedDaysUntilOut) {
		assert.Equal(t, 1.7, *depleting.PredictedDaysUntilOut)
	}
	assert.Equal(t, models.UrgencyCritical, depleting.ReorderUrgency)
	assert.False(t, depleting.BelowMinThreshold)

	idle := predictions[1]
	assert.Equal(t, "inv-2", idle.ItemID)
	assert.Nil(t, idle.PredictedDaysUntilOut)
	assert.Equal(t, models.UrgencyOK, idle.ReorderUrgency)
	assert.True(t, idle.BelowMinThreshold)

	// exactly two days of stock left sits on the urgent side of the line
	boundary := predictions[2]
	assert.Equal(t, "inv-3", boundary.ItemID)
	if assert.NotNil(t, boundary.PredictedDaysUntilOut) {
		assert.Equal(t, 2.0, *boundary.PredictedDaysUntilOut)
	}
	assert.Equal(t, models.UrgencyUrgent, boundary.ReorderUrgency)
}

func TestGenerateReorderNotifications(t *testing.T) {
	cfg := testConfig()
	inventory := []models.InventoryItem{
		{ID: "inv-1", Name: "Tomatoes", Quantity: 5, Unit: "lb", MinThreshold: 1},
		{ID: "inv-2", Name: "Mozzarella", Quantity: 5, Unit: "lb", MinThreshold: 8},
		{ID: "inv-3", Name: "Bread", Quantity: 50, Unit: "loaf", MinThreshold: 8},
	}
	gen := NewInventoryGenerator(cfg, DefaultRecipes, inventory)

	days := 1.7
	predictions := []models.InventoryPrediction{
		{ItemID: "inv-1", CurrentStock: 5, PredictedDaysUntilOut: &days, ReorderUrgency: models.UrgencyCritical, RecommendedReorderQuantity: 32},
		{ItemID: "inv-2", CurrentStock: 5, ReorderUrgency: models.UrgencyOK, BelowMinThreshold: true},
		{ItemID: "inv-3", CurrentStock: 50, ReorderUrgency: models.UrgencyOK},
	}

	notifications := gen.GenerateReorderNotifications(predictions)
	assert.Len(t, notifications, 2)

	assert.Equal(t, "inv-1", notifications[0].ItemID)
	assert.Equal(t, "Tomatoes", notifications[0].ItemName)
	assert.Equal(t, models.UrgencyCritical, notifications[0].Urgency)
	assert.Equal(t, models.NotificationStatusPending, notifications[0].Status)
	assert.NotEmpty(t, notifications[0].ID)
	assert.Contains(t, notifications[0].Reason, "1.7 days")

	assert.Equal(t, "inv-2", notifications[1].ItemID)
	assert.Contains(t, notifications[1].Reason, "below its minimum threshold")
}
