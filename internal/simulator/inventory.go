package simulator

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lucsky/cuid"
	"github.com/restodata/restosim/internal/models"
)

// InventoryGenerator derives ingredient usage from sold order items via the
// recipe table, then projects stock depletion and reorder needs.
type InventoryGenerator struct {
	cfg       *models.Config
	recipes   map[string][]models.RecipeIngredient
	inventory []models.InventoryItem
}

func NewInventoryGenerator(cfg *models.Config, recipes map[string][]models.RecipeIngredient, inventory []models.InventoryItem) *InventoryGenerator {
	if recipes == nil {
		recipes = DefaultRecipes
	}
	if inventory == nil {
		inventory = DefaultInventory
	}
	return &InventoryGenerator{cfg: cfg, recipes: recipes, inventory: inventory}
}

func (g *InventoryGenerator) item(itemID string) *models.InventoryItem {
	for i := range g.inventory {
		if g.inventory[i].ID == itemID {
			return &g.inventory[i]
		}
	}
	return nil
}

// CalculateIngredientUsage totals the ingredient quantities consumed by a
// set of sold items. Menu items with no recipe contribute nothing.
func (g *InventoryGenerator) CalculateIngredientUsage(items []models.OrderItem) map[string]float64 {
	usage := make(map[string]float64)
	for _, sold := range items {
		for _, ing := range g.recipes[sold.MenuItemID] {
			usage[ing.InventoryItemID] += ing.Quantity
		}
	}
	return usage
}

// GenerateUsageHistory converts hourly sales into per-day, per-ingredient
// usage records. Zero-usage pairs are omitted; output is sorted by date
// then ingredient id.
func (g *InventoryGenerator) GenerateUsageHistory(records []models.HourlyRecord) []models.UsageRecord {
	type key struct {
		date   string
		itemID string
	}
	usage := make(map[key]float64)

	for _, rec := range records {
		for itemID, qty := range g.CalculateIngredientUsage(rec.Items) {
			usage[key{date: rec.Date, itemID: itemID}] += qty
		}
	}

	keys := make([]key, 0, len(usage))
	for k := range usage {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].date != keys[j].date {
			return keys[i].date < keys[j].date
		}
		return keys[i].itemID < keys[j].itemID
	})

	history := make([]models.UsageRecord, 0, len(keys))
	for _, k := range keys {
		qty := usage[k]
		if qty == 0 {
			continue
		}
		unit := ""
		if item := g.item(k.itemID); item != nil {
			unit = item.Unit
		}
		history = append(history, models.UsageRecord{
			ItemID:       k.itemID,
			Date:         k.date,
			QuantityUsed: round2(qty),
			Unit:         unit,
		})
	}
	return history
}

// AverageDailyUsage averages one ingredient's usage over the trailing window
// ending at asOf. The divisor is the window length, not the count of days
// with recorded usage, so quiet days pull the average down.
func (g *InventoryGenerator) AverageDailyUsage(history []models.UsageRecord, itemID string, asOf time.Time) float64 {
	windowDays := g.cfg.UsageWindowDays
	if windowDays <= 0 {
		windowDays = 30
	}

	end := asOf.Format(models.DateLayout)
	start := asOf.AddDate(0, 0, -(windowDays - 1)).Format(models.DateLayout)

	total := 0.0
	for _, rec := range history {
		if rec.ItemID != itemID {
			continue
		}
		if rec.Date < start || rec.Date > end {
			continue
		}
		total += rec.QuantityUsed
	}
	return total / float64(windowDays)
}

// PredictDaysUntilOut projects how many days current stock lasts at the
// average usage rate. Nil means no usage in the window, so no projection.
func PredictDaysUntilOut(currentStock, averageDailyUsage float64) *float64 {
	if averageDailyUsage <= 0 {
		return nil
	}
	days := round1(currentStock / averageDailyUsage)
	return &days
}

// ReorderQuantity suggests a one-week supply with a 50% buffer.
func ReorderQuantity(averageDailyUsage float64) float64 {
	return math.Ceil(1.5 * averageDailyUsage * 7)
}

func reorderUrgency(daysUntilOut *float64) string {
	if daysUntilOut == nil {
		return models.UrgencyOK
	}
	switch {
	case *daysUntilOut < 2:
		return models.UrgencyCritical
	case *daysUntilOut < 5:
		return models.UrgencyUrgent
	case *daysUntilOut < 10:
		return models.UrgencySoon
	default:
		return models.UrgencyOK
	}
}

// GeneratePredictions computes a depletion forecast for every inventory item
// as of the given date.
func (g *InventoryGenerator) GeneratePredictions(history []models.UsageRecord, asOf time.Time) []models.InventoryPrediction {
	predictions := make([]models.InventoryPrediction, 0, len(g.inventory))

	for _, item := range g.inventory {
		avg := g.AverageDailyUsage(history, item.ID, asOf)
		days := PredictDaysUntilOut(item.Quantity, avg)

		predictions = append(predictions, models.InventoryPrediction{
			ItemID:                     item.ID,
			CurrentStock:               item.Quantity,
			AverageDailyUsage:          round2(avg),
			PredictedDaysUntilOut:      days,
			RecommendedReorderQuantity: ReorderQuantity(avg),
			ReorderUrgency:             reorderUrgency(days),
			BelowMinThreshold:          item.Quantity < item.MinThreshold,
		})
	}
	return predictions
}

// GenerateReorderNotifications emits a pending notification for every
// prediction that is either urgent by depletion forecast or already below
// its minimum stock threshold.
func (g *InventoryGenerator) GenerateReorderNotifications(predictions []models.InventoryPrediction) []models.ReorderNotification {
	var notifications []models.ReorderNotification

	for _, pred := range predictions {
		if pred.ReorderUrgency == models.UrgencyOK && !pred.BelowMinThreshold {
			continue
		}

		item := g.item(pred.ItemID)
		name := pred.ItemID
		unit := ""
		if item != nil {
			name = item.Name
			unit = item.Unit
		}

		var reason string
		switch {
		case pred.PredictedDaysUntilOut != nil && pred.BelowMinThreshold:
			reason = fmt.Sprintf("%s is below its minimum threshold and projected to run out in %.1f days", name, *pred.PredictedDaysUntilOut)
		case pred.PredictedDaysUntilOut != nil:
			reason = fmt.Sprintf("%s is projected to run out in %.1f days at current usage", name, *pred.PredictedDaysUntilOut)
		default:
			reason = fmt.Sprintf("%s stock (%.1f %s) is below its minimum threshold", name, pred.CurrentStock, unit)
		}

		notifications = append(notifications, models.ReorderNotification{
			ID:                  cuid.New(),
			ItemID:              pred.ItemID,
			ItemName:            name,
			RecommendedQuantity: pred.RecommendedReorderQuantity,
			Urgency:             pred.ReorderUrgency,
			Reason:              reason,
			Status:              models.NotificationStatusPending,
		})
	}
	return notifications
}
