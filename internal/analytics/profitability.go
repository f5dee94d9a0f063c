// Package analytics turns generated sales and labor histories into menu
// profitability figures and rule-based recommendations.
package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/restodata/restosim/internal/models"
)

// healthyPrimeCostPercent is the industry rule-of-thumb ceiling for
// prime cost (COGS + labor) as a share of revenue.
const healthyPrimeCostPercent = 65.0

// Calculator computes COGS, margins, and recommendations from the static
// recipe and ingredient-cost tables.
type Calculator struct {
	recipes map[string][]models.RecipeIngredient
	costs   map[string]float64
}

func NewCalculator(recipes map[string][]models.RecipeIngredient, costs map[string]float64) *Calculator {
	return &Calculator{recipes: recipes, costs: costs}
}

// MenuItemCOGS sums ingredient cost per sale for one menu item, rounded to
// cents. Items without a recipe cost nothing; ingredients missing from the
// cost table contribute zero.
func (c *Calculator) MenuItemCOGS(menuItemID string) float64 {
	cost := 0.0
	for _, ing := range c.recipes[menuItemID] {
		cost += c.costs[ing.InventoryItemID] * ing.Quantity
	}
	return round2(cost)
}

// quantitySold counts how many times a menu item appears across all
// historical order lines.
func quantitySold(history []models.HourlyRecord, menuItemID string) int {
	count := 0
	for _, rec := range history {
		for _, item := range rec.Items {
			if item.MenuItemID == menuItemID {
				count++
			}
		}
	}
	return count
}

// ItemProfitability computes per-item margins and a recommendation from the
// sales history. Rules are evaluated in priority order and the first match
// wins: thin margin beats popularity, popularity beats low volume.
func (c *Calculator) ItemProfitability(item models.MenuItem, history []models.HourlyRecord) models.MenuItemProfitability {
	cogs := c.MenuItemCOGS(item.ID)
	sold := quantitySold(history, item.ID)

	profit := round2(item.Price - cogs)
	margin := 0.0
	if item.Price > 0 {
		margin = round1((item.Price - cogs) / item.Price * 100)
	}

	result := models.MenuItemProfitability{
		MenuItemID:         item.ID,
		Name:               item.Name,
		SellingPrice:       item.Price,
		IngredientCost:     cogs,
		GrossProfit:        profit,
		GrossMargin:        margin,
		QuantitySold:       sold,
		TotalRevenue:       round2(item.Price * float64(sold)),
		TotalCost:          round2(cogs * float64(sold)),
		ContributionMargin: round2(profit * float64(sold)),
	}

	switch {
	case margin < 60:
		result.Recommendation = models.RecommendationIncreasePrice
		result.Reasoning = fmt.Sprintf("Margin of %.1f%% is below the 60%% target; consider raising the $%.2f price", margin, item.Price)
	case margin > 75 && sold > 10:
		result.Recommendation = models.RecommendationPromote
		result.Reasoning = fmt.Sprintf("High margin (%.1f%%) and strong volume (%d sold); feature it to drive more sales", margin, sold)
	case sold < 5:
		result.Recommendation = models.RecommendationReview
		result.Reasoning = fmt.Sprintf("Only %d sold in the period; review whether it belongs on the menu", sold)
	default:
		result.Recommendation = models.RecommendationMaintain
		result.Reasoning = fmt.Sprintf("Margin %.1f%% and %d sold are both healthy; no change needed", margin, sold)
	}
	return result
}

// Summary aggregates per-item profitability and labor costs into the
// restaurant-level picture: food-cost and prime-cost percentages, grouped
// recommendations, and any insights that fire.
func (c *Calculator) Summary(items []models.MenuItemProfitability, laborCosts []models.DailyLaborCost) models.ProfitabilitySummary {
	summary := models.ProfitabilitySummary{
		Recommendations: make(map[string][]string),
	}

	for _, item := range items {
		summary.TotalRevenue = round2(summary.TotalRevenue + item.TotalRevenue)
		summary.TotalCOGS = round2(summary.TotalCOGS + item.TotalCost)
		summary.Recommendations[item.Recommendation] = append(summary.Recommendations[item.Recommendation], item.Name)
	}
	for _, day := range laborCosts {
		summary.TotalLaborCost = round2(summary.TotalLaborCost + day.TotalCost)
	}

	summary.GrossProfit = round2(summary.TotalRevenue - summary.TotalCOGS)
	summary.PrimeCost = round2(summary.TotalCOGS + summary.TotalLaborCost)

	if summary.TotalRevenue > 0 {
		summary.FoodCostPercent = round1(summary.TotalCOGS / summary.TotalRevenue * 100)
		summary.PrimeCostPercent = round1(summary.PrimeCost / summary.TotalRevenue * 100)
	}

	summary.Insights = c.insights(items, summary)
	return summary
}

// insights runs the independent alert checks. Multiple insights can fire at
// once, or none at all.
func (c *Calculator) insights(items []models.MenuItemProfitability, summary models.ProfitabilitySummary) []models.Insight {
	var insights []models.Insight

	for _, item := range items {
		if item.GrossMargin < 60 && item.QuantitySold > 5 {
			insights = append(insights, models.Insight{
				Type:     "low_margin_alert",
				Severity: "warning",
				Message:  fmt.Sprintf("%s sells well (%d) but its %.1f%% margin drags profitability", item.Name, item.QuantitySold, item.GrossMargin),
			})
		}
	}

	if summary.PrimeCostPercent > healthyPrimeCostPercent {
		insights = append(insights, models.Insight{
			Type:     "prime_cost",
			Severity: "critical",
			Message:  fmt.Sprintf("Prime cost is %.1f%% of revenue, above the %.0f%% healthy ceiling", summary.PrimeCostPercent, healthyPrimeCostPercent),
		})
	}

	var stars []string
	for _, item := range items {
		if item.GrossMargin > 70 && item.QuantitySold > 15 {
			stars = append(stars, item.Name)
		}
	}
	if len(stars) > 0 {
		sort.Strings(stars)
		insights = append(insights, models.Insight{
			Type:     "star_performers",
			Severity: "info",
			Message:  fmt.Sprintf("Star performers with high margin and volume: %s", strings.Join(stars, ", ")),
		})
	}

	return insights
}

func round2(v float64) float64 {
	return roundTo(v, 100)
}

func round1(v float64) float64 {
	return roundTo(v, 10)
}

func roundTo(v float64, factor float64) float64 {
	if v >= 0 {
		return float64(int64(v*factor+0.5)) / factor
	}
	return float64(int64(v*factor-0.5)) / factor
}
