package simulator

import (
	"github.com/restodata/restosim/internal/models"
)

type ShiftWindow struct {
	Start string
	End   string
}

var (
	// ShiftWindows are the scheduled wall-clock spans per shift type.
	ShiftWindows = map[string]ShiftWindow{
		models.ShiftBreakfast: {Start: "07:00", End: "11:00"},
		models.ShiftLunch:     {Start: "11:00", End: "16:00"},
		models.ShiftDinner:    {Start: "16:00", End: "22:30"},
	}

	// ShiftBaseTables is the table volume a shift yields for an
	// average-skill server before skill and weekend scaling.
	ShiftBaseTables = map[string]float64{
		models.ShiftBreakfast: 8,
		models.ShiftLunch:     12,
		models.ShiftDinner:    16,
	}

	// DefaultPopularityWeights drive the weighted menu draw per category.
	DefaultPopularityWeights = map[string]float64{
		"appetizer": 1.2,
		"main":      2.0,
		"dessert":   0.8,
		"drink":     1.5,
	}

	// DefaultHolidays is the built-in holiday calendar, overridable in config.
	DefaultHolidays = []string{
		"2025-01-01",
		"2025-02-14",
		"2025-05-26",
		"2025-07-04",
		"2025-11-27",
		"2025-12-25",
		"2025-12-31",
	}
)

const DefaultSkillLevel = 3.0

// serverSkillLevels is the static per-server skill table (1.0-5.0).
var serverSkillLevels = map[string]float64{
	"srv-1": 4.5,
	"srv-2": 3.8,
	"srv-3": 3.0,
	"srv-4": 4.2,
	"srv-5": 2.4,
	"srv-6": 3.5,
	"srv-7": 4.8,
	"srv-8": 2.8,
}

// SkillLevel looks up a server's skill rating. The DefaultSkillLevel
// fallback is applied by the caller, not here.
func SkillLevel(serverID string) (float64, bool) {
	level, ok := serverSkillLevels[serverID]
	return level, ok
}

// DefaultRecipes maps menu item ids to the ingredients one sale consumes.
// Menu items without an entry contribute no inventory usage.
var DefaultRecipes = map[string][]models.RecipeIngredient{
	"item-1": {
		{InventoryItemID: "inv-3", Quantity: 0.25},
		{InventoryItemID: "inv-1", Quantity: 0.3},
		{InventoryItemID: "inv-12", Quantity: 0.05},
	},
	"item-2": {
		{InventoryItemID: "inv-4", Quantity: 0.5},
		{InventoryItemID: "inv-12", Quantity: 0.1},
	},
	"item-3": {
		{InventoryItemID: "inv-5", Quantity: 0.35},
		{InventoryItemID: "inv-1", Quantity: 0.2},
	},
	"item-4": {
		{InventoryItemID: "inv-6", Quantity: 1},
		{InventoryItemID: "inv-2", Quantity: 0.4},
		{InventoryItemID: "inv-1", Quantity: 0.3},
	},
	"item-5": {
		{InventoryItemID: "inv-7", Quantity: 1},
		{InventoryItemID: "inv-12", Quantity: 0.05},
	},
	"item-6": {
		{InventoryItemID: "inv-8", Quantity: 1},
		{InventoryItemID: "inv-12", Quantity: 0.05},
	},
	"item-7": {
		{InventoryItemID: "inv-9", Quantity: 0.6},
		{InventoryItemID: "inv-2", Quantity: 0.25},
		{InventoryItemID: "inv-13", Quantity: 0.1},
	},
	"item-8": {
		{InventoryItemID: "inv-10", Quantity: 0.4},
		{InventoryItemID: "inv-14", Quantity: 0.3},
		{InventoryItemID: "inv-13", Quantity: 0.1},
	},
	"item-9": {
		{InventoryItemID: "inv-11", Quantity: 0.5},
		{InventoryItemID: "inv-15", Quantity: 1},
		{InventoryItemID: "inv-2", Quantity: 0.1},
	},
	"item-10": {
		{InventoryItemID: "inv-16", Quantity: 0.3},
		{InventoryItemID: "inv-18", Quantity: 0.05},
	},
	"item-11": {
		{InventoryItemID: "inv-17", Quantity: 0.4},
	},
	"item-12": {
		{InventoryItemID: "inv-19", Quantity: 0.2},
	},
	"item-13": {
		{InventoryItemID: "inv-20", Quantity: 1},
	},
	"item-14": {
		{InventoryItemID: "inv-18", Quantity: 0.04},
	},
}

// IngredientCosts is the static cost-per-unit table used for COGS.
var IngredientCosts = map[string]float64{
	"inv-1":  2.80,  // tomatoes, per lb
	"inv-2":  5.40,  // mozzarella, per lb
	"inv-3":  3.20,  // bread, per loaf
	"inv-4":  9.00,  // calamari, per lb
	"inv-5":  4.10,  // salad greens, per lb
	"inv-6":  1.60,  // pizza dough, per ball
	"inv-7":  18.50, // ribeye, each
	"inv-8":  11.00, // salmon fillet, each
	"inv-9":  4.80,  // chicken breast, per lb
	"inv-10": 3.60,  // arborio rice, per lb
	"inv-11": 5.20,  // ground beef, per lb
	"inv-12": 12.00, // olive oil, per liter
	"inv-13": 9.80,  // parmesan, per lb
	"inv-14": 4.50,  // mushrooms, per lb
	"inv-15": 0.55,  // burger buns, each
	"inv-16": 8.40,  // mascarpone, per lb
	"inv-17": 6.20,  // cream cheese, per lb
	"inv-18": 14.00, // espresso beans, per lb
	"inv-19": 9.50,  // house red, per bottle
	"inv-20": 2.40,  // craft beer, per bottle
}

// DefaultInventory is the opening stock position.
var DefaultInventory = []models.InventoryItem{
	{ID: "inv-1", Name: "Tomatoes", Quantity: 60, Unit: "lb", MinThreshold: 15, Category: "produce"},
	{ID: "inv-2", Name: "Mozzarella", Quantity: 40, Unit: "lb", MinThreshold: 10, Category: "dairy"},
	{ID: "inv-3", Name: "Bread", Quantity: 30, Unit: "loaf", MinThreshold: 8, Category: "bakery"},
	{ID: "inv-4", Name: "Calamari", Quantity: 25, Unit: "lb", MinThreshold: 6, Category: "seafood"},
	{ID: "inv-5", Name: "Salad Greens", Quantity: 35, Unit: "lb", MinThreshold: 10, Category: "produce"},
	{ID: "inv-6", Name: "Pizza Dough", Quantity: 80, Unit: "ball", MinThreshold: 20, Category: "bakery"},
	{ID: "inv-7", Name: "Ribeye", Quantity: 45, Unit: "each", MinThreshold: 12, Category: "meat"},
	{ID: "inv-8", Name: "Salmon Fillet", Quantity: 40, Unit: "each", MinThreshold: 10, Category: "seafood"},
	{ID: "inv-9", Name: "Chicken Breast", Quantity: 55, Unit: "lb", MinThreshold: 15, Category: "meat"},
	{ID: "inv-10", Name: "Arborio Rice", Quantity: 30, Unit: "lb", MinThreshold: 8, Category: "dry goods"},
	{ID: "inv-11", Name: "Ground Beef", Quantity: 50, Unit: "lb", MinThreshold: 12, Category: "meat"},
	{ID: "inv-12", Name: "Olive Oil", Quantity: 20, Unit: "liter", MinThreshold: 5, Category: "dry goods"},
	{ID: "inv-13", Name: "Parmesan", Quantity: 18, Unit: "lb", MinThreshold: 5, Category: "dairy"},
	{ID: "inv-14", Name: "Mushrooms", Quantity: 25, Unit: "lb", MinThreshold: 8, Category: "produce"},
	{ID: "inv-15", Name: "Burger Buns", Quantity: 120, Unit: "each", MinThreshold: 30, Category: "bakery"},
	{ID: "inv-16", Name: "Mascarpone", Quantity: 12, Unit: "lb", MinThreshold: 4, Category: "dairy"},
	{ID: "inv-17", Name: "Cream Cheese", Quantity: 15, Unit: "lb", MinThreshold: 4, Category: "dairy"},
	{ID: "inv-18", Name: "Espresso Beans", Quantity: 20, Unit: "lb", MinThreshold: 6, Category: "dry goods"},
	{ID: "inv-19", Name: "House Red", Quantity: 48, Unit: "bottle", MinThreshold: 12, Category: "beverage"},
	{ID: "inv-20", Name: "Craft Beer", Quantity: 96, Unit: "bottle", MinThreshold: 24, Category: "beverage"},
}
