// Package factories builds the seed entities the simulator runs against:
// the menu and the staff roster.
package factories

import (
	"github.com/jaswdr/faker"
	"github.com/restodata/restosim/internal/models"
)

var fake = faker.New()

type menuSpec struct {
	id       string
	name     string
	category string
	price    float64
	prepTime int
}

// menuSpecs is the house menu. The ids line up with the recipe table, so
// every sold item draws down inventory.
var menuSpecs = []menuSpec{
	{"item-1", "Bruschetta", "appetizer", 8.50, 8},
	{"item-2", "Calamari", "appetizer", 12.00, 10},
	{"item-3", "House Salad", "appetizer", 7.00, 5},
	{"item-4", "Margherita Pizza", "main", 15.00, 15},
	{"item-5", "Ribeye Steak", "main", 32.00, 22},
	{"item-6", "Grilled Salmon", "main", 24.00, 18},
	{"item-7", "Chicken Parmesan", "main", 19.00, 20},
	{"item-8", "Mushroom Risotto", "main", 17.50, 25},
	{"item-9", "Cheeseburger", "main", 14.00, 12},
	{"item-10", "Tiramisu", "dessert", 9.00, 5},
	{"item-11", "Cheesecake", "dessert", 8.00, 5},
	{"item-12", "House Red Wine", "drink", 9.50, 2},
	{"item-13", "Craft Beer", "drink", 7.50, 2},
	{"item-14", "Espresso", "drink", 3.50, 3},
}

// NewMenu returns the full menu, every item available and on the menu.
func NewMenu() []models.MenuItem {
	menu := make([]models.MenuItem, 0, len(menuSpecs))
	for _, spec := range menuSpecs {
		menu = append(menu, models.MenuItem{
			ID:        spec.id,
			Name:      spec.name,
			Category:  spec.category,
			Price:     spec.price,
			Available: true,
			OnMenu:    true,
			PrepTime:  spec.prepTime,
			Modifiers: modifiersFor(spec),
		})
	}
	return menu
}

func modifiersFor(spec menuSpec) []models.Modifier {
	switch spec.category {
	case "main":
		return []models.Modifier{
			{
				Name:     "Temperature",
				Required: spec.id == "item-5",
				Options: []models.ModifierOption{
					{Name: "Rare"},
					{Name: "Medium"},
					{Name: "Well Done"},
				},
			},
			{
				Name: "Add-ons",
				Options: []models.ModifierOption{
					{Name: "Extra " + fake.Food().Vegetable(), Price: 1.50},
					{Name: "Side of " + fake.Food().Fruit(), Price: 2.00},
				},
			},
		}
	case "drink":
		return []models.Modifier{
			{
				Name: "Size",
				Options: []models.ModifierOption{
					{Name: "Regular"},
					{Name: "Large", Price: 1.00},
				},
			},
		}
	default:
		return nil
	}
}
