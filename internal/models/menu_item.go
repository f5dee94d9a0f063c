package models

type ModifierOption struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Modifier struct {
	Name     string           `json:"name"`
	Required bool             `json:"required"`
	Options  []ModifierOption `json:"options"`
}

type MenuItem struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	Price     float64    `json:"price"`
	Available bool       `json:"available"`
	OnMenu    bool       `json:"on_menu"`
	PrepTime  int        `json:"prep_time"` // minutes
	Modifiers []Modifier `json:"modifiers,omitempty"`
}

type RecipeIngredient struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Quantity        float64 `json:"quantity"` // units consumed per sale
}

type Recipe struct {
	MenuItemID  string             `json:"menu_item_id"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

type InventoryItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	MinThreshold float64 `json:"min_threshold"`
	Category     string  `json:"category"`
}
