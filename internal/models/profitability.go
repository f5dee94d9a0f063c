package models

type MenuItemProfitability struct {
	MenuItemID         string  `json:"menu_item_id"`
	Name               string  `json:"name"`
	SellingPrice       float64 `json:"selling_price"`
	IngredientCost     float64 `json:"ingredient_cost"`
	GrossProfit        float64 `json:"gross_profit"`
	GrossMargin        float64 `json:"gross_margin"` // percent
	QuantitySold       int     `json:"quantity_sold"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalCost          float64 `json:"total_cost"`
	ContributionMargin float64 `json:"contribution_margin"`
	Recommendation     string  `json:"recommendation"`
	Reasoning          string  `json:"reasoning"`
}

type Insight struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type ProfitabilitySummary struct {
	TotalRevenue     float64             `json:"total_revenue"`
	TotalCOGS        float64             `json:"total_cogs"`
	TotalLaborCost   float64             `json:"total_labor_cost"`
	GrossProfit      float64             `json:"gross_profit"`
	FoodCostPercent  float64             `json:"food_cost_percent"`
	PrimeCost        float64             `json:"prime_cost"`
	PrimeCostPercent float64             `json:"prime_cost_percent"`
	Recommendations  map[string][]string `json:"recommendations"` // recommendation -> item names
	Insights         []Insight           `json:"insights"`
}
