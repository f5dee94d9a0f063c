package models

type UsageRecord struct {
	ItemID       string  `json:"item_id"`
	Date         string  `json:"date"`
	QuantityUsed float64 `json:"quantity_used"`
	Unit         string  `json:"unit"`
}

type InventoryPrediction struct {
	ItemID            string  `json:"item_id"`
	CurrentStock      float64 `json:"current_stock"`
	AverageDailyUsage float64 `json:"average_daily_usage"`
	// nil when average usage is zero; serializes as JSON null.
	PredictedDaysUntilOut      *float64 `json:"predicted_days_until_out"`
	RecommendedReorderQuantity float64  `json:"recommended_reorder_quantity"`
	ReorderUrgency             string   `json:"reorder_urgency"`
	BelowMinThreshold          bool     `json:"below_min_threshold"`
}

type ReorderNotification struct {
	ID                  string  `json:"id"`
	ItemID              string  `json:"item_id"`
	ItemName            string  `json:"item_name"`
	RecommendedQuantity float64 `json:"recommended_quantity"`
	Urgency             string  `json:"urgency"`
	Reason              string  `json:"reason"`
	Status              string  `json:"status"`
}
