package models

const (
	ShiftBreakfast = "breakfast"
	ShiftLunch     = "lunch"
	ShiftDinner    = "dinner"

	RoleServer = "server"
	RoleHost   = "host"
	RoleCook   = "cook"

	UrgencyCritical = "critical"
	UrgencyUrgent   = "urgent"
	UrgencySoon     = "soon"
	UrgencyOK       = "ok"

	RecommendationIncreasePrice = "increase_price"
	RecommendationPromote       = "promote"
	RecommendationReview        = "review"
	RecommendationMaintain      = "maintain"

	ShiftStatusScheduled = "scheduled"

	NotificationStatusPending = "pending"
)

// DateLayout is the ISO date key used for all grouping. Lexical order of
// these keys is chronological order, which the aggregations rely on.
const DateLayout = "2006-01-02"
