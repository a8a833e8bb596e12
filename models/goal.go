package models

// GoalPriority is the closed priority set for goals. The values are the
// Hungarian labels the product ships with and are matched case-sensitively.
type GoalPriority string

const (
	PriorityHigh   GoalPriority = "magas"
	PriorityMedium GoalPriority = "közepes"
	PriorityLow    GoalPriority = "alacsony"
)

// GoalPriorities lists the valid priorities from highest to lowest.
var GoalPriorities = []GoalPriority{PriorityHigh, PriorityMedium, PriorityLow}

// Goal is a wishlist entry ("desire") with a price target.
type Goal struct {
	Meta

	Title    string       `json:"title"`
	Price    float64      `json:"price"`
	Priority GoalPriority `json:"priority"`
}
