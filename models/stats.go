package models

// DashboardStats summarizes how many records a user keeps in each
// collection. Collections with no records still appear with a zero count so
// the dashboard can render a stable grid.
type DashboardStats struct {
	Collections map[string]int `json:"collections"`
	Total       int            `json:"total"`
}
