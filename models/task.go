package models

// Task is a single to-do item belonging to a task category.
type Task struct {
	Meta

	Title      string `json:"title"`
	CategoryID string `json:"category_id"`
	Completed  bool   `json:"completed"`
}

// TaskCategory groups tasks under a user-chosen name.
type TaskCategory struct {
	Meta

	Name string `json:"name"`
}
