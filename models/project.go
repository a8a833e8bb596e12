package models

// ProjectTaskStatus is the kanban column a project task sits in.
type ProjectTaskStatus string

const (
	StatusTodo  ProjectTaskStatus = "todo"
	StatusDoing ProjectTaskStatus = "doing"
	StatusDone  ProjectTaskStatus = "done"
)

// ProjectTaskStatuses lists the valid kanban columns in board order.
var ProjectTaskStatuses = []ProjectTaskStatus{StatusTodo, StatusDoing, StatusDone}

// Project is a kanban board.
type Project struct {
	Meta

	Title string `json:"title"`
}

// ProjectTask is a card on a project's kanban board.
type ProjectTask struct {
	Meta

	ProjectID string            `json:"project_id"`
	Title     string            `json:"title"`
	Status    ProjectTaskStatus `json:"status"`
}
