package models

import "time"

// CalendarTodo is a dated entry shown on the calendar view.
type CalendarTodo struct {
	Meta

	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}
