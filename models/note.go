package models

// Note is a free-form text note.
type Note struct {
	Meta

	Title   string `json:"title"`
	Content string `json:"content"`
}
