package models

// Link is a saved bookmark with a free-form category label.
type Link struct {
	Meta

	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
}
