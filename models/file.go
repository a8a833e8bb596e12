package models

// FileMeta describes an uploaded file. The content itself lives outside
// the record store (on the server's file store, keyed by record ID);
// this record carries only the descriptive fields shown in the UI.
type FileMeta struct {
	Meta

	Name        string `json:"name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}
