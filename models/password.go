package models

// Password is a stored credential entry.
//
// The secret is kept in plain form in both storage modes. This mirrors the
// product's current behaviour for a single-user tool and is a documented
// security gap, not an invitation to rely on it.
type Password struct {
	Meta

	Name     string `json:"name"`
	URL      string `json:"url"`
	Password string `json:"password"`
}
