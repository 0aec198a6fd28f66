package models

// Mentor is a catalog entry for the mentorship directory.
type Mentor struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Institution  string `json:"institution"`
	Field        string `json:"field"`
	Image        string `json:"image,omitempty"`
	Availability string `json:"availability"`
	IsPremium    bool   `json:"is_premium,omitempty"`
}
