package model

// Solution is a standalone promotional card (e.g. a partner service or a
// featured tool) shown on the homepage. No relationships to other entities.
type Solution struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Link        string  `json:"link"`
	LinkText    string  `json:"linkText"`
}
