package models

// AgendaItem collections are replaced whole on save; the caller owns
// ordering and validation.
type AgendaItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Order       int    `json:"order"`
}
