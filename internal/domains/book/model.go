package book

// Book is a single catalog entry. Availability is false while the book is
// on loan; the lending engine owns that transition.
type Book struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Author       string `json:"author"`
	Availability bool   `json:"availability"`
}
