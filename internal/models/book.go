package models

// Book is the full document returned by get, create and comment.
type Book struct {
	ID       string   `json:"_id"`
	Title    string   `json:"title"`
	Comments []string `json:"comments"`
}

// BookSummary is the list projection. CommentCount is derived from the
// comments held at read time; it is never stored.
type BookSummary struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	CommentCount int    `json:"commentcount"`
}

// Summary projects b for list responses.
func (b Book) Summary() BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, CommentCount: len(b.Comments)}
}

// Normalize guarantees Comments is encoded as [] and never null.
func (b Book) Normalize() Book {
	if b.Comments == nil {
		b.Comments = []string{}
	}
	return b
}
