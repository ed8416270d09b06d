package book

// TimestampLayout is the format of created_at/updated_at stamps across
// all collections. Date-only fields use the borrowing package's layout;
// both sort lexicographically in chronological order, which the overdue
// query depends on.
const TimestampLayout = "2006-01-02 15:04:05"

// DefaultGenre is assigned when a book is created without a genre.
const DefaultGenre = "General"

// Book represents the core Book entity as persisted in the books
// collection. Field names match the collection file layout.
type Book struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	AuthorID        int     `json:"author_id"`
	ISBN            string  `json:"isbn"`
	Genre           string  `json:"genre"`
	PublicationYear *int    `json:"publication_year"`
	CopiesAvailable int     `json:"copies_available"`
	TotalCopies     int     `json:"total_copies"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       *string `json:"updated_at,omitempty"`
}

func (b Book) RecordID() int { return b.ID }

// Available reports whether at least one copy can be borrowed.
func (b Book) Available() bool {
	return b.CopiesAvailable > 0
}
