package book

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest - POST /api/books
type CreateBookRequest struct {
	Title           string `json:"title"`
	AuthorID        *int   `json:"author_id"`
	ISBN            string `json:"isbn"`
	Genre           string `json:"genre"`
	PublicationYear *int   `json:"publication_year"`
	CopiesAvailable *int   `json:"copies_available"`
	TotalCopies     *int   `json:"total_copies"`
}

// Validate checks the request. Title, author_id and isbn are required;
// copy counts, when given, must stay inside the model bounds.
func (req CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Title, validation.Required),
		validation.Field(&req.AuthorID, validation.NotNil),
		validation.Field(&req.ISBN, validation.Required),
		validation.Field(&req.CopiesAvailable, validation.Min(0)),
		validation.Field(&req.TotalCopies, validation.Min(1)),
	)
}

// ToEntity builds the Book record. The id is assigned later, inside the
// insert transaction.
func (req *CreateBookRequest) ToEntity(createdAt string) Book {
	b := Book{
		Title:           req.Title,
		AuthorID:        *req.AuthorID,
		ISBN:            req.ISBN,
		Genre:           DefaultGenre,
		PublicationYear: req.PublicationYear,
		CopiesAvailable: 1,
		TotalCopies:     1,
		CreatedAt:       createdAt,
	}
	if req.Genre != "" {
		b.Genre = req.Genre
	}
	if req.CopiesAvailable != nil {
		b.CopiesAvailable = *req.CopiesAvailable
	}
	if req.TotalCopies != nil {
		b.TotalCopies = *req.TotalCopies
	}
	return b
}

// UpdateBookRequest - PUT /api/books/:id
// All fields optional; only fields present in the payload are applied.
// Uniqueness and copy-count bounds are deliberately not re-checked here:
// updates have always been permissive and stay that way.
type UpdateBookRequest struct {
	Title           *string `json:"title"`
	AuthorID        *int    `json:"author_id"`
	ISBN            *string `json:"isbn"`
	Genre           *string `json:"genre"`
	PublicationYear *int    `json:"publication_year"`
	CopiesAvailable *int    `json:"copies_available"`
	TotalCopies     *int    `json:"total_copies"`
}

// ApplyToEntity applies the non-nil fields to an existing Book.
func (req *UpdateBookRequest) ApplyToEntity(b *Book) {
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.AuthorID != nil {
		b.AuthorID = *req.AuthorID
	}
	if req.ISBN != nil {
		b.ISBN = *req.ISBN
	}
	if req.Genre != nil {
		b.Genre = *req.Genre
	}
	if req.PublicationYear != nil {
		b.PublicationYear = req.PublicationYear
	}
	if req.CopiesAvailable != nil {
		b.CopiesAvailable = *req.CopiesAvailable
	}
	if req.TotalCopies != nil {
		b.TotalCopies = *req.TotalCopies
	}
}

// SearchFilter - GET /api/books/search?q=&genre=
type SearchFilter struct {
	Query string `form:"q"`
	Genre string `form:"genre"`
}

// Matches reports whether a book satisfies the filter. Both terms are
// case-insensitive substring matches and are ANDed when both are set.
func (f SearchFilter) Matches(b Book) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(b.Title), strings.ToLower(f.Query)) {
		return false
	}
	if f.Genre != "" && !strings.Contains(strings.ToLower(b.Genre), strings.ToLower(f.Genre)) {
		return false
	}
	return true
}
