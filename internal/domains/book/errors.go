package book

import "errors"

var (
	// Validation errors
	ErrInvalidBook = errors.New("title, author_id, and isbn are required")

	// Business rule errors
	ErrDuplicateISBN = errors.New("book with this ISBN already exists")
	ErrBookNotFound  = errors.New("book not found")
)

// ToHTTPStatus converts a domain error to its HTTP status code.
// Duplicate ISBN answers 400, not 409 — the API has always done so.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidBook), errors.Is(err, ErrDuplicateISBN):
		return 400
	default:
		return 500
	}
}
