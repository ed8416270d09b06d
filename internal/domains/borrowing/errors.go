package borrowing

import (
	"errors"

	"library-backend/internal/domains/book"
)

var (
	// Validation errors
	ErrInvalidBorrowing = errors.New("book_id and borrower_name are required")

	// Business rule errors
	ErrBorrowingNotFound = errors.New("borrowing record not found")
	ErrAlreadyReturned   = errors.New("book already returned")
	ErrNoCopiesAvailable = errors.New("no copies available for borrowing")
)

// ToHTTPStatus converts a domain error to its HTTP status code. Borrow
// references a book, so book.ErrBookNotFound surfaces here too.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBorrowingNotFound), errors.Is(err, book.ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidBorrowing),
		errors.Is(err, ErrAlreadyReturned),
		errors.Is(err, ErrNoCopiesAvailable):
		return 400
	default:
		return 500
	}
}
