package borrowing

import "context"

// Service defines business logic operations for the lending domain.
type Service interface {
	// List returns all borrowing records, active and returned.
	List(ctx context.Context) ([]Borrowing, error)

	// Borrow lends one copy of a book.
	// Business rules:
	// - book_id and borrower_name are required
	// - the book must exist and have copies_available > 0
	// - due_date = borrow_date + configured loan period
	// - the copy decrement and the new record commit together
	// Errors: ErrInvalidBorrowing, book.ErrBookNotFound, ErrNoCopiesAvailable
	Borrow(ctx context.Context, req *BorrowRequest) (Borrowing, error)

	// Return completes a borrowing. Not idempotent: returning an
	// already-returned record fails and changes nothing.
	// Errors: ErrBorrowingNotFound, ErrAlreadyReturned
	Return(ctx context.Context, borrowingID int) (Borrowing, error)

	// Overdue returns the borrowings still out past their due date as
	// of today.
	Overdue(ctx context.Context) ([]Borrowing, error)
}
