package borrowing

import "context"

// Repository defines data access for the borrowings collection plus the
// two cross-store lending transitions. Borrow and Return span the books
// and borrowings collections and are all-or-nothing: no caller ever
// observes a decremented copy count without its borrowing record, or
// the reverse.
type Repository interface {
	// List returns a snapshot of the whole collection in stored order.
	List(ctx context.Context) ([]Borrowing, error)

	// Borrow checks the referenced book exists and has a free copy,
	// decrements its copies_available, allocates the borrowing id and
	// inserts rec — all inside one cross-store transaction. The state
	// checks live here because they must hold at commit time, not at
	// some earlier read.
	// Errors: book.ErrBookNotFound, ErrNoCopiesAvailable
	Borrow(ctx context.Context, rec Borrowing) (Borrowing, error)

	// Return marks the borrowing returned with the given return date
	// and increments the referenced book's copies_available, in one
	// cross-store transaction. When the book has been deleted in the
	// meantime the borrowing is still marked returned and no count is
	// adjusted.
	// Errors: ErrBorrowingNotFound, ErrAlreadyReturned
	Return(ctx context.Context, borrowingID int, returnDate string) (Borrowing, error)
}
