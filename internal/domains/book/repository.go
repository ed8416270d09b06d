package book

import "context"

// Repository defines data access for the books collection. Every method
// is one storage transaction: the read-modify-write behind each mutation
// is atomic with respect to all other callers.
type Repository interface {
	// Insert stores a new book. The id is allocated inside the insert
	// transaction, and the ISBN uniqueness check happens there too, so
	// concurrent inserts can neither reuse an id nor race past the
	// uniqueness check.
	// Errors: ErrDuplicateISBN
	Insert(ctx context.Context, b Book) (Book, error)

	// Update atomically applies mutate to the book with the given id
	// and persists the result.
	// Errors: ErrBookNotFound
	Update(ctx context.Context, id int, mutate func(b *Book)) (Book, error)

	// Delete removes the book and returns the removed record.
	// Outstanding borrowings are not checked; deleting a borrowed book
	// is allowed and the lending side reconciles on return.
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id int) (Book, error)

	// GetByID retrieves one book.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id int) (Book, error)

	// List returns a snapshot of the whole collection in stored order.
	List(ctx context.Context) ([]Book, error)
}
