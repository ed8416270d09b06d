package author

import "context"

// Repository defines data access for the authors collection.
type Repository interface {
	// Insert stores a new author, allocating its id inside the insert
	// transaction.
	Insert(ctx context.Context, a Author) (Author, error)

	// GetByID retrieves one author.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int) (Author, error)

	// List returns a snapshot of the whole collection in stored order.
	List(ctx context.Context) ([]Author, error)
}
