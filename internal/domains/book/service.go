package book

import "context"

// Service defines business logic operations for the Book domain.
type Service interface {
	// Create creates a new book.
	// Business rules:
	// - title, author_id and isbn are required
	// - isbn must be unique across the collection (case-sensitive exact match)
	// - genre defaults to "General", copy counts default to 1
	// - author_id is NOT checked against the authors collection
	// Returns: created book with allocated id and created_at stamp
	// Errors: ErrInvalidBook, ErrDuplicateISBN
	Create(ctx context.Context, req *CreateBookRequest) (Book, error)

	// Update applies the fields present in the request and stamps
	// updated_at. No re-validation of isbn uniqueness or copy bounds.
	// Errors: ErrBookNotFound
	Update(ctx context.Context, id int, req *UpdateBookRequest) (Book, error)

	// Delete removes the book and returns the removed record.
	// Errors: ErrBookNotFound
	Delete(ctx context.Context, id int) (Book, error)

	// GetByID retrieves one book.
	// Errors: ErrBookNotFound
	GetByID(ctx context.Context, id int) (Book, error)

	// List returns all books.
	List(ctx context.Context) ([]Book, error)

	// Search filters books by title and/or genre substring,
	// case-insensitive, both terms ANDed when present.
	Search(ctx context.Context, filter SearchFilter) ([]Book, error)
}
