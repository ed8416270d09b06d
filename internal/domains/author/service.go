package author

import (
	"context"

	"library-backend/internal/domains/book"
)

// Service defines business logic operations for the Author domain.
type Service interface {
	// Create creates a new author.
	// Business rules:
	// - name is required
	// - bio and nationality default to "", birth_year to null
	// Errors: ErrNameRequired
	Create(ctx context.Context, req *CreateAuthorRequest) (Author, error)

	// GetByID retrieves one author.
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id int) (Author, error)

	// List returns all authors.
	List(ctx context.Context) ([]Author, error)

	// Books returns every book whose author_id equals the given id.
	// The author itself is not required to exist; an unknown id simply
	// yields an empty list.
	Books(ctx context.Context, authorID int) ([]book.Book, error)
}
