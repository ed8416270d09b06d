package repository

import (
	"context"

	"library-backend/internal/domains/author"
	"library-backend/internal/infrastructure/filestore"
)

type authorRepository struct {
	authors *filestore.Collection[author.Author]
}

// NewAuthorRepository returns a Repository backed by the authors
// collection file.
func NewAuthorRepository(authors *filestore.Collection[author.Author]) author.Repository {
	return &authorRepository{authors: authors}
}

func (r *authorRepository) Insert(ctx context.Context, a author.Author) (author.Author, error) {
	var created author.Author

	err := r.authors.Update(func(records []author.Author) ([]author.Author, error) {
		a.ID = filestore.NextID(records)
		created = a
		return append(records, a), nil
	})
	if err != nil {
		return author.Author{}, err
	}

	return created, nil
}

func (r *authorRepository) GetByID(ctx context.Context, id int) (author.Author, error) {
	for _, a := range r.authors.Snapshot() {
		if a.ID == id {
			return a, nil
		}
	}
	return author.Author{}, author.ErrAuthorNotFound
}

func (r *authorRepository) List(ctx context.Context) ([]author.Author, error) {
	return r.authors.Snapshot(), nil
}
