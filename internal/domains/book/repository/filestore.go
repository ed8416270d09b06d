package repository

import (
	"context"

	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/filestore"
)

type bookRepository struct {
	books *filestore.Collection[book.Book]
}

// NewBookRepository returns a Repository backed by the books collection file.
func NewBookRepository(books *filestore.Collection[book.Book]) book.Repository {
	return &bookRepository{books: books}
}

func (r *bookRepository) Insert(ctx context.Context, b book.Book) (book.Book, error) {
	var created book.Book

	err := r.books.Update(func(records []book.Book) ([]book.Book, error) {
		for _, existing := range records {
			if existing.ISBN == b.ISBN {
				return nil, book.ErrDuplicateISBN
			}
		}

		b.ID = filestore.NextID(records)
		created = b
		return append(records, b), nil
	})
	if err != nil {
		return book.Book{}, err
	}

	return created, nil
}

func (r *bookRepository) Update(ctx context.Context, id int, mutate func(b *book.Book)) (book.Book, error) {
	var updated book.Book

	err := r.books.Update(func(records []book.Book) ([]book.Book, error) {
		for i := range records {
			if records[i].ID == id {
				b := records[i]
				mutate(&b)
				records[i] = b
				updated = b
				return records, nil
			}
		}
		return nil, book.ErrBookNotFound
	})
	if err != nil {
		return book.Book{}, err
	}

	return updated, nil
}

func (r *bookRepository) Delete(ctx context.Context, id int) (book.Book, error) {
	var removed book.Book

	err := r.books.Update(func(records []book.Book) ([]book.Book, error) {
		for i := range records {
			if records[i].ID == id {
				removed = records[i]
				return append(records[:i], records[i+1:]...), nil
			}
		}
		return nil, book.ErrBookNotFound
	})
	if err != nil {
		return book.Book{}, err
	}

	return removed, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int) (book.Book, error) {
	for _, b := range r.books.Snapshot() {
		if b.ID == id {
			return b, nil
		}
	}
	return book.Book{}, book.ErrBookNotFound
}

func (r *bookRepository) List(ctx context.Context) ([]book.Book, error) {
	return r.books.Snapshot(), nil
}
