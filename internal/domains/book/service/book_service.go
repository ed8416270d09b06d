package service

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/domains/book"
)

type bookService struct {
	repo book.Repository
	now  func() time.Time
}

// NewBookService wires the catalog business rules on top of the books
// repository.
func NewBookService(repo book.Repository) book.Service {
	return &bookService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.CreateBookRequest) (book.Book, error) {
	if err := req.Validate(); err != nil {
		return book.Book{}, fmt.Errorf("%w: %v", book.ErrInvalidBook, err)
	}

	b := req.ToEntity(s.now().Format(book.TimestampLayout))
	return s.repo.Insert(ctx, b)
}

func (s *bookService) Update(ctx context.Context, id int, req *book.UpdateBookRequest) (book.Book, error) {
	return s.repo.Update(ctx, id, func(b *book.Book) {
		req.ApplyToEntity(b)
		stamp := s.now().Format(book.TimestampLayout)
		b.UpdatedAt = &stamp
	})
}

func (s *bookService) Delete(ctx context.Context, id int) (book.Book, error) {
	return s.repo.Delete(ctx, id)
}

func (s *bookService) GetByID(ctx context.Context, id int) (book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context) ([]book.Book, error) {
	return s.repo.List(ctx)
}

func (s *bookService) Search(ctx context.Context, filter book.SearchFilter) ([]book.Book, error) {
	books, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]book.Book, 0, len(books))
	for _, b := range books {
		if filter.Matches(b) {
			results = append(results, b)
		}
	}
	return results, nil
}
