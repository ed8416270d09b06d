package service

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

type authorService struct {
	repo     author.Repository
	bookRepo book.Repository
	now      func() time.Time
}

// NewAuthorService wires author business rules on top of the authors
// repository. The books repository serves the books-by-author listing.
func NewAuthorService(repo author.Repository, bookRepo book.Repository) author.Service {
	return &authorService{
		repo:     repo,
		bookRepo: bookRepo,
		now:      time.Now,
	}
}

func (s *authorService) Create(ctx context.Context, req *author.CreateAuthorRequest) (author.Author, error) {
	if err := req.Validate(); err != nil {
		return author.Author{}, fmt.Errorf("%w: %v", author.ErrNameRequired, err)
	}

	a := req.ToEntity(s.now().Format(book.TimestampLayout))
	return s.repo.Insert(ctx, a)
}

func (s *authorService) GetByID(ctx context.Context, id int) (author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *authorService) List(ctx context.Context) ([]author.Author, error) {
	return s.repo.List(ctx)
}

func (s *authorService) Books(ctx context.Context, authorID int) ([]book.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]book.Book, 0, len(books))
	for _, b := range books {
		if b.AuthorID == authorID {
			results = append(results, b)
		}
	}
	return results, nil
}
