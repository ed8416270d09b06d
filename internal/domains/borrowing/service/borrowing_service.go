package service

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/domains/borrowing"
)

type borrowingService struct {
	repo           borrowing.Repository
	loanPeriodDays int
	now            func() time.Time
}

// NewBorrowingService wires the lending rules on top of the borrowing
// repository. loanPeriodDays controls how far out due dates land; pass
// borrowing.DefaultLoanPeriodDays for the stock two-week period.
func NewBorrowingService(repo borrowing.Repository, loanPeriodDays int) borrowing.Service {
	if loanPeriodDays < 1 {
		loanPeriodDays = borrowing.DefaultLoanPeriodDays
	}
	return &borrowingService{
		repo:           repo,
		loanPeriodDays: loanPeriodDays,
		now:            time.Now,
	}
}

func (s *borrowingService) List(ctx context.Context) ([]borrowing.Borrowing, error) {
	return s.repo.List(ctx)
}

func (s *borrowingService) Borrow(ctx context.Context, req *borrowing.BorrowRequest) (borrowing.Borrowing, error) {
	if err := req.Validate(); err != nil {
		return borrowing.Borrowing{}, fmt.Errorf("%w: %v", borrowing.ErrInvalidBorrowing, err)
	}

	borrowDate := s.now()
	dueDate := borrowDate.AddDate(0, 0, s.loanPeriodDays)

	rec := req.ToEntity(
		borrowDate.Format(borrowing.DateLayout),
		dueDate.Format(borrowing.DateLayout),
	)
	return s.repo.Borrow(ctx, rec)
}

func (s *borrowingService) Return(ctx context.Context, borrowingID int) (borrowing.Borrowing, error) {
	returnDate := s.now().Format(borrowing.DateLayout)
	return s.repo.Return(ctx, borrowingID, returnDate)
}

func (s *borrowingService) Overdue(ctx context.Context) ([]borrowing.Borrowing, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Format(borrowing.DateLayout)

	overdue := make([]borrowing.Borrowing, 0, len(records))
	for _, rec := range records {
		if rec.OverdueAt(today) {
			overdue = append(overdue, rec)
		}
	}
	return overdue, nil
}
