package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"
	"library-backend/internal/domains/borrowing"
	borrowingRepo "library-backend/internal/domains/borrowing/repository"
	"library-backend/internal/infrastructure/filestore"
)

func intPtr(v int) *int { return &v }

type fixture struct {
	svc      *borrowingService
	bookRepo book.Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	books, err := filestore.Open[book.Book](filepath.Join(dir, "books.json"))
	require.NoError(t, err)
	borrowings, err := filestore.Open[borrowing.Borrowing](filepath.Join(dir, "borrowings.json"))
	require.NoError(t, err)

	repo := borrowingRepo.NewBorrowingRepository(books, borrowings)
	svc := NewBorrowingService(repo, borrowing.DefaultLoanPeriodDays).(*borrowingService)
	svc.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}

	return &fixture{
		svc:      svc,
		bookRepo: bookRepo.NewBookRepository(books),
	}
}

func (f *fixture) setToday(t *testing.T, date string) {
	t.Helper()
	day, err := time.Parse(borrowing.DateLayout, date)
	require.NoError(t, err)
	f.svc.now = func() time.Time { return day }
}

func (f *fixture) addBook(t *testing.T, isbn string, copies int) book.Book {
	t.Helper()
	b, err := f.bookRepo.Insert(context.Background(), book.Book{
		Title:           "Dune",
		AuthorID:        1,
		ISBN:            isbn,
		Genre:           book.DefaultGenre,
		CopiesAvailable: copies,
		TotalCopies:     copies,
		CreatedAt:       "2026-01-01 00:00:00",
	})
	require.NoError(t, err)
	return b
}

func (f *fixture) borrow(t *testing.T, bookID int) borrowing.Borrowing {
	t.Helper()
	rec, err := f.svc.Borrow(context.Background(), &borrowing.BorrowRequest{
		BookID:       intPtr(bookID),
		BorrowerName: "Paul Atreides",
	})
	require.NoError(t, err)
	return rec
}

func (f *fixture) bookByID(t *testing.T, id int) book.Book {
	t.Helper()
	b, err := f.bookRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return b
}

func TestBorrow_CreatesRecordAndDecrementsCopies(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 2)

	rec, err := f.svc.Borrow(context.Background(), &borrowing.BorrowRequest{
		BookID:        intPtr(b.ID),
		BorrowerName:  "Paul Atreides",
		BorrowerEmail: "paul@arrakis.example",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.ID)
	assert.Equal(t, b.ID, rec.BookID)
	assert.Equal(t, "Paul Atreides", rec.BorrowerName)
	assert.Equal(t, "paul@arrakis.example", rec.BorrowerEmail)
	assert.Equal(t, borrowing.StatusBorrowed, rec.Status)
	assert.Equal(t, "2026-03-01", rec.BorrowDate)
	assert.Equal(t, "2026-03-15", rec.DueDate)
	assert.Nil(t, rec.ReturnDate)

	assert.Equal(t, 1, f.bookByID(t, b.ID).CopiesAvailable)
}

func TestBorrow_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		req  borrowing.BorrowRequest
	}{
		{name: "missing_book_id", req: borrowing.BorrowRequest{BorrowerName: "Paul"}},
		{name: "missing_borrower_name", req: borrowing.BorrowRequest{BookID: intPtr(1)}},
		{name: "empty_request", req: borrowing.BorrowRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addBook(t, "001", 1)

			_, err := f.svc.Borrow(context.Background(), &tt.req)
			assert.ErrorIs(t, err, borrowing.ErrInvalidBorrowing)
		})
	}
}

func TestBorrow_BookNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Borrow(context.Background(), &borrowing.BorrowRequest{
		BookID:       intPtr(5),
		BorrowerName: "Paul Atreides",
	})

	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestBorrow_ExhaustsCopies(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 2)

	f.borrow(t, b.ID)
	f.borrow(t, b.ID)

	_, err := f.svc.Borrow(context.Background(), &borrowing.BorrowRequest{
		BookID:       intPtr(b.ID),
		BorrowerName: "Paul Atreides",
	})

	assert.ErrorIs(t, err, borrowing.ErrNoCopiesAvailable)
	assert.Equal(t, 0, f.bookByID(t, b.ID).CopiesAvailable)

	// The failed attempt left no record behind.
	records, err := f.svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestReturn_RestoresCopiesAndCompletesRecord(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 2)
	rec := f.borrow(t, b.ID)

	returned, err := f.svc.Return(context.Background(), rec.ID)
	require.NoError(t, err)

	assert.Equal(t, borrowing.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.Equal(t, "2026-03-01", *returned.ReturnDate)

	assert.Equal(t, 2, f.bookByID(t, b.ID).CopiesAvailable)
}

func TestReturn_NotIdempotent(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 1)
	rec := f.borrow(t, b.ID)

	_, err := f.svc.Return(context.Background(), rec.ID)
	require.NoError(t, err)

	_, err = f.svc.Return(context.Background(), rec.ID)
	assert.ErrorIs(t, err, borrowing.ErrAlreadyReturned)

	// Second attempt changed nothing: copies not incremented twice.
	assert.Equal(t, 1, f.bookByID(t, b.ID).CopiesAvailable)
}

func TestReturn_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Return(context.Background(), 42)

	assert.ErrorIs(t, err, borrowing.ErrBorrowingNotFound)
}

// When the book was deleted while the copy was out, the borrowing still
// completes; only the copy-count adjustment is skipped. Reconciliation
// gap kept on purpose.
func TestReturn_BookDeletedMeanwhile(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 1)
	rec := f.borrow(t, b.ID)

	_, err := f.bookRepo.Delete(context.Background(), b.ID)
	require.NoError(t, err)

	returned, err := f.svc.Return(context.Background(), rec.ID)
	require.NoError(t, err)

	assert.Equal(t, borrowing.StatusReturned, returned.Status)
	require.NotNil(t, returned.ReturnDate)
}

func TestOverdue(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 4)

	// Borrowed on Jan 1, due Jan 15.
	f.setToday(t, "2026-01-01")
	overdueRec := f.borrow(t, b.ID)
	returnedRec := f.borrow(t, b.ID)

	// Returned before the query date, so it never shows up.
	_, err := f.svc.Return(context.Background(), returnedRec.ID)
	require.NoError(t, err)

	// Borrowed on Feb 1, due Feb 15 — not yet due on Feb 10.
	f.setToday(t, "2026-02-01")
	currentRec := f.borrow(t, b.ID)

	f.setToday(t, "2026-02-10")
	overdue, err := f.svc.Overdue(context.Background())
	require.NoError(t, err)

	require.Len(t, overdue, 1)
	assert.Equal(t, overdueRec.ID, overdue[0].ID)
	assert.NotEqual(t, currentRec.ID, overdue[0].ID)
}

func TestOverdue_DueTodayIsNotOverdue(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 1)

	f.setToday(t, "2026-01-01")
	f.borrow(t, b.ID) // due 2026-01-15

	f.setToday(t, "2026-01-15")
	overdue, err := f.svc.Overdue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overdue)

	f.setToday(t, "2026-01-16")
	overdue, err = f.svc.Overdue(context.Background())
	require.NoError(t, err)
	assert.Len(t, overdue, 1)
}

func TestBorrow_ConcurrentNeverOversells(t *testing.T) {
	f := newFixture(t)
	const copies = 5
	const workers = 20
	b := f.addBook(t, "001", copies)

	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Borrow(context.Background(), &borrowing.BorrowRequest{
				BookID:       intPtr(b.ID),
				BorrowerName: "Paul Atreides",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, borrowing.ErrNoCopiesAvailable)
		}
	}
	assert.Equal(t, copies, succeeded)

	after := f.bookByID(t, b.ID)
	assert.Equal(t, 0, after.CopiesAvailable)
	assert.GreaterOrEqual(t, after.CopiesAvailable, 0)
	assert.LessOrEqual(t, after.CopiesAvailable, after.TotalCopies)

	records, err := f.svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, copies)

	seen := make(map[int]bool, copies)
	for _, rec := range records {
		assert.False(t, seen[rec.ID], "duplicate borrowing id %d", rec.ID)
		seen[rec.ID] = true
	}
}

func TestBorrowReturn_RoundTripRestoresOriginalCount(t *testing.T) {
	f := newFixture(t)
	b := f.addBook(t, "001", 3)
	before := f.bookByID(t, b.ID).CopiesAvailable

	rec := f.borrow(t, b.ID)
	assert.Equal(t, before-1, f.bookByID(t, b.ID).CopiesAvailable)

	_, err := f.svc.Return(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, before, f.bookByID(t, b.ID).CopiesAvailable)
}
