package repository

import (
	"context"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/borrowing"
	"library-backend/internal/infrastructure/filestore"
)

type borrowingRepository struct {
	books      *filestore.Collection[book.Book]
	borrowings *filestore.Collection[borrowing.Borrowing]
}

// NewBorrowingRepository returns a Repository coordinating the books and
// borrowings collection files. Cross-store transactions always lock
// books before borrowings; every other caller must keep that order.
func NewBorrowingRepository(
	books *filestore.Collection[book.Book],
	borrowings *filestore.Collection[borrowing.Borrowing],
) borrowing.Repository {
	return &borrowingRepository{
		books:      books,
		borrowings: borrowings,
	}
}

func (r *borrowingRepository) List(ctx context.Context) ([]borrowing.Borrowing, error) {
	return r.borrowings.Snapshot(), nil
}

func (r *borrowingRepository) Borrow(ctx context.Context, rec borrowing.Borrowing) (borrowing.Borrowing, error) {
	var created borrowing.Borrowing

	err := filestore.Transact2(r.books, r.borrowings,
		func(books []book.Book, records []borrowing.Borrowing) ([]book.Book, []borrowing.Borrowing, error) {
			idx := -1
			for i := range books {
				if books[i].ID == rec.BookID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, nil, book.ErrBookNotFound
			}
			if !books[idx].Available() {
				return nil, nil, borrowing.ErrNoCopiesAvailable
			}

			books[idx].CopiesAvailable--

			rec.ID = filestore.NextID(records)
			created = rec
			return books, append(records, rec), nil
		})
	if err != nil {
		return borrowing.Borrowing{}, err
	}

	return created, nil
}

func (r *borrowingRepository) Return(ctx context.Context, borrowingID int, returnDate string) (borrowing.Borrowing, error) {
	var updated borrowing.Borrowing

	err := filestore.Transact2(r.books, r.borrowings,
		func(books []book.Book, records []borrowing.Borrowing) ([]book.Book, []borrowing.Borrowing, error) {
			idx := -1
			for i := range records {
				if records[i].ID == borrowingID {
					idx = i
					break
				}
			}
			if idx < 0 {
				return nil, nil, borrowing.ErrBorrowingNotFound
			}
			if records[idx].Returned() {
				return nil, nil, borrowing.ErrAlreadyReturned
			}

			rec := records[idx]
			rec.Status = borrowing.StatusReturned
			rec.ReturnDate = &returnDate
			records[idx] = rec
			updated = rec

			// The book may have been deleted while the copy was out;
			// the borrowing still completes, only the count adjustment
			// is skipped.
			for i := range books {
				if books[i].ID == rec.BookID {
					books[i].CopiesAvailable++
					break
				}
			}

			return books, records, nil
		})
	if err != nil {
		return borrowing.Borrowing{}, err
	}

	return updated, nil
}
