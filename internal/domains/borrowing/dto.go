package borrowing

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BorrowRequest - POST /api/borrowings
type BorrowRequest struct {
	BookID        *int   `json:"book_id"`
	BorrowerName  string `json:"borrower_name"`
	BorrowerEmail string `json:"borrower_email"`
}

func (req BorrowRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.BookID, validation.NotNil),
		validation.Field(&req.BorrowerName, validation.Required),
	)
}

// ToEntity builds the Borrowing record in its initial state. The id is
// assigned inside the borrow transaction.
func (req *BorrowRequest) ToEntity(borrowDate, dueDate string) Borrowing {
	return Borrowing{
		BookID:        *req.BookID,
		BorrowerName:  req.BorrowerName,
		BorrowerEmail: req.BorrowerEmail,
		BorrowDate:    borrowDate,
		DueDate:       dueDate,
		ReturnDate:    nil,
		Status:        StatusBorrowed,
	}
}
