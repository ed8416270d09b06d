package borrowing

// Borrowing status values. The lifecycle is a single irreversible
// transition: borrowed -> returned. Nothing else exists — no renewal,
// cancellation or reservation states.
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
)

// DateLayout is the format of borrow_date/due_date/return_date.
// ISO-8601 dates sort lexicographically in chronological order; the
// overdue query compares them as strings and never parses them.
const DateLayout = "2006-01-02"

// DefaultLoanPeriodDays is the loan period applied when none is
// configured: due_date = borrow_date + 14 days.
const DefaultLoanPeriodDays = 14

// Borrowing represents one lending record as persisted in the
// borrowings collection.
type Borrowing struct {
	ID            int     `json:"id"`
	BookID        int     `json:"book_id"`
	BorrowerName  string  `json:"borrower_name"`
	BorrowerEmail string  `json:"borrower_email"`
	BorrowDate    string  `json:"borrow_date"`
	DueDate       string  `json:"due_date"`
	ReturnDate    *string `json:"return_date"`
	Status        string  `json:"status"`
}

func (b Borrowing) RecordID() int { return b.ID }

// Returned reports whether the record has reached its terminal state.
func (b Borrowing) Returned() bool {
	return b.Status == StatusReturned
}

// OverdueAt reports whether the borrowing is overdue as of today, given
// as a DateLayout string. String comparison is deliberate.
func (b Borrowing) OverdueAt(today string) bool {
	return b.Status == StatusBorrowed && b.DueDate < today
}
