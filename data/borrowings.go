package data

import (
	"time"
)

// Borrowing is a loan ledger entry. Rows are append-mostly history: a row is
// created when a book is borrowed and its ReturnDate is set exactly once when
// the book comes back. BorrowDate never changes and rows are never deleted.
type Borrowing struct {
	ID         int64     `json:"id"`
	BookID     int64     `json:"book_id"`
	BorrowerID int64     `json:"borrower_id"`
	BorrowDate Date      `json:"borrow_date"`
	ReturnDate *Date     `json:"return_date,omitempty"`
	CreatedAt  time.Time `json:"-"`
}

// IsReturned reports whether the loan has been closed.
func (b *Borrowing) IsReturned() bool {
	return b.ReturnDate != nil
}

// IsOverdue reports whether an outstanding loan has exceeded the grace
// period of dueDays as of today. Returned loans are never overdue.
func (b *Borrowing) IsOverdue(dueDays int, today Date) bool {
	if b.IsReturned() {
		return false
	}
	return b.BorrowDate.AddDays(dueDays).Before(today)
}

// LoanReceipt is the confirmation returned on a successful borrow.
type LoanReceipt struct {
	ID           int64  `json:"id"`
	BookTitle    string `json:"book_title"`
	BorrowerName string `json:"borrower_name"`
	BorrowDate   Date   `json:"borrow_date"`
	DueDate      Date   `json:"due_date"`
}

// OverdueLoan describes one outstanding loan past its due date.
type OverdueLoan struct {
	BookID      int64  `json:"book_id"`
	BookTitle   string `json:"book_title"`
	BorrowDate  Date   `json:"borrow_date"`
	DueDate     Date   `json:"due_date"`
	OverdueDays int    `json:"overdue_days"`
}

// BorrowingHistoryEntry is one row of a borrower's full loan history,
// returned and outstanding alike.
type BorrowingHistoryEntry struct {
	BookID     int64  `json:"book_id"`
	BookTitle  string `json:"book_title"`
	BorrowDate Date   `json:"borrow_date"`
	IsReturned bool   `json:"is_returned"`
}
