package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/emzola/liber/data"
)

type borrowings interface {
	CreateBorrowing(borrowing *data.Borrowing, overdueThreshold data.Date, loansLimit int) error
	GetActiveBorrowingForBook(bookID int64) (*data.Borrowing, error)
	SetReturnDate(bookID, borrowerID int64, returnDate data.Date) error
	CountActiveLoans(borrowerID int64) (int, error)
	HasOverdueLoans(borrowerID int64, overdueThreshold data.Date) (bool, error)
	GetOverdueLoans(borrowerID int64, overdueThreshold data.Date) ([]*data.OverdueLoan, error)
	GetCurrentLoans(borrowerID int64) ([]*data.BookSummary, error)
	GetBorrowingHistory(borrowerID int64) ([]*data.BorrowingHistoryEntry, error)
}

// CreateBorrowing appends a new ledger row for an outstanding loan. The whole
// operation runs in a single transaction which locks the borrower row, so two
// concurrent borrows by the same borrower cannot both observe "under limit".
// The overdue and limit preconditions are re-checked under that lock; a lost
// race on the book itself trips the partial unique index (at most one
// unreturned row per book) and surfaces as ErrDuplicateRecord.
func (r *repository) CreateBorrowing(borrowing *data.Borrowing, overdueThreshold data.Date, loansLimit int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var borrowerID int64
	query := `
		SELECT id
		FROM borrowers
		WHERE id = $1 AND status = 'active'
		FOR UPDATE`
	err = tx.QueryRowContext(ctx, query, borrowing.BorrowerID).Scan(&borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}

	var active, overdue int
	query = `
		SELECT count(*), count(*) FILTER (WHERE borrow_date < $2)
		FROM borrowings
		WHERE borrower_id = $1 AND return_date IS NULL`
	err = tx.QueryRowContext(ctx, query, borrowing.BorrowerID, overdueThreshold).Scan(&active, &overdue)
	if err != nil {
		return err
	}
	if overdue > 0 {
		return ErrOverdueLoans
	}
	if active >= loansLimit {
		return ErrLoanLimitReached
	}

	query = `
		INSERT INTO borrowings (book_id, borrower_id, borrow_date)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query, borrowing.BookID, borrowing.BorrowerID, borrowing.BorrowDate).Scan(&borrowing.ID, &borrowing.CreatedAt)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "borrowings_active_book_idx"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return tx.Commit()
}

// GetActiveBorrowingForBook retrieves the single unreturned ledger row for a
// book, if any. The partial unique index guarantees there is at most one.
func (r *repository) GetActiveBorrowingForBook(bookID int64) (*data.Borrowing, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, book_id, borrower_id, borrow_date, created_at
		FROM borrowings
		WHERE book_id = $1 AND return_date IS NULL`
	var borrowing data.Borrowing
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&borrowing.ID,
		&borrowing.BookID,
		&borrowing.BorrowerID,
		&borrowing.BorrowDate,
		&borrowing.CreatedAt,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &borrowing, nil
}

// SetReturnDate closes the single active loan for a (book, borrower) pair.
// The conditional UPDATE is the linearizable read-then-write the return path
// needs: if another return already closed the row, no row matches and the
// caller gets ErrRecordNotFound. borrow_date is never touched.
func (r *repository) SetReturnDate(bookID, borrowerID int64, returnDate data.Date) error {
	query := `
		UPDATE borrowings
		SET return_date = $1
		WHERE book_id = $2 AND borrower_id = $3 AND return_date IS NULL
		RETURNING id`
	var id int64
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, returnDate, bookID, borrowerID).Scan(&id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// CountActiveLoans counts a borrower's outstanding loans.
func (r *repository) CountActiveLoans(borrowerID int64) (int, error) {
	query := `
		SELECT count(*)
		FROM borrowings
		WHERE borrower_id = $1 AND return_date IS NULL`
	var count int
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, borrowerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// HasOverdueLoans reports whether a borrower holds any outstanding loan
// borrowed before the overdue threshold date.
func (r *repository) HasOverdueLoans(borrowerID int64, overdueThreshold data.Date) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM borrowings
			WHERE borrower_id = $1 AND return_date IS NULL AND borrow_date < $2
		)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, borrowerID, overdueThreshold).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetOverdueLoans retrieves a borrower's outstanding loans borrowed before
// the overdue threshold date, joined with the book title. Due date and
// overdue day arithmetic happen in the service layer.
func (r *repository) GetOverdueLoans(borrowerID int64, overdueThreshold data.Date) ([]*data.OverdueLoan, error) {
	query := `
		SELECT b.book_id, bk.title, b.borrow_date
		FROM borrowings b
		INNER JOIN books bk ON bk.id = b.book_id
		WHERE b.borrower_id = $1 AND b.return_date IS NULL AND b.borrow_date < $2
		ORDER BY b.borrow_date ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, borrowerID, overdueThreshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	loans := []*data.OverdueLoan{}
	for rows.Next() {
		var loan data.OverdueLoan
		err := rows.Scan(&loan.BookID, &loan.BookTitle, &loan.BorrowDate)
		if err != nil {
			return nil, err
		}
		loans = append(loans, &loan)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return loans, nil
}

// GetCurrentLoans retrieves the books a borrower currently has out.
func (r *repository) GetCurrentLoans(borrowerID int64) ([]*data.BookSummary, error) {
	query := `
		SELECT bk.id, bk.title
		FROM borrowings b
		INNER JOIN books bk ON bk.id = b.book_id
		WHERE b.borrower_id = $1 AND b.return_date IS NULL
		ORDER BY b.borrow_date ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, borrowerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.BookSummary{}
	for rows.Next() {
		var book data.BookSummary
		err := rows.Scan(&book.ID, &book.Title)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBorrowingHistory retrieves a borrower's full loan history, outstanding
// and returned alike, newest first.
func (r *repository) GetBorrowingHistory(borrowerID int64) ([]*data.BorrowingHistoryEntry, error) {
	query := `
		SELECT b.book_id, bk.title, b.borrow_date, b.return_date IS NOT NULL
		FROM borrowings b
		INNER JOIN books bk ON bk.id = b.book_id
		WHERE b.borrower_id = $1
		ORDER BY b.borrow_date DESC, b.id DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, borrowerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := []*data.BorrowingHistoryEntry{}
	for rows.Next() {
		var entry data.BorrowingHistoryEntry
		err := rows.Scan(&entry.BookID, &entry.BookTitle, &entry.BorrowDate, &entry.IsReturned)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
