package service

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/emzola/liber/config"
	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/jsonlog"
	"github.com/emzola/liber/repository"
)

// fixedClock pins today for deterministic date arithmetic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// mockRepo stubs the repository layer with function fields. Calling an
// unstubbed method panics via the embedded nil interface, which keeps tests
// honest about which repository calls they expect.
type mockRepo struct {
	repository.Repository
	getBookFn                   func(bookID int64) (*data.Book, error)
	getActiveBorrowingForBookFn func(bookID int64) (*data.Borrowing, error)
	getBorrowerByUserIDFn       func(userID int64) (*data.Borrower, error)
	getBorrowerFn               func(borrowerID int64) (*data.Borrower, error)
	hasOverdueLoansFn           func(borrowerID int64, overdueThreshold data.Date) (bool, error)
	countActiveLoansFn          func(borrowerID int64) (int, error)
	createBorrowingFn           func(borrowing *data.Borrowing, overdueThreshold data.Date, loansLimit int) error
	setReturnDateFn             func(bookID, borrowerID int64, returnDate data.Date) error
	getUserByIDFn               func(userID int64) (*data.User, error)
	getOverdueLoansFn           func(borrowerID int64, overdueThreshold data.Date) ([]*data.OverdueLoan, error)
	getCurrentLoansFn           func(borrowerID int64) ([]*data.BookSummary, error)
	getBorrowingHistoryFn       func(borrowerID int64) ([]*data.BorrowingHistoryEntry, error)
	getAuthorStatsFn            func(authorID int64) (*data.AuthorStats, error)
}

func (m *mockRepo) GetBook(bookID int64) (*data.Book, error) {
	return m.getBookFn(bookID)
}

func (m *mockRepo) GetActiveBorrowingForBook(bookID int64) (*data.Borrowing, error) {
	return m.getActiveBorrowingForBookFn(bookID)
}

func (m *mockRepo) GetBorrowerByUserID(userID int64) (*data.Borrower, error) {
	return m.getBorrowerByUserIDFn(userID)
}

func (m *mockRepo) GetBorrower(borrowerID int64) (*data.Borrower, error) {
	return m.getBorrowerFn(borrowerID)
}

func (m *mockRepo) HasOverdueLoans(borrowerID int64, overdueThreshold data.Date) (bool, error) {
	return m.hasOverdueLoansFn(borrowerID, overdueThreshold)
}

func (m *mockRepo) CountActiveLoans(borrowerID int64) (int, error) {
	return m.countActiveLoansFn(borrowerID)
}

func (m *mockRepo) CreateBorrowing(borrowing *data.Borrowing, overdueThreshold data.Date, loansLimit int) error {
	return m.createBorrowingFn(borrowing, overdueThreshold, loansLimit)
}

func (m *mockRepo) SetReturnDate(bookID, borrowerID int64, returnDate data.Date) error {
	return m.setReturnDateFn(bookID, borrowerID, returnDate)
}

func (m *mockRepo) GetUserByID(userID int64) (*data.User, error) {
	return m.getUserByIDFn(userID)
}

func (m *mockRepo) GetOverdueLoans(borrowerID int64, overdueThreshold data.Date) ([]*data.OverdueLoan, error) {
	return m.getOverdueLoansFn(borrowerID, overdueThreshold)
}

func (m *mockRepo) GetCurrentLoans(borrowerID int64) ([]*data.BookSummary, error) {
	return m.getCurrentLoansFn(borrowerID)
}

func (m *mockRepo) GetBorrowingHistory(borrowerID int64) ([]*data.BorrowingHistoryEntry, error) {
	return m.getBorrowingHistoryFn(borrowerID)
}

func (m *mockRepo) GetAuthorStats(authorID int64) (*data.AuthorStats, error) {
	return m.getAuthorStatsFn(authorID)
}

func newTestService(t *testing.T, repo repository.Repository, today string) (*service, *sync.WaitGroup) {
	t.Helper()
	var cfg config.Config
	cfg.Loan.DueDays = 14
	cfg.Loan.LoansLimit = 5
	var wg sync.WaitGroup
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	clk := fixedClock{now: data.MustParseDate(today).Time}
	return New(cfg, &wg, logger, clk, repo), &wg
}

// bookFound and borrowerFound are the common happy-path stubs.
func bookFound(id int64, title string) func(int64) (*data.Book, error) {
	return func(bookID int64) (*data.Book, error) {
		if bookID != id {
			return nil, repository.ErrRecordNotFound
		}
		return &data.Book{ID: id, Title: title}, nil
	}
}

func borrowerFound(id int64, name string) func(int64) (*data.Borrower, error) {
	return func(int64) (*data.Borrower, error) {
		return &data.Borrower{ID: id, Name: name}, nil
	}
}

func noActiveBorrowing(int64) (*data.Borrowing, error) {
	return nil, repository.ErrRecordNotFound
}

func noOverdueLoans(int64, data.Date) (bool, error) {
	return false, nil
}

func activeLoans(n int) func(int64) (int, error) {
	return func(int64) (int, error) {
		return n, nil
	}
}

func TestBorrowBookSuccess(t *testing.T) {
	var gotThreshold data.Date
	var gotLimit int
	repo := &mockRepo{
		getBookFn:                   bookFound(3, "The Go Programming Language"),
		getActiveBorrowingForBookFn: noActiveBorrowing,
		getBorrowerByUserIDFn:       borrowerFound(9, "Ada Lovelace"),
		hasOverdueLoansFn:           noOverdueLoans,
		countActiveLoansFn:          activeLoans(2),
		createBorrowingFn: func(borrowing *data.Borrowing, overdueThreshold data.Date, loansLimit int) error {
			gotThreshold = overdueThreshold
			gotLimit = loansLimit
			borrowing.ID = 77
			return nil
		},
		getUserByIDFn: func(userID int64) (*data.User, error) {
			return nil, errors.New("skip email in tests")
		},
	}
	s, wg := newTestService(t, repo, "2024-03-10")

	receipt, err := s.BorrowBook(3, 1)
	wg.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if receipt.ID != 77 {
		t.Errorf("receipt id: got %d, want 77", receipt.ID)
	}
	if receipt.BookTitle != "The Go Programming Language" {
		t.Errorf("book title: got %q", receipt.BookTitle)
	}
	if receipt.BorrowerName != "Ada Lovelace" {
		t.Errorf("borrower name: got %q", receipt.BorrowerName)
	}
	if receipt.BorrowDate.String() != "2024-03-10" {
		t.Errorf("borrow date: got %s, want 2024-03-10", receipt.BorrowDate)
	}
	if receipt.DueDate.String() != "2024-03-24" {
		t.Errorf("due date: got %s, want 2024-03-24", receipt.DueDate)
	}
	if gotThreshold.String() != "2024-02-25" {
		t.Errorf("overdue threshold: got %s, want 2024-02-25", gotThreshold)
	}
	if gotLimit != 5 {
		t.Errorf("loans limit: got %d, want 5", gotLimit)
	}
}

func TestBorrowBookNotFound(t *testing.T) {
	repo := &mockRepo{
		getBookFn: func(int64) (*data.Book, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	_, err := s.BorrowBook(404, 1)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}

func TestBorrowBookAlreadyLoaned(t *testing.T) {
	repo := &mockRepo{
		getBookFn: bookFound(3, "Dune"),
		getActiveBorrowingForBookFn: func(bookID int64) (*data.Borrowing, error) {
			return &data.Borrowing{ID: 5, BookID: bookID, BorrowerID: 2}, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	_, err := s.BorrowBook(3, 1)
	if !errors.Is(err, ErrBookAlreadyLoaned) {
		t.Fatalf("got %v, want ErrBookAlreadyLoaned", err)
	}
}

func TestBorrowBookNoBorrowerProfile(t *testing.T) {
	repo := &mockRepo{
		getBookFn:                   bookFound(3, "Dune"),
		getActiveBorrowingForBookFn: noActiveBorrowing,
		getBorrowerByUserIDFn: func(int64) (*data.Borrower, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	_, err := s.BorrowBook(3, 1)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}

func TestBorrowBookOverdueLoans(t *testing.T) {
	var gotThreshold data.Date
	repo := &mockRepo{
		getBookFn:                   bookFound(3, "Dune"),
		getActiveBorrowingForBookFn: noActiveBorrowing,
		getBorrowerByUserIDFn:       borrowerFound(9, "Ada Lovelace"),
		hasOverdueLoansFn: func(borrowerID int64, overdueThreshold data.Date) (bool, error) {
			gotThreshold = overdueThreshold
			return true, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	_, err := s.BorrowBook(3, 1)
	if !errors.Is(err, ErrOverdueLoans) {
		t.Fatalf("got %v, want ErrOverdueLoans", err)
	}
	if gotThreshold.String() != "2024-02-25" {
		t.Errorf("overdue threshold: got %s, want 2024-02-25", gotThreshold)
	}
}

func TestBorrowBookLoanLimitReached(t *testing.T) {
	repo := &mockRepo{
		getBookFn:                   bookFound(3, "Dune"),
		getActiveBorrowingForBookFn: noActiveBorrowing,
		getBorrowerByUserIDFn:       borrowerFound(9, "Ada Lovelace"),
		hasOverdueLoansFn:           noOverdueLoans,
		countActiveLoansFn:          activeLoans(5),
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	_, err := s.BorrowBook(3, 1)
	if !errors.Is(err, ErrLoanLimitReached) {
		t.Fatalf("got %v, want ErrLoanLimitReached", err)
	}
}

// The eligibility checks are re-run inside the repository transaction; a
// failure there surfaces through the same sentinels even though the
// service-side pre-checks passed moments earlier.
func TestBorrowBookEligibilityRecheck(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{"overdue loans outstanding", repository.ErrOverdueLoans, ErrOverdueLoans},
		{"loan limit reached", repository.ErrLoanLimitReached, ErrLoanLimitReached},
		{"lost race on the book", repository.ErrDuplicateRecord, ErrBookAlreadyLoaned},
		{"borrower deactivated mid-flight", repository.ErrRecordNotFound, ErrRecordNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{
				getBookFn:                   bookFound(3, "Dune"),
				getActiveBorrowingForBookFn: noActiveBorrowing,
				getBorrowerByUserIDFn:       borrowerFound(9, "Ada Lovelace"),
				hasOverdueLoansFn:           noOverdueLoans,
				countActiveLoansFn:          activeLoans(2),
				createBorrowingFn: func(*data.Borrowing, data.Date, int) error {
					return tt.repoErr
				},
			}
			s, _ := newTestService(t, repo, "2024-03-10")

			_, err := s.BorrowBook(3, 1)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReturnBookSuccess(t *testing.T) {
	var gotReturnDate data.Date
	var gotBorrowerID int64
	repo := &mockRepo{
		getBookFn:             bookFound(3, "Dune"),
		getBorrowerByUserIDFn: borrowerFound(9, "Ada Lovelace"),
		setReturnDateFn: func(bookID, borrowerID int64, returnDate data.Date) error {
			gotBorrowerID = borrowerID
			gotReturnDate = returnDate
			return nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-20")

	err := s.ReturnBook(3, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBorrowerID != 9 {
		t.Errorf("borrower id: got %d, want 9", gotBorrowerID)
	}
	if gotReturnDate.String() != "2024-03-20" {
		t.Errorf("return date: got %s, want 2024-03-20", gotReturnDate)
	}
}

func TestReturnBookNotBorrowed(t *testing.T) {
	repo := &mockRepo{
		getBookFn:             bookFound(3, "Dune"),
		getBorrowerByUserIDFn: borrowerFound(9, "Ada Lovelace"),
		setReturnDateFn: func(int64, int64, data.Date) error {
			return repository.ErrRecordNotFound
		},
	}
	s, _ := newTestService(t, repo, "2024-03-20")

	// Covers both a book the borrower never had out and a second return of
	// the same book: in either case no open ledger row matches.
	err := s.ReturnBook(3, 1)
	if !errors.Is(err, ErrNoActiveLoan) {
		t.Fatalf("got %v, want ErrNoActiveLoan", err)
	}
}

func TestReturnBookNotFound(t *testing.T) {
	repo := &mockRepo{
		getBookFn: func(int64) (*data.Book, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s, _ := newTestService(t, repo, "2024-03-20")

	err := s.ReturnBook(404, 1)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}
