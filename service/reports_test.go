package service

import (
	"errors"
	"testing"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/repository"
)

func TestGetOverdueLoansMath(t *testing.T) {
	// Borrowed 30 days before today with a 14 day grace period: due 16 days ago.
	repo := &mockRepo{
		getBorrowerFn: borrowerFound(9, "Ada Lovelace"),
		getOverdueLoansFn: func(borrowerID int64, overdueThreshold data.Date) ([]*data.OverdueLoan, error) {
			if overdueThreshold.String() != "2024-02-25" {
				t.Errorf("overdue threshold: got %s, want 2024-02-25", overdueThreshold)
			}
			return []*data.OverdueLoan{
				{BookID: 3, BookTitle: "Dune", BorrowDate: data.MustParseDate("2024-02-09")},
				{BookID: 4, BookTitle: "Hyperion", BorrowDate: data.MustParseDate("2024-02-24")},
			}, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	loans, err := s.GetOverdueLoans(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 2 {
		t.Fatalf("got %d loans, want 2", len(loans))
	}
	if loans[0].DueDate.String() != "2024-02-23" {
		t.Errorf("due date: got %s, want 2024-02-23", loans[0].DueDate)
	}
	if loans[0].OverdueDays != 16 {
		t.Errorf("overdue days: got %d, want 16", loans[0].OverdueDays)
	}
	if loans[1].OverdueDays != 1 {
		t.Errorf("overdue days: got %d, want 1", loans[1].OverdueDays)
	}
}

func TestGetOverdueLoansEmpty(t *testing.T) {
	repo := &mockRepo{
		getBorrowerFn: borrowerFound(9, "Ada Lovelace"),
		getOverdueLoansFn: func(int64, data.Date) ([]*data.OverdueLoan, error) {
			return []*data.OverdueLoan{}, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	loans, err := s.GetOverdueLoans(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 0 {
		t.Fatalf("got %d loans, want 0", len(loans))
	}
}

func TestGetOverdueLoansUnknownBorrower(t *testing.T) {
	repo := &mockRepo{
		getBorrowerFn: func(int64) (*data.Borrower, error) {
			return nil, repository.ErrRecordNotFound
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	_, err := s.GetOverdueLoans(404)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}

func TestGetCurrentLoans(t *testing.T) {
	repo := &mockRepo{
		getBorrowerFn: borrowerFound(9, "Ada Lovelace"),
		getCurrentLoansFn: func(int64) ([]*data.BookSummary, error) {
			return []*data.BookSummary{{ID: 3, Title: "Dune"}}, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	books, err := s.GetCurrentLoans(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Fatalf("got %+v, want single entry for Dune", books)
	}
}

func TestGetBorrowingHistory(t *testing.T) {
	repo := &mockRepo{
		getBorrowerFn: borrowerFound(9, "Ada Lovelace"),
		getBorrowingHistoryFn: func(int64) ([]*data.BorrowingHistoryEntry, error) {
			return []*data.BorrowingHistoryEntry{
				{BookID: 4, BookTitle: "Hyperion", BorrowDate: data.MustParseDate("2024-03-01"), IsReturned: false},
				{BookID: 3, BookTitle: "Dune", BorrowDate: data.MustParseDate("2024-01-02"), IsReturned: true},
			}, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	entries, err := s.GetBorrowingHistory(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].IsReturned || !entries[1].IsReturned {
		t.Errorf("returned flags wrong: %+v", entries)
	}
}

func TestGetAuthorStatistics(t *testing.T) {
	title := "Dune"
	repo := &mockRepo{
		getAuthorStatsFn: func(authorID int64) (*data.AuthorStats, error) {
			if authorID == 404 {
				return nil, repository.ErrRecordNotFound
			}
			return &data.AuthorStats{
				ID:                   7,
				Name:                 "Frank Herbert",
				TotalBooksWritten:    6,
				TotalTimesBorrowed:   41,
				MostPopularBookTitle: &title,
			}, nil
		},
	}
	s, _ := newTestService(t, repo, "2024-03-10")

	stats, err := s.GetAuthorStatistics(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalBooksWritten != 6 || stats.TotalTimesBorrowed != 41 {
		t.Errorf("stats: %+v", stats)
	}
	if stats.MostPopularBookTitle == nil || *stats.MostPopularBookTitle != "Dune" {
		t.Errorf("most popular: %v", stats.MostPopularBookTitle)
	}

	_, err = s.GetAuthorStatistics(404)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("got %v, want ErrRecordNotFound", err)
	}
}
