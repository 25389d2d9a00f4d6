package service

import (
	"errors"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/repository"
)

type reports interface {
	GetOverdueLoans(borrowerID int64) ([]*data.OverdueLoan, error)
	GetCurrentLoans(borrowerID int64) ([]*data.BookSummary, error)
	GetBorrowingHistory(borrowerID int64) ([]*data.BorrowingHistoryEntry, error)
	GetAuthorStatistics(authorID int64) (*data.AuthorStats, error)
}

// GetOverdueLoans service reports a borrower's outstanding loans that are
// past their due date, with the due date and the number of days overdue.
// An unknown borrower is an error; a borrower with nothing overdue gets an
// empty list.
func (s *service) GetOverdueLoans(borrowerID int64) ([]*data.OverdueLoan, error) {
	_, err := s.repo.GetBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	loans, err := s.repo.GetOverdueLoans(borrowerID, s.overdueThreshold())
	if err != nil {
		return nil, err
	}
	today := s.today()
	for _, loan := range loans {
		loan.DueDate = loan.BorrowDate.AddDays(s.config.Loan.DueDays)
		loan.OverdueDays = loan.DueDate.DaysUntil(today)
	}
	return loans, nil
}

// GetCurrentLoans service lists the books a borrower currently has out.
func (s *service) GetCurrentLoans(borrowerID int64) ([]*data.BookSummary, error) {
	_, err := s.repo.GetBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	books, err := s.repo.GetCurrentLoans(borrowerID)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// GetBorrowingHistory service lists a borrower's full loan history,
// outstanding and returned alike.
func (s *service) GetBorrowingHistory(borrowerID int64) ([]*data.BorrowingHistoryEntry, error) {
	_, err := s.repo.GetBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	entries, err := s.repo.GetBorrowingHistory(borrowerID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetAuthorStatistics service aggregates lending statistics for an author.
func (s *service) GetAuthorStatistics(authorID int64) (*data.AuthorStats, error) {
	stats, err := s.repo.GetAuthorStats(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return stats, nil
}
