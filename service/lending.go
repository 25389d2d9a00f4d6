package service

import (
	"errors"
	"strings"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/mailer"
	"github.com/emzola/liber/repository"
)

type lending interface {
	BorrowBook(bookID int64, userID int64) (*data.LoanReceipt, error)
	ReturnBook(bookID int64, userID int64) error
}

// BorrowBook service loans a book out to the borrower profile linked to the
// calling user. The eligibility checks run in order: the book must exist, the
// book must not already be out, the user must resolve to a borrower profile,
// the borrower must have no overdue loans and must be under the loan limit.
// The last two checks are re-run inside the repository transaction, so two
// concurrent borrows cannot both slip past them.
func (s *service) BorrowBook(bookID int64, userID int64) (*data.LoanReceipt, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	_, err = s.repo.GetActiveBorrowingForBook(bookID)
	if err == nil {
		return nil, ErrBookAlreadyLoaned
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, err
	}
	borrower, err := s.repo.GetBorrowerByUserID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	overdue, err := s.repo.HasOverdueLoans(borrower.ID, s.overdueThreshold())
	if err != nil {
		return nil, err
	}
	if overdue {
		return nil, ErrOverdueLoans
	}
	activeLoans, err := s.repo.CountActiveLoans(borrower.ID)
	if err != nil {
		return nil, err
	}
	if activeLoans >= s.config.Loan.LoansLimit {
		return nil, ErrLoanLimitReached
	}
	borrowing := &data.Borrowing{
		BookID:     book.ID,
		BorrowerID: borrower.ID,
		BorrowDate: s.today(),
	}
	err = s.repo.CreateBorrowing(borrowing, s.overdueThreshold(), s.config.Loan.LoansLimit)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOverdueLoans):
			return nil, ErrOverdueLoans
		case errors.Is(err, repository.ErrLoanLimitReached):
			return nil, ErrLoanLimitReached
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrBookAlreadyLoaned
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	receipt := &data.LoanReceipt{
		ID:           borrowing.ID,
		BookTitle:    book.Title,
		BorrowerName: borrower.Name,
		BorrowDate:   borrowing.BorrowDate,
		DueDate:      borrowing.BorrowDate.AddDays(s.config.Loan.DueDays),
	}
	// Send the loan receipt by email in a background goroutine to speed up
	// response time.
	s.background(func() {
		user, err := s.repo.GetUserByID(userID)
		if err != nil {
			s.logger.PrintError(err, nil)
			return
		}
		data := map[string]string{
			"userName":   strings.Split(user.Name, " ")[0],
			"bookTitle":  receipt.BookTitle,
			"borrowDate": receipt.BorrowDate.String(),
			"dueDate":    receipt.DueDate.String(),
		}
		mailer := mailer.New(s.config.SMTP.Host, s.config.SMTP.Port, s.config.SMTP.Username, s.config.SMTP.Password, s.config.SMTP.Sender)
		err = mailer.Send(user.Email, "loan_receipt.tmpl", data)
		if err != nil {
			s.logger.PrintError(err, nil)
		}
	})
	return receipt, nil
}

// ReturnBook service closes the calling user's active loan on a book by
// setting its return date to today. Returning a book that is not out to this
// borrower fails; the operation is deliberately not idempotent, a second
// return reports ErrNoActiveLoan.
func (s *service) ReturnBook(bookID int64, userID int64) error {
	_, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	borrower, err := s.repo.GetBorrowerByUserID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.SetReturnDate(bookID, borrower.ID, s.today())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrNoActiveLoan
		default:
			return err
		}
	}
	return nil
}
