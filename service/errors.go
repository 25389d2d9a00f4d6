package service

import (
	"errors"
	"fmt"
)

var (
	ErrFailedValidation     = errors.New("failed validation")
	ErrRecordNotFound       = errors.New("record not found")
	ErrEditConflict         = errors.New("edit conflict")
	ErrPasswordMismatch     = errors.New("password mismatch")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrContentTooLarge      = errors.New("content too large")
	ErrBadRequest           = errors.New("bad request")
	ErrDuplicateRecord      = errors.New("duplicate record")
	ErrNotPermitted         = errors.New("not permitted")
	ErrBookAlreadyLoaned    = errors.New("book is already loaned out")
	ErrOverdueLoans         = errors.New("borrower has overdue loans outstanding")
	ErrLoanLimitReached     = errors.New("borrower has reached the loan limit")
	ErrNoActiveLoan         = errors.New("book is not currently loaned to this borrower")
	ErrProfileInUse         = errors.New("profile still has outstanding records")
)

// failedValidation folds a validation error map into a single error that
// wraps ErrFailedValidation, so handlers can match it with errors.Is.
func (s *service) failedValidation(errorMap map[string]string) error {
	err := ErrFailedValidation
	for k, v := range errorMap {
		err = fmt.Errorf("%w: %q %s", err, k, v)
	}
	return err
}
