package repository

import "errors"

var (
	ErrRecordNotFound   = errors.New("record not found")
	ErrEditConflict     = errors.New("edit conflict")
	ErrDuplicateRecord  = errors.New("duplicate record")
	ErrLoanLimitReached = errors.New("loan limit reached")
	ErrOverdueLoans     = errors.New("overdue loans outstanding")
)
