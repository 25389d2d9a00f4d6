package data

import (
	"github.com/emzola/liber/internal/validator"
)

// Borrower defines a borrower profile. Exactly one person owns each borrower
// profile; a person may hold at most one.
type Borrower struct {
	ID                int64  `json:"id"`
	PersonID          int64  `json:"person_id"`
	Name              string `json:"name"`
	CurrentLoansCount int    `json:"current_loans_count"`
	Status            string `json:"-"`
	Version           int32  `json:"-"`
}

func ValidateBorrower(v *validator.Validator, borrower *Borrower) {
	v.Check(borrower.PersonID > 0, "person_id", "must be a positive integer")
}
