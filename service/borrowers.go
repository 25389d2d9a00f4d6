package service

import (
	"errors"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/repository"
)

type borrowers interface {
	CreateBorrower(personID int64) (*data.Borrower, error)
	GetBorrower(borrowerID int64) (*data.Borrower, error)
	GetBorrowerForUser(userID int64) (*data.Borrower, error)
	ListBorrowers(name string, filters data.Filters) ([]*data.Borrower, data.Metadata, error)
	DeleteBorrower(borrowerID int64) error
}

// CreateBorrower service creates a borrower profile for an existing person.
// A person holds at most one borrower profile.
func (s *service) CreateBorrower(personID int64) (*data.Borrower, error) {
	borrower := &data.Borrower{
		PersonID: personID,
	}
	v := validator.New()
	if data.ValidateBorrower(v, borrower); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	person, err := s.repo.GetPerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = s.repo.CreateBorrower(borrower)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return nil, ErrDuplicateRecord
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	borrower.Name = person.Name()
	return borrower, nil
}

// GetBorrower service shows the details of a specific borrower.
func (s *service) GetBorrower(borrowerID int64) (*data.Borrower, error) {
	borrower, err := s.repo.GetBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return borrower, nil
}

// GetBorrowerForUser service resolves a user account to its borrower profile.
func (s *service) GetBorrowerForUser(userID int64) (*data.Borrower, error) {
	borrower, err := s.repo.GetBorrowerByUserID(userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return borrower, nil
}

// ListBorrowers service retrieves a paginated list of borrower profiles,
// optionally filtered by name.
func (s *service) ListBorrowers(name string, filters data.Filters) ([]*data.Borrower, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	borrowers, metadata, err := s.repo.GetAllBorrowers(name, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return borrowers, metadata, nil
}

// DeleteBorrower service marks a borrower profile inactive. The profile
// cannot be removed while the borrower still has a loan outstanding; the
// loan history stays in the ledger either way.
func (s *service) DeleteBorrower(borrowerID int64) error {
	_, err := s.repo.GetBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.DeactivateBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return ErrProfileInUse
		default:
			return err
		}
	}
	return nil
}
