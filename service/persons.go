package service

import (
	"errors"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/repository"
)

type persons interface {
	CreatePerson(firstName string, lastName string) (*data.Person, error)
	GetPerson(personID int64) (*data.Person, error)
	ListPersons(filters data.Filters) ([]*data.Person, data.Metadata, error)
	UpdatePerson(personID int64, firstName *string, lastName *string) (*data.Person, error)
	DeletePerson(personID int64) error
}

// CreatePerson service creates a new person record. Author and borrower
// profiles are layered on top of persons afterwards.
func (s *service) CreatePerson(firstName string, lastName string) (*data.Person, error) {
	person := &data.Person{
		FirstName: firstName,
		LastName:  lastName,
	}
	v := validator.New()
	if data.ValidatePerson(v, person); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreatePerson(person)
	if err != nil {
		return nil, err
	}
	return person, nil
}

// GetPerson service shows the details of a specific person.
func (s *service) GetPerson(personID int64) (*data.Person, error) {
	person, err := s.repo.GetPerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return person, nil
}

// ListPersons service retrieves a paginated list of person records.
func (s *service) ListPersons(filters data.Filters) ([]*data.Person, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	people, metadata, err := s.repo.GetAllPersons(filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return people, metadata, nil
}

// UpdatePerson service partially updates a person record.
func (s *service) UpdatePerson(personID int64, firstName *string, lastName *string) (*data.Person, error) {
	person, err := s.repo.GetPerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if firstName != nil {
		person.FirstName = *firstName
	}
	if lastName != nil {
		person.LastName = *lastName
	}
	v := validator.New()
	if data.ValidatePerson(v, person); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdatePerson(person)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return person, nil
}

// DeletePerson service marks a person record inactive. A person who still
// owns an active author or borrower profile cannot be removed.
func (s *service) DeletePerson(personID int64) error {
	_, err := s.repo.GetPerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	hasProfiles, err := s.repo.PersonHasProfiles(personID)
	if err != nil {
		return err
	}
	if hasProfiles {
		return ErrProfileInUse
	}
	err = s.repo.DeactivatePerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}
