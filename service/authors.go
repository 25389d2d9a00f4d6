package service

import (
	"errors"

	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/repository"
)

type authors interface {
	CreateAuthor(personID int64, biography string) (*data.Author, error)
	GetAuthor(authorID int64) (*data.Author, error)
	ListAuthors(filters data.Filters) ([]*data.Author, data.Metadata, error)
	ListBooksByAuthor(authorID int64) ([]*data.BookSummary, error)
	UpdateAuthor(authorID int64, biography *string) (*data.Author, error)
	DeleteAuthor(authorID int64) error
}

// CreateAuthor service creates an author profile for an existing person.
// A person holds at most one author profile.
func (s *service) CreateAuthor(personID int64, biography string) (*data.Author, error) {
	author := &data.Author{
		PersonID:  personID,
		Biography: biography,
	}
	v := validator.New()
	if data.ValidateAuthor(v, author); !v.Valid() {
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
	err = s.repo.CreateAuthor(author)
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
	author.Name = person.Name()
	return author, nil
}

// GetAuthor service shows the details of a specific author.
func (s *service) GetAuthor(authorID int64) (*data.Author, error) {
	author, err := s.repo.GetAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return author, nil
}

// ListAuthors service retrieves a paginated list of author profiles.
func (s *service) ListAuthors(filters data.Filters) ([]*data.Author, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	authors, metadata, err := s.repo.GetAllAuthors(filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return authors, metadata, nil
}

// ListBooksByAuthor service lists the books associated with an author.
func (s *service) ListBooksByAuthor(authorID int64) ([]*data.BookSummary, error) {
	_, err := s.repo.GetAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	books, err := s.repo.GetBooksByAuthor(authorID)
	if err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateAuthor service partially updates an author profile.
func (s *service) UpdateAuthor(authorID int64, biography *string) (*data.Author, error) {
	author, err := s.repo.GetAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if biography != nil {
		author.Biography = *biography
	}
	v := validator.New()
	if data.ValidateAuthor(v, author); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateAuthor(author)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return author, nil
}

// DeleteAuthor service marks an author profile inactive. Books keep their
// association rows; they simply stop listing the author.
func (s *service) DeleteAuthor(authorID int64) error {
	err := s.repo.DeactivateAuthor(authorID)
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
