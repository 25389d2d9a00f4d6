package service

import (
	"errors"
	"net/http"

	"github.com/emzola/liber/clients"
	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/repository"
)

type books interface {
	CreateBook(title string, isbn string, publishYear int32, authorIDs []int64) (*data.Book, error)
	GetBook(bookID int64) (*data.Book, error)
	GetBookByIsbn(isbn string) (*data.Book, error)
	ListBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	ListAvailableBooks() ([]*data.BookSummary, error)
	UpdateBook(bookID int64, title *string, isbn *string, publishYear *int32) (*data.Book, error)
	UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error)
	AddAuthorToBook(bookID int64, authorID int64) error
	DeleteBook(bookID int64) error
}

// CreateBook service adds a new book to the catalog together with its author
// associations.
func (s *service) CreateBook(title string, isbn string, publishYear int32, authorIDs []int64) (*data.Book, error) {
	book := &data.Book{
		Title:       title,
		Isbn:        isbn,
		PublishYear: publishYear,
	}
	v := validator.New()
	data.ValidateBook(v, book)
	v.Check(len(authorIDs) > 0, "author_ids", "must contain at least one author")
	v.Check(validator.Unique(authorIDs), "author_ids", "must not contain duplicate values")
	if !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err := s.repo.CreateBook(book, authorIDs)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("isbn", "a book with this ISBN already exists")
			return nil, s.failedValidation(v.Errors)
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetBook service shows the details of a specific book.
func (s *service) GetBook(bookID int64) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// GetBookByIsbn service shows the details of the book with a given ISBN.
func (s *service) GetBookByIsbn(isbn string) (*data.Book, error) {
	v := validator.New()
	if v.Check(validator.ISBN(isbn), "isbn", "must be a valid ISBN-10 or ISBN-13"); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	book, err := s.repo.GetBookByIsbn(isbn)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return book, nil
}

// ListBooks service retrieves a paginated list of books, optionally filtered
// by a search term matching the title or an author's name.
func (s *service) ListBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	v := validator.New()
	if data.ValidateFilters(v, filters); !v.Valid() {
		return nil, data.Metadata{}, s.failedValidation(v.Errors)
	}
	books, metadata, err := s.repo.GetAllBooks(search, filters)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	return books, metadata, nil
}

// ListAvailableBooks service lists the books with no outstanding loan.
func (s *service) ListAvailableBooks() ([]*data.BookSummary, error) {
	books, err := s.repo.GetAvailableBooks()
	if err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook service partially updates a book record. Nil fields are left
// unchanged.
func (s *service) UpdateBook(bookID int64, title *string, isbn *string, publishYear *int32) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	if title != nil {
		book.Title = *title
	}
	if isbn != nil {
		book.Isbn = *isbn
	}
	if publishYear != nil {
		book.PublishYear = *publishYear
	}
	v := validator.New()
	if data.ValidateBook(v, book); !v.Valid() {
		return nil, s.failedValidation(v.Errors)
	}
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		case errors.Is(err, repository.ErrDuplicateRecord):
			v.AddError("isbn", "a book with this ISBN already exists")
			return nil, s.failedValidation(v.Errors)
		default:
			return nil, err
		}
	}
	return book, nil
}

// UpdateBookCover service uploads a cover image for a book.
func (s *service) UpdateBookCover(bookID int64, r *http.Request) (*data.Book, error) {
	book, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	err = r.ParseMultipartForm(5000)
	if err != nil {
		var maxBytesError *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesError):
			return nil, ErrContentTooLarge
		default:
			return nil, ErrBadRequest
		}
	}
	file, fileHeader, err := r.FormFile("cover")
	if err != nil {
		return nil, ErrBadRequest
	}
	// Detect image Mime type
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	// Check whether Mime type is supported
	supportedMediaType := []string{
		"image/jpeg",
		"image/png",
	}
	if v := validator.Mime(mtype, supportedMediaType...); !v {
		return nil, ErrUnsupportedMediaType
	}
	// Upload image to S3 object storage
	s3Client, err := clients.NewS3Client(s.config)
	if err != nil {
		return nil, err
	}
	s3CoverPath, err := s.uploadFileToS3(s3Client, buffer, mtype, fileHeader, data.ScopeCover)
	if err != nil {
		return nil, err
	}
	book.CoverPath = s3CoverPath
	// Update book record
	err = s.repo.UpdateBook(book)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return book, nil
}

// AddAuthorToBook service associates an existing author with a book.
func (s *service) AddAuthorToBook(bookID int64, authorID int64) error {
	_, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.AddAuthorToBook(bookID, authorID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRecord):
			return ErrDuplicateRecord
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// DeleteBook service removes a book from the catalog by marking it inactive.
// The loan ledger keeps its rows; a book with an outstanding loan cannot be
// removed.
func (s *service) DeleteBook(bookID int64) error {
	_, err := s.repo.GetBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	err = s.repo.DeactivateBook(bookID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return ErrBookAlreadyLoaned
		default:
			return err
		}
	}
	return nil
}
