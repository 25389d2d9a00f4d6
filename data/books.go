package data

import (
	"time"

	"github.com/emzola/liber/internal/validator"
)

// Book statuses. Deleting a book marks it inactive; inactive books are
// filtered out by every repository query.
const (
	BookStatusActive   = "active"
	BookStatusInactive = "inactive"
)

// ScopeCover identifies cover image uploads to the object storage helpers.
const ScopeCover = "cover"

// Book defines a catalog book record. The lending core consults books but
// never mutates them; only the Borrowing ledger references a book's loans.
type Book struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `json:"title"`
	Isbn        string    `json:"isbn"`
	PublishYear int32     `json:"publish_year"`
	Authors     []string  `json:"authors,omitempty"`
	CoverPath   string    `json:"cover_path,omitempty"`
	Status      string    `json:"-"`
	Version     int32     `json:"-"`
}

// BookSummary is the projection of a book used in listing and loan views.
type BookSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func ValidateBook(v *validator.Validator, book *Book) {
	v.Check(book.Title != "", "title", "must be provided")
	v.Check(len(book.Title) <= 200, "title", "must not be more than 200 bytes long")
	v.Check(book.Isbn != "", "isbn", "must be provided")
	v.Check(validator.ISBN(book.Isbn), "isbn", "must be a valid ISBN-10 or ISBN-13")
	v.Check(book.PublishYear >= 1000, "publish_year", "must be a 4-digit year")
	v.Check(book.PublishYear <= 9999, "publish_year", "must be a 4-digit year")
}
