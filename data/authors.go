package data

import (
	"github.com/emzola/liber/internal/validator"
)

// Author defines an author profile. Exactly one person owns each author
// profile; books are associated many-to-many.
type Author struct {
	ID         int64  `json:"id"`
	PersonID   int64  `json:"person_id"`
	Name       string `json:"name"`
	Biography  string `json:"biography,omitempty"`
	BooksCount int    `json:"books_count,omitempty"`
	Status     string `json:"-"`
	Version    int32  `json:"-"`
}

// AuthorStats aggregates lending history over all of an author's books.
// TotalTimesBorrowed is a historical count: returned loans still count.
// MostPopularBookTitle is nil when the author has no books or no book of
// theirs has ever been borrowed.
type AuthorStats struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	TotalBooksWritten    int     `json:"total_books_written"`
	TotalTimesBorrowed   int     `json:"total_times_borrowed"`
	MostPopularBookTitle *string `json:"most_popular_book_title"`
}

func ValidateAuthor(v *validator.Validator, author *Author) {
	v.Check(author.Biography != "", "biography", "must be provided")
	v.Check(len(author.Biography) >= 8, "biography", "must be at least 8 bytes long")
	v.Check(len(author.Biography) <= 200, "biography", "must not be more than 200 bytes long")
	v.Check(author.PersonID > 0, "person_id", "must be a positive integer")
}
