package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/liber/data"
	"github.com/lib/pq"
)

type books interface {
	CreateBook(book *data.Book, authorIDs []int64) error
	GetBook(bookID int64) (*data.Book, error)
	GetBookByIsbn(isbn string) (*data.Book, error)
	GetAllBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error)
	GetAvailableBooks() ([]*data.BookSummary, error)
	GetBooksByAuthor(authorID int64) ([]*data.BookSummary, error)
	UpdateBook(book *data.Book) error
	AddAuthorToBook(bookID, authorID int64) error
	DeactivateBook(bookID int64) error
}

// CreateBook creates a new book record together with its author associations.
// Both inserts commit atomically.
func (r *repository) CreateBook(book *data.Book, authorIDs []int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	query := `
		INSERT INTO books (title, isbn, publish_year)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version`
	args := []interface{}{book.Title, book.Isbn, book.PublishYear}
	err = tx.QueryRowContext(ctx, query, args...).Scan(&book.ID, &book.CreatedAt, &book.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "books_isbn_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	query = `
		INSERT INTO books_authors (book_id, author_id)
		SELECT $1, unnest($2::bigint[])`
	_, err = tx.ExecContext(ctx, query, book.ID, pq.Array(authorIDs))
	if err != nil {
		switch {
		case err.Error() == `pq: insert or update on table "books_authors" violates foreign key constraint "books_authors_author_id_fkey"`:
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return tx.Commit()
}

// GetBook retrieves an active book record by its ID, including author names.
func (r *repository) GetBook(bookID int64) (*data.Book, error) {
	if bookID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT b.id, b.created_at, b.title, b.isbn, b.publish_year, b.cover_path, b.version,
			coalesce(array_agg(p.first_name || ' ' || p.last_name) FILTER (WHERE p.id IS NOT NULL), '{}')
		FROM books b
		LEFT JOIN books_authors ba ON ba.book_id = b.id
		LEFT JOIN authors a ON a.id = ba.author_id AND a.status = 'active'
		LEFT JOIN persons p ON p.id = a.person_id
		WHERE b.id = $1 AND b.status = 'active'
		GROUP BY b.id`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, bookID).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.Title,
		&book.Isbn,
		&book.PublishYear,
		&book.CoverPath,
		&book.Version,
		pq.Array(&book.Authors),
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetBookByIsbn retrieves an active book record by its ISBN.
func (r *repository) GetBookByIsbn(isbn string) (*data.Book, error) {
	query := `
		SELECT b.id, b.created_at, b.title, b.isbn, b.publish_year, b.cover_path, b.version,
			coalesce(array_agg(p.first_name || ' ' || p.last_name) FILTER (WHERE p.id IS NOT NULL), '{}')
		FROM books b
		LEFT JOIN books_authors ba ON ba.book_id = b.id
		LEFT JOIN authors a ON a.id = ba.author_id AND a.status = 'active'
		LEFT JOIN persons p ON p.id = a.person_id
		WHERE b.isbn = $1 AND b.status = 'active'
		GROUP BY b.id`
	var book data.Book
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, isbn).Scan(
		&book.ID,
		&book.CreatedAt,
		&book.Title,
		&book.Isbn,
		&book.PublishYear,
		&book.CoverPath,
		&book.Version,
		pq.Array(&book.Authors),
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &book, nil
}

// GetAllBooks retrieves a paginated list of active books, optionally filtered
// by a case-insensitive substring match on the title or an author's name.
func (r *repository) GetAllBooks(search string, filters data.Filters) ([]*data.Book, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), b.id, b.created_at, b.title, b.isbn, b.publish_year, b.cover_path, b.version,
			coalesce(array_agg(p.first_name || ' ' || p.last_name) FILTER (WHERE p.id IS NOT NULL), '{}')
		FROM books b
		LEFT JOIN books_authors ba ON ba.book_id = b.id
		LEFT JOIN authors a ON a.id = ba.author_id AND a.status = 'active'
		LEFT JOIN persons p ON p.id = a.person_id
		WHERE b.status = 'active'
		AND ($1 = '' OR b.title ILIKE '%%' || $1 || '%%' OR EXISTS (
			SELECT 1
			FROM books_authors ba2
			INNER JOIN authors a2 ON a2.id = ba2.author_id
			INNER JOIN persons p2 ON p2.id = a2.person_id
			WHERE ba2.book_id = b.id AND (p2.first_name || ' ' || p2.last_name) ILIKE '%%' || $1 || '%%'
		))
		GROUP BY b.id
		ORDER BY %s %s, b.id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{search, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	books := []*data.Book{}
	for rows.Next() {
		var book data.Book
		err := rows.Scan(
			&totalRecords,
			&book.ID,
			&book.CreatedAt,
			&book.Title,
			&book.Isbn,
			&book.PublishYear,
			&book.CoverPath,
			&book.Version,
			pq.Array(&book.Authors),
		)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return books, metadata, nil
}

// GetAvailableBooks retrieves active books with no outstanding loan.
func (r *repository) GetAvailableBooks() ([]*data.BookSummary, error) {
	query := `
		SELECT b.id, b.title
		FROM books b
		WHERE b.status = 'active'
		AND NOT EXISTS (
			SELECT 1
			FROM borrowings br
			WHERE br.book_id = b.id AND br.return_date IS NULL
		)
		ORDER BY b.title ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.BookSummary{}
	for rows.Next() {
		var book data.BookSummary
		err := rows.Scan(&book.ID, &book.Title)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBooksByAuthor retrieves the active books associated with an author.
func (r *repository) GetBooksByAuthor(authorID int64) ([]*data.BookSummary, error) {
	if authorID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT b.id, b.title
		FROM books b
		INNER JOIN books_authors ba ON ba.book_id = b.id
		WHERE ba.author_id = $1 AND b.status = 'active'
		ORDER BY b.title ASC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	books := []*data.BookSummary{}
	for rows.Next() {
		var book data.BookSummary
		err := rows.Scan(&book.ID, &book.Title)
		if err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook updates a book record with optimistic locking on the version column.
func (r *repository) UpdateBook(book *data.Book) error {
	query := `
		UPDATE books
		SET title = $1, isbn = $2, publish_year = $3, cover_path = $4, version = version + 1
		WHERE id = $5 AND version = $6 AND status = 'active'
		RETURNING version`
	args := []interface{}{
		book.Title,
		book.Isbn,
		book.PublishYear,
		book.CoverPath,
		book.ID,
		book.Version,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&book.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		case err.Error() == `pq: duplicate key value violates unique constraint "books_isbn_key"`:
			return ErrDuplicateRecord
		default:
			return err
		}
	}
	return nil
}

// AddAuthorToBook associates an author with a book.
func (r *repository) AddAuthorToBook(bookID, authorID int64) error {
	query := `
		INSERT INTO books_authors (book_id, author_id)
		VALUES ($1, $2)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	_, err := r.db.ExecContext(ctx, query, bookID, authorID)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "books_authors_pkey"`:
			return ErrDuplicateRecord
		case err.Error() == `pq: insert or update on table "books_authors" violates foreign key constraint "books_authors_author_id_fkey"`:
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// DeactivateBook marks a book inactive. The ledger rows referencing it remain
// untouched; the guard clause refuses while a loan is still outstanding so a
// concurrent borrow can't slip past the service-level check.
func (r *repository) DeactivateBook(bookID int64) error {
	if bookID < 1 {
		return ErrRecordNotFound
	}
	query := `
		UPDATE books
		SET status = 'inactive'
		WHERE id = $1 AND status = 'active'
		AND NOT EXISTS (
			SELECT 1
			FROM borrowings br
			WHERE br.book_id = $1 AND br.return_date IS NULL
		)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, bookID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrEditConflict
	}
	return nil
}
