package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/liber/data"
)

type authors interface {
	CreateAuthor(author *data.Author) error
	GetAuthor(authorID int64) (*data.Author, error)
	GetAllAuthors(filters data.Filters) ([]*data.Author, data.Metadata, error)
	UpdateAuthor(author *data.Author) error
	DeactivateAuthor(authorID int64) error
	GetAuthorStats(authorID int64) (*data.AuthorStats, error)
}

// CreateAuthor creates a new author profile for an existing person.
func (r *repository) CreateAuthor(author *data.Author) error {
	query := `
		INSERT INTO authors (person_id, biography)
		VALUES ($1, $2)
		RETURNING id, version`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, author.PersonID, author.Biography).Scan(&author.ID, &author.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "authors_person_id_key"`:
			return ErrDuplicateRecord
		case err.Error() == `pq: insert or update on table "authors" violates foreign key constraint "authors_person_id_fkey"`:
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// GetAuthor retrieves an active author profile by its ID, including the
// person's display name and the count of active books.
func (r *repository) GetAuthor(authorID int64) (*data.Author, error) {
	if authorID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT a.id, a.person_id, p.first_name || ' ' || p.last_name, a.biography, a.version,
			(SELECT count(*)
			 FROM books_authors ba
			 INNER JOIN books b ON b.id = ba.book_id
			 WHERE ba.author_id = a.id AND b.status = 'active')
		FROM authors a
		INNER JOIN persons p ON p.id = a.person_id
		WHERE a.id = $1 AND a.status = 'active'`
	var author data.Author
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&author.ID,
		&author.PersonID,
		&author.Name,
		&author.Biography,
		&author.Version,
		&author.BooksCount,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &author, nil
}

// GetAllAuthors retrieves a paginated list of active author profiles.
func (r *repository) GetAllAuthors(filters data.Filters) ([]*data.Author, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), a.id, a.person_id, p.first_name || ' ' || p.last_name, a.biography, a.version
		FROM authors a
		INNER JOIN persons p ON p.id = a.person_id
		WHERE a.status = 'active'
		ORDER BY %s %s, a.id ASC
		LIMIT $1 OFFSET $2`,
		filters.SortColumn(), filters.SortDirection(),
	)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	authors := []*data.Author{}
	for rows.Next() {
		var author data.Author
		err := rows.Scan(&totalRecords, &author.ID, &author.PersonID, &author.Name, &author.Biography, &author.Version)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		authors = append(authors, &author)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return authors, metadata, nil
}

// UpdateAuthor updates an author profile with optimistic locking on the version column.
func (r *repository) UpdateAuthor(author *data.Author) error {
	query := `
		UPDATE authors
		SET biography = $1, version = version + 1
		WHERE id = $2 AND version = $3 AND status = 'active'
		RETURNING version`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, author.Biography, author.ID, author.Version).Scan(&author.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeactivateAuthor marks an author profile inactive.
func (r *repository) DeactivateAuthor(authorID int64) error {
	if authorID < 1 {
		return ErrRecordNotFound
	}
	query := `
		UPDATE authors
		SET status = 'inactive'
		WHERE id = $1 AND status = 'active'`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, authorID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// GetAuthorStats aggregates lending history over all of an author's active
// books: total books, total ledger rows across those books (returned loans
// included), and the title of the most-borrowed book. The most-borrowed title
// is NULL when the author has no books or none of them was ever borrowed;
// ties resolve to the lowest book id, which is first-encountered order.
func (r *repository) GetAuthorStats(authorID int64) (*data.AuthorStats, error) {
	if authorID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT a.id, p.first_name || ' ' || p.last_name,
			(SELECT count(*)
			 FROM books_authors ba
			 INNER JOIN books b ON b.id = ba.book_id
			 WHERE ba.author_id = a.id AND b.status = 'active'),
			(SELECT count(*)
			 FROM borrowings br
			 INNER JOIN books_authors ba ON ba.book_id = br.book_id
			 INNER JOIN books b ON b.id = ba.book_id
			 WHERE ba.author_id = a.id AND b.status = 'active'),
			(SELECT b.title
			 FROM books b
			 INNER JOIN books_authors ba ON ba.book_id = b.id
			 INNER JOIN borrowings br ON br.book_id = b.id
			 WHERE ba.author_id = a.id AND b.status = 'active'
			 GROUP BY b.id, b.title
			 ORDER BY count(br.id) DESC, b.id ASC
			 LIMIT 1)
		FROM authors a
		INNER JOIN persons p ON p.id = a.person_id
		WHERE a.id = $1 AND a.status = 'active'`
	var stats data.AuthorStats
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, authorID).Scan(
		&stats.ID,
		&stats.Name,
		&stats.TotalBooksWritten,
		&stats.TotalTimesBorrowed,
		&stats.MostPopularBookTitle,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &stats, nil
}
