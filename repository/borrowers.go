package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/liber/data"
)

type borrowers interface {
	CreateBorrower(borrower *data.Borrower) error
	GetBorrower(borrowerID int64) (*data.Borrower, error)
	GetBorrowerByUserID(userID int64) (*data.Borrower, error)
	GetAllBorrowers(name string, filters data.Filters) ([]*data.Borrower, data.Metadata, error)
	DeactivateBorrower(borrowerID int64) error
}

// CreateBorrower creates a new borrower profile for an existing person.
func (r *repository) CreateBorrower(borrower *data.Borrower) error {
	query := `
		INSERT INTO borrowers (person_id)
		VALUES ($1)
		RETURNING id, version`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, borrower.PersonID).Scan(&borrower.ID, &borrower.Version)
	if err != nil {
		switch {
		case err.Error() == `pq: duplicate key value violates unique constraint "borrowers_person_id_key"`:
			return ErrDuplicateRecord
		case err.Error() == `pq: insert or update on table "borrowers" violates foreign key constraint "borrowers_person_id_fkey"`:
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// GetBorrower retrieves an active borrower profile by its ID, including the
// person's display name and the count of outstanding loans.
func (r *repository) GetBorrower(borrowerID int64) (*data.Borrower, error) {
	if borrowerID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT b.id, b.person_id, p.first_name || ' ' || p.last_name, b.version,
			(SELECT count(*)
			 FROM borrowings br
			 WHERE br.borrower_id = b.id AND br.return_date IS NULL)
		FROM borrowers b
		INNER JOIN persons p ON p.id = b.person_id
		WHERE b.id = $1 AND b.status = 'active'`
	var borrower data.Borrower
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, borrowerID).Scan(
		&borrower.ID,
		&borrower.PersonID,
		&borrower.Name,
		&borrower.Version,
		&borrower.CurrentLoansCount,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &borrower, nil
}

// GetBorrowerByUserID resolves a user account to its borrower profile via the
// person record the account is linked to.
func (r *repository) GetBorrowerByUserID(userID int64) (*data.Borrower, error) {
	if userID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT b.id, b.person_id, p.first_name || ' ' || p.last_name, b.version,
			(SELECT count(*)
			 FROM borrowings br
			 WHERE br.borrower_id = b.id AND br.return_date IS NULL)
		FROM borrowers b
		INNER JOIN persons p ON p.id = b.person_id
		INNER JOIN users u ON u.person_id = p.id
		WHERE u.id = $1 AND b.status = 'active'`
	var borrower data.Borrower
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&borrower.ID,
		&borrower.PersonID,
		&borrower.Name,
		&borrower.Version,
		&borrower.CurrentLoansCount,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &borrower, nil
}

// GetAllBorrowers retrieves a paginated list of active borrower profiles,
// optionally filtered by a case-insensitive substring match on the person's name.
func (r *repository) GetAllBorrowers(name string, filters data.Filters) ([]*data.Borrower, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), b.id, b.person_id, p.first_name || ' ' || p.last_name, b.version
		FROM borrowers b
		INNER JOIN persons p ON p.id = b.person_id
		WHERE b.status = 'active'
		AND ($1 = '' OR (p.first_name || ' ' || p.last_name) ILIKE '%%' || $1 || '%%')
		ORDER BY %s %s, b.id ASC
		LIMIT $2 OFFSET $3`,
		filters.SortColumn(), filters.SortDirection(),
	)
	args := []interface{}{name, filters.Limit(), filters.Offset()}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, data.Metadata{}, err
	}
	defer rows.Close()
	totalRecords := 0
	borrowers := []*data.Borrower{}
	for rows.Next() {
		var borrower data.Borrower
		err := rows.Scan(&totalRecords, &borrower.ID, &borrower.PersonID, &borrower.Name, &borrower.Version)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		borrowers = append(borrowers, &borrower)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return borrowers, metadata, nil
}

// DeactivateBorrower marks a borrower profile inactive. The guard clause
// refuses while the borrower still has a loan outstanding.
func (r *repository) DeactivateBorrower(borrowerID int64) error {
	if borrowerID < 1 {
		return ErrRecordNotFound
	}
	query := `
		UPDATE borrowers
		SET status = 'inactive'
		WHERE id = $1 AND status = 'active'
		AND NOT EXISTS (
			SELECT 1
			FROM borrowings br
			WHERE br.borrower_id = $1 AND br.return_date IS NULL
		)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, borrowerID)
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
