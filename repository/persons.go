package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/emzola/liber/data"
)

type persons interface {
	CreatePerson(person *data.Person) error
	GetPerson(personID int64) (*data.Person, error)
	GetAllPersons(filters data.Filters) ([]*data.Person, data.Metadata, error)
	UpdatePerson(person *data.Person) error
	DeactivatePerson(personID int64) error
	PersonHasProfiles(personID int64) (bool, error)
}

// CreatePerson creates a new person record.
func (r *repository) CreatePerson(person *data.Person) error {
	query := `
		INSERT INTO persons (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id, version`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, person.FirstName, person.LastName).Scan(&person.ID, &person.Version)
}

// GetPerson retrieves an active person record by its ID.
func (r *repository) GetPerson(personID int64) (*data.Person, error) {
	if personID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, first_name, last_name, version
		FROM persons
		WHERE id = $1 AND status = 'active'`
	var person data.Person
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, personID).Scan(
		&person.ID,
		&person.FirstName,
		&person.LastName,
		&person.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &person, nil
}

// GetAllPersons retrieves a paginated list of active person records.
func (r *repository) GetAllPersons(filters data.Filters) ([]*data.Person, data.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), id, first_name, last_name, version
		FROM persons
		WHERE status = 'active'
		ORDER BY %s %s, id ASC
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
	people := []*data.Person{}
	for rows.Next() {
		var person data.Person
		err := rows.Scan(&totalRecords, &person.ID, &person.FirstName, &person.LastName, &person.Version)
		if err != nil {
			return nil, data.Metadata{}, err
		}
		people = append(people, &person)
	}
	if err = rows.Err(); err != nil {
		return nil, data.Metadata{}, err
	}
	metadata := data.CalculateMetadata(totalRecords, filters.Page, filters.PageSize)
	return people, metadata, nil
}

// UpdatePerson updates a person record with optimistic locking on the version column.
func (r *repository) UpdatePerson(person *data.Person) error {
	query := `
		UPDATE persons
		SET first_name = $1, last_name = $2, version = version + 1
		WHERE id = $3 AND version = $4 AND status = 'active'
		RETURNING version`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, person.FirstName, person.LastName, person.ID, person.Version).Scan(&person.Version)
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

// DeactivatePerson marks a person record inactive.
func (r *repository) DeactivatePerson(personID int64) error {
	if personID < 1 {
		return ErrRecordNotFound
	}
	query := `
		UPDATE persons
		SET status = 'inactive'
		WHERE id = $1 AND status = 'active'`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, personID)
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

// PersonHasProfiles reports whether an active author or borrower profile
// still references the person.
func (r *repository) PersonHasProfiles(personID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM authors WHERE person_id = $1 AND status = 'active'
			UNION ALL
			SELECT 1 FROM borrowers WHERE person_id = $1 AND status = 'active'
		)`
	var exists bool
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, personID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
