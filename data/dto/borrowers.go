package dto

import "github.com/emzola/liber/data"

// CreateBorrowerRequestBody defines the request body for CreateBorrower service.
type CreateBorrowerRequestBody struct {
	PersonID int64 `json:"person_id"`
}

// QsListBorrowers defines the query strings used for listing borrowers.
type QsListBorrowers struct {
	Search  string
	Filters data.Filters
}
