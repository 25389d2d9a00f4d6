package dto

import "github.com/emzola/liber/data"

// CreateAuthorRequestBody defines the request body for CreateAuthor service.
type CreateAuthorRequestBody struct {
	PersonID  int64  `json:"person_id"`
	Biography string `json:"biography"`
}

// UpdateAuthorRequestBody defines the request body for UpdateAuthor service.
type UpdateAuthorRequestBody struct {
	Biography *string `json:"biography"`
}

// QsListAuthors defines the query strings used for listing authors.
type QsListAuthors struct {
	Filters data.Filters
}
