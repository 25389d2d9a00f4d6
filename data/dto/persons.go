package dto

import "github.com/emzola/liber/data"

// CreatePersonRequestBody defines the request body for CreatePerson service.
type CreatePersonRequestBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdatePersonRequestBody defines the request body for UpdatePerson service.
// The fields are pointer types to allow partial updates.
type UpdatePersonRequestBody struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// QsListPersons defines the query strings used for listing persons.
type QsListPersons struct {
	Filters data.Filters
}
