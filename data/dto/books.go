package dto

import "github.com/emzola/liber/data"

// CreateBookRequestBody defines the request body for CreateBook service.
type CreateBookRequestBody struct {
	Title       string  `json:"title"`
	Isbn        string  `json:"isbn"`
	PublishYear int32   `json:"publish_year"`
	AuthorIDs   []int64 `json:"author_ids"`
}

// UpdateBookRequestBody defines the request body for UpdateBook service. The fields are set
// to a pointer type to allow partial updates based on whether the value is set to nil.
type UpdateBookRequestBody struct {
	Title       *string `json:"title"`
	Isbn        *string `json:"isbn"`
	PublishYear *int32  `json:"publish_year"`
}

// QsListBooks defines the query strings used for listing and searching books.
type QsListBooks struct {
	Search  string
	Filters data.Filters
}
