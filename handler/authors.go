package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/liber/data/dto"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/service"
)

func (h *Handler) createAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateAuthorRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	author, err := h.service.CreateAuthor(requestBody.PersonID, requestBody.Biography)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.conflictResponse(w, r, errors.New("this person already has an author profile"))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/authors/%d", author.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"author": author}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "authorId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	author, err := h.service.GetAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"author": author}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListAuthors
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "first_name", "last_name", "-id", "-first_name", "-last_name"}
	authors, metadata, err := h.service.ListAuthors(qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"authors": authors, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listBooksByAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "authorId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	books, err := h.service.ListBooksByAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"books": books}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// AuthorStatistics godoc
// @Summary Show author statistics
// @Description This endpoint shows the lending statistics for an author's books
// @Tags authors
// @Produce json
// @Param authorId path int true "Author ID"
// @Success 200 {object} data.AuthorStats
// @Failure 404
// @Failure 500
// @Router /v1/authors/{authorId}/statistics [get]
func (h *Handler) showAuthorStatisticsHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "authorId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	stats, err := h.service.GetAuthorStatistics(authorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"statistics": stats}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdateAuthorRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	authorID, err := h.readIDParam(r, "authorId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	author, err := h.service.UpdateAuthor(authorID, requestBody.Biography)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrEditConflict):
			h.editConflictResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"author": author}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteAuthorHandler(w http.ResponseWriter, r *http.Request) {
	authorID, err := h.readIDParam(r, "authorId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteAuthor(authorID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "author successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
