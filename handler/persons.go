package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/liber/data/dto"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/service"
)

func (h *Handler) createPersonHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreatePersonRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	person, err := h.service.CreatePerson(requestBody.FirstName, requestBody.LastName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/persons/%d", person.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"person": person}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showPersonHandler(w http.ResponseWriter, r *http.Request) {
	personID, err := h.readIDParam(r, "personId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	person, err := h.service.GetPerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"person": person}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listPersonsHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListPersons
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "first_name", "last_name", "-id", "-first_name", "-last_name"}
	persons, metadata, err := h.service.ListPersons(qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"persons": persons, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) updatePersonHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.UpdatePersonRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	personID, err := h.readIDParam(r, "personId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	person, err := h.service.UpdatePerson(personID, requestBody.FirstName, requestBody.LastName)
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
	err = h.encodeJSON(w, http.StatusOK, envelope{"person": person}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deletePersonHandler(w http.ResponseWriter, r *http.Request) {
	personID, err := h.readIDParam(r, "personId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeletePerson(personID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrProfileInUse):
			h.conflictResponse(w, r, errors.New("the person cannot be removed while author or borrower profiles reference them"))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "person successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
