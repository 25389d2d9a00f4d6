package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/emzola/liber/data/dto"
	"github.com/emzola/liber/internal/validator"
	"github.com/emzola/liber/service"
)

func (h *Handler) createBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	var requestBody dto.CreateBorrowerRequestBody
	err := h.decodeJSON(w, r, &requestBody)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	borrower, err := h.service.CreateBorrower(requestBody.PersonID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrDuplicateRecord):
			h.conflictResponse(w, r, errors.New("this person already has a borrower profile"))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/v1/borrowers/%d", borrower.ID))
	err = h.encodeJSON(w, http.StatusCreated, envelope{"borrower": borrower}, headers)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) showBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "borrowerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	borrower, err := h.service.GetBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"borrower": borrower}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listBorrowersHandler(w http.ResponseWriter, r *http.Request) {
	var qsInput dto.QsListBorrowers
	v := validator.New()
	qs := r.URL.Query()
	qsInput.Search = h.readString(qs, "name", "")
	qsInput.Filters.Page = h.readInt(qs, "page", 1, v)
	qsInput.Filters.PageSize = h.readInt(qs, "page_size", 10, v)
	qsInput.Filters.Sort = h.readString(qs, "sort", "id")
	qsInput.Filters.SortSafeList = []string{"id", "first_name", "last_name", "-id", "-first_name", "-last_name"}
	borrowers, metadata, err := h.service.ListBorrowers(qsInput.Search, qsInput.Filters)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFailedValidation):
			h.failedValidationResponse(w, r, err)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"borrowers": borrowers, "metadata": metadata}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// CurrentLoans godoc
// @Summary List current loans
// @Description This endpoint lists the books currently on loan to a borrower
// @Tags borrowers
// @Produce json
// @Param borrowerId path int true "Borrower ID"
// @Success 200 {array} data.BookSummary
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/borrowers/{borrowerId}/loans [get]
func (h *Handler) listCurrentLoansHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "borrowerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	books, err := h.service.GetCurrentLoans(borrowerID)
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

// OverdueLoans godoc
// @Summary List overdue loans
// @Description This endpoint lists a borrower's overdue loans together with how many days each is overdue
// @Tags borrowers
// @Produce json
// @Param borrowerId path int true "Borrower ID"
// @Success 200 {array} data.OverdueLoan
// @Failure 403
// @Failure 404
// @Failure 500
// @Router /v1/borrowers/{borrowerId}/loans/overdue [get]
func (h *Handler) listOverdueLoansHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "borrowerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	loans, err := h.service.GetOverdueLoans(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"overdue_loans": loans}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) listBorrowingHistoryHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "borrowerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	history, err := h.service.GetBorrowingHistory(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"history": history}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

func (h *Handler) deleteBorrowerHandler(w http.ResponseWriter, r *http.Request) {
	borrowerID, err := h.readIDParam(r, "borrowerId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	err = h.service.DeleteBorrower(borrowerID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrProfileInUse):
			h.conflictResponse(w, r, errors.New("the borrower profile cannot be removed while loans are outstanding"))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "borrower successfully deleted"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
