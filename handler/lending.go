package handler

import (
	"errors"
	"net/http"

	"github.com/emzola/liber/service"
)

// BorrowBook godoc
// @Summary Borrow a book
// @Description This endpoint lends a book to the authenticated user's borrower profile
// @Tags lending
// @Produce json
// @Param bookId path int true "Book ID"
// @Success 201 {object} data.LoanReceipt
// @Failure 400
// @Failure 404
// @Failure 409
// @Failure 500
// @Router /v1/books/{bookId}/loan [post]
func (h *Handler) borrowBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	receipt, err := h.service.BorrowBook(bookID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrBookAlreadyLoaned):
			h.conflictResponse(w, r, errors.New("the book is already on loan"))
		case errors.Is(err, service.ErrOverdueLoans):
			h.badRequestResponse(w, r, errors.New("you cannot borrow a book while you have overdue loans"))
		case errors.Is(err, service.ErrLoanLimitReached):
			h.badRequestResponse(w, r, errors.New("you have reached the maximum number of loans"))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusCreated, envelope{"loan": receipt}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}

// ReturnBook godoc
// @Summary Return a book
// @Description This endpoint returns a book currently on loan to the authenticated user's borrower profile
// @Tags lending
// @Produce json
// @Param bookId path int true "Book ID"
// @Success 200
// @Failure 400
// @Failure 404
// @Failure 500
// @Router /v1/books/{bookId}/loan [delete]
func (h *Handler) returnBookHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := h.readIDParam(r, "bookId")
	if err != nil {
		h.notFoundResponse(w, r)
		return
	}
	user := h.contextGetUser(r)
	err = h.service.ReturnBook(bookID, user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRecordNotFound):
			h.notFoundResponse(w, r)
		case errors.Is(err, service.ErrNoActiveLoan):
			h.badRequestResponse(w, r, errors.New("you do not have an active loan for this book"))
		default:
			h.serverErrorResponse(w, r, err)
		}
		return
	}
	err = h.encodeJSON(w, http.StatusOK, envelope{"message": "book successfully returned"}, nil)
	if err != nil {
		h.serverErrorResponse(w, r, err)
	}
}
