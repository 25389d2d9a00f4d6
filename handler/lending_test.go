package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emzola/liber/config"
	"github.com/emzola/liber/data"
	"github.com/emzola/liber/internal/jsonlog"
	"github.com/emzola/liber/service"
	"github.com/julienschmidt/httprouter"
)

// mockService stubs the service layer with function fields. Calling an
// unstubbed method panics via the embedded nil interface.
type mockService struct {
	service.Service
	borrowBookFn func(bookID, userID int64) (*data.LoanReceipt, error)
	returnBookFn func(bookID, userID int64) error
}

func (m *mockService) BorrowBook(bookID int64, userID int64) (*data.LoanReceipt, error) {
	return m.borrowBookFn(bookID, userID)
}

func (m *mockService) ReturnBook(bookID int64, userID int64) error {
	return m.returnBookFn(bookID, userID)
}

func newTestHandler(t *testing.T, svc service.Service) *Handler {
	t.Helper()
	cfg := config.Config{}
	cfg.Server.Env = "testing"
	logger := jsonlog.New(io.Discard, jsonlog.LevelOff)
	return New(cfg, logger, nil, svc)
}

// newLoanRequest builds a request carrying the route parameter and the
// authenticated user the way the router and middleware chain would.
func newLoanRequest(t *testing.T, h *Handler, method string, bookID string, user *data.User) *http.Request {
	t.Helper()
	r := httptest.NewRequest(method, "/v1/books/"+bookID+"/loan", nil)
	params := httprouter.Params{{Key: "bookId", Value: bookID}}
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	r = r.WithContext(ctx)
	return h.contextSetUser(r, user)
}

func TestBorrowBookHandler(t *testing.T) {
	user := &data.User{ID: 3, Activated: true}
	receipt := &data.LoanReceipt{
		ID:           77,
		BookTitle:    "The Go Programming Language",
		BorrowerName: "Alan Donovan",
		BorrowDate:   data.MustParseDate("2024-03-10"),
		DueDate:      data.MustParseDate("2024-03-24"),
	}
	tests := []struct {
		name       string
		bookID     string
		borrowErr  error
		wantStatus int
	}{
		{name: "created", bookID: "1", wantStatus: http.StatusCreated},
		{name: "invalid book id", bookID: "abc", wantStatus: http.StatusNotFound},
		{name: "unknown book", bookID: "1", borrowErr: service.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "book already loaned", bookID: "1", borrowErr: service.ErrBookAlreadyLoaned, wantStatus: http.StatusConflict},
		{name: "overdue loans", bookID: "1", borrowErr: service.ErrOverdueLoans, wantStatus: http.StatusBadRequest},
		{name: "loan limit reached", bookID: "1", borrowErr: service.ErrLoanLimitReached, wantStatus: http.StatusBadRequest},
		{name: "no borrower profile", bookID: "1", borrowErr: service.ErrRecordNotFound, wantStatus: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				borrowBookFn: func(bookID, userID int64) (*data.LoanReceipt, error) {
					if tt.borrowErr != nil {
						return nil, tt.borrowErr
					}
					return receipt, nil
				},
			}
			h := newTestHandler(t, svc)
			w := httptest.NewRecorder()
			r := newLoanRequest(t, h, http.MethodPost, tt.bookID, user)
			h.borrowBookHandler(w, r)
			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusCreated {
				return
			}
			var got struct {
				Loan data.LoanReceipt `json:"loan"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if got.Loan.ID != receipt.ID {
				t.Errorf("got loan id %d, want %d", got.Loan.ID, receipt.ID)
			}
			if got.Loan.DueDate.String() != "2024-03-24" {
				t.Errorf("got due date %s, want 2024-03-24", got.Loan.DueDate)
			}
		})
	}
}

func TestReturnBookHandler(t *testing.T) {
	user := &data.User{ID: 3, Activated: true}
	tests := []struct {
		name       string
		returnErr  error
		wantStatus int
	}{
		{name: "returned", wantStatus: http.StatusOK},
		{name: "unknown book", returnErr: service.ErrRecordNotFound, wantStatus: http.StatusNotFound},
		{name: "no active loan", returnErr: service.ErrNoActiveLoan, wantStatus: http.StatusBadRequest},
		{name: "repository failure", returnErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{
				returnBookFn: func(bookID, userID int64) error {
					return tt.returnErr
				},
			}
			h := newTestHandler(t, svc)
			w := httptest.NewRecorder()
			r := newLoanRequest(t, h, http.MethodDelete, "1", user)
			h.returnBookHandler(w, r)
			if w.Code != tt.wantStatus {
				t.Fatalf("got status %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestHealthcheckHandler(t *testing.T) {
	h := newTestHandler(t, nil)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	h.healthcheckHandler(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, want %d", w.Code, http.StatusOK)
	}
	var got struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if got.Status != "available" {
		t.Errorf("got status %q, want %q", got.Status, "available")
	}
	if got.SystemInfo["environment"] != "testing" {
		t.Errorf("got environment %q, want %q", got.SystemInfo["environment"], "testing")
	}
}
