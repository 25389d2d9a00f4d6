package handler

import (
	"expvar"
	"net/http"

	"github.com/julienschmidt/httprouter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func (h *Handler) Routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(h.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(h.methodNotAllowed)

	router.HandlerFunc(http.MethodGet, "/v1/books", h.requireActivatedUser(h.listBooksHandler))
	router.HandlerFunc(http.MethodPost, "/v1/books", h.requireActivatedUser(h.createBookHandler))
	router.HandlerFunc(http.MethodGet, "/v1/books/:bookId", h.requireActivatedUser(h.showBookHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId", h.requireActivatedUser(h.updateBookHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/books/:bookId", h.requireActivatedUser(h.deleteBookHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/books/:bookId/cover", h.requireActivatedUser(h.updateBookCoverHandler))
	router.HandlerFunc(http.MethodPost, "/v1/books/:bookId/authors/:authorId", h.requireActivatedUser(h.addAuthorToBookHandler))

	router.HandlerFunc(http.MethodPost, "/v1/books/:bookId/loan", h.requireActivatedUser(h.borrowBookHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/books/:bookId/loan", h.requireActivatedUser(h.returnBookHandler))

	router.HandlerFunc(http.MethodGet, "/v1/catalog/available", h.requireActivatedUser(h.listAvailableBooksHandler))
	router.HandlerFunc(http.MethodGet, "/v1/catalog/isbn/:isbn", h.requireActivatedUser(h.showBookByIsbnHandler))

	router.HandlerFunc(http.MethodGet, "/v1/authors", h.requireActivatedUser(h.listAuthorsHandler))
	router.HandlerFunc(http.MethodPost, "/v1/authors", h.requireActivatedUser(h.createAuthorHandler))
	router.HandlerFunc(http.MethodGet, "/v1/authors/:authorId", h.requireActivatedUser(h.showAuthorHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/authors/:authorId", h.requireActivatedUser(h.updateAuthorHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/authors/:authorId", h.requireActivatedUser(h.deleteAuthorHandler))
	router.HandlerFunc(http.MethodGet, "/v1/authors/:authorId/books", h.requireActivatedUser(h.listBooksByAuthorHandler))
	router.HandlerFunc(http.MethodGet, "/v1/authors/:authorId/statistics", h.requireActivatedUser(h.showAuthorStatisticsHandler))

	router.HandlerFunc(http.MethodGet, "/v1/borrowers", h.requireActivatedUser(h.listBorrowersHandler))
	router.HandlerFunc(http.MethodPost, "/v1/borrowers", h.requireActivatedUser(h.createBorrowerHandler))
	router.HandlerFunc(http.MethodGet, "/v1/borrowers/:borrowerId", h.requireActivatedUser(h.showBorrowerHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/borrowers/:borrowerId", h.requireActivatedUser(h.deleteBorrowerHandler))
	router.HandlerFunc(http.MethodGet, "/v1/borrowers/:borrowerId/loans", h.requireBorrowerPermission(h.listCurrentLoansHandler))
	router.HandlerFunc(http.MethodGet, "/v1/borrowers/:borrowerId/loans/overdue", h.requireBorrowerPermission(h.listOverdueLoansHandler))
	router.HandlerFunc(http.MethodGet, "/v1/borrowers/:borrowerId/loans/history", h.requireBorrowerPermission(h.listBorrowingHistoryHandler))

	router.HandlerFunc(http.MethodGet, "/v1/persons", h.requireActivatedUser(h.listPersonsHandler))
	router.HandlerFunc(http.MethodPost, "/v1/persons", h.requireActivatedUser(h.createPersonHandler))
	router.HandlerFunc(http.MethodGet, "/v1/persons/:personId", h.requireActivatedUser(h.showPersonHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/persons/:personId", h.requireActivatedUser(h.updatePersonHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/persons/:personId", h.requireActivatedUser(h.deletePersonHandler))

	router.HandlerFunc(http.MethodPost, "/v1/users", h.registerUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/activated", h.activateUserHandler)
	router.HandlerFunc(http.MethodPut, "/v1/users/password", h.resetUserPasswordHandler)

	router.HandlerFunc(http.MethodGet, "/v1/users/profile", h.requireActivatedUser(h.showUserHandler))
	router.HandlerFunc(http.MethodPatch, "/v1/users/profile", h.requireActivatedUser(h.updateUserHandler))
	router.HandlerFunc(http.MethodPut, "/v1/users/profile", h.requireActivatedUser(h.updateUserPasswordHandler))
	router.HandlerFunc(http.MethodDelete, "/v1/users/profile", h.requireActivatedUser(h.deleteUserHandler))

	router.HandlerFunc(http.MethodPost, "/v1/tokens/activation", h.createActivationTokenHandler)
	router.HandlerFunc(http.MethodPost, "/v1/tokens/authentication", h.createAuthenticationTokenHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/tokens/authentication", h.requireAuthenticatedUser(h.deleteAuthenticationTokenHandler))
	router.HandlerFunc(http.MethodPost, "/v1/tokens/password-reset", h.createPasswordResetTokenHandler)

	router.HandlerFunc(http.MethodGet, "/debug/vars", h.basicAuth(expvar.Handler().ServeHTTP))
	router.HandlerFunc(http.MethodGet, "/v1/healthcheck", h.healthcheckHandler)

	// Swagger routes
	router.HandlerFunc(http.MethodGet, "/spec", h.handleSwaggerFile())
	router.HandlerFunc(http.MethodGet, "/docs/*any", httpSwagger.Handler(httpSwagger.URL("/spec")))

	return h.recoverPanic(h.metrics(h.enableCORS(h.rateLimit(h.requestID(h.authenticate(router))))))
}
