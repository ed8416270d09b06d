package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	bookRepository "library-backend/internal/domains/book/repository"
	"library-backend/internal/domains/borrowing"
	"library-backend/internal/domains/borrowing/repository"
	"library-backend/internal/domains/borrowing/service"
	"library-backend/internal/infrastructure/filestore"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	books, err := filestore.Open[book.Book](filepath.Join(dir, "books.json"))
	require.NoError(t, err)
	borrowings, err := filestore.Open[borrowing.Borrowing](filepath.Join(dir, "borrowings.json"))
	require.NoError(t, err)

	// Seed one book with a single copy.
	_, err = bookRepository.NewBookRepository(books).Insert(context.Background(), book.Book{
		Title: "Dune", AuthorID: 1, ISBN: "001",
		Genre: book.DefaultGenre, CopiesAvailable: 1, TotalCopies: 1,
		CreatedAt: "2026-01-01 00:00:00",
	})
	require.NoError(t, err)

	svc := service.NewBorrowingService(
		repository.NewBorrowingRepository(books, borrowings),
		borrowing.DefaultLoanPeriodDays,
	)
	h := NewBorrowingHandler(svc)

	router := gin.New()
	group := router.Group("/api/borrowings")
	{
		group.GET("", h.ListBorrowings)
		group.GET("/overdue", h.OverdueBorrowings)
		group.POST("", h.BorrowBook)
		group.PUT("/:id/return", h.ReturnBook)
	}
	return router
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestBorrowAndReturn_HTTP(t *testing.T) {
	router := newTestRouter(t)

	code, env := doRequest(t, router, http.MethodPost, "/api/borrowings",
		`{"book_id": 1, "borrower_name": "Paul Atreides"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.True(t, env.Success)
	assert.Equal(t, "Book borrowed successfully", env.Message)

	var rec borrowing.Borrowing
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, borrowing.StatusBorrowed, rec.Status)

	code, env = doRequest(t, router, http.MethodPut, "/api/borrowings/1/return", "")
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, borrowing.StatusReturned, rec.Status)

	// Second return fails with 400 and the conflict message.
	code, env = doRequest(t, router, http.MethodPut, "/api/borrowings/1/return", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "book already returned", env.Message)
}

func TestBorrow_NoCopies_HTTP(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/borrowings",
		`{"book_id": 1, "borrower_name": "Paul Atreides"}`)

	code, env := doRequest(t, router, http.MethodPost, "/api/borrowings",
		`{"book_id": 1, "borrower_name": "Duncan Idaho"}`)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Success)
	assert.Equal(t, "no copies available for borrowing", env.Message)
}

func TestBorrow_UnknownBook_HTTP(t *testing.T) {
	router := newTestRouter(t)

	code, env := doRequest(t, router, http.MethodPost, "/api/borrowings",
		`{"book_id": 5, "borrower_name": "Paul Atreides"}`)

	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)
	assert.Equal(t, "book not found", env.Message)
}

func TestListBorrowings_CountInEnvelope(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/borrowings",
		`{"book_id": 1, "borrower_name": "Paul Atreides"}`)

	code, env := doRequest(t, router, http.MethodGet, "/api/borrowings", "")

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)
}

func TestOverdue_EmptyForFreshLoans_HTTP(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/borrowings",
		`{"book_id": 1, "borrower_name": "Paul Atreides"}`)

	code, env := doRequest(t, router, http.MethodGet, "/api/borrowings/overdue", "")

	assert.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}
