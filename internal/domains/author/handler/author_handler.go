package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/author"
	"library-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: ListAuthors - GET /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.List(c, http.StatusOK, authors, len(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GetAuthor - GET /api/authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.Data(c, http.StatusOK, a)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, author.ToHTTPStatus(err), err.Error())
		return
	}

	response.DataWithMessage(c, http.StatusCreated, "Author created successfully", a)
}

// ════════════════════════════════════════════════════════════════
// READ: AuthorBooks - GET /api/authors/:id/books
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) AuthorBooks(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid author id")
		return
	}

	books, err := h.service.Books(c.Request.Context(), id)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.List(c, http.StatusOK, books, len(books))
}
