package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: ListBooks - GET /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.List(c, http.StatusOK, books, len(books))
}

// ════════════════════════════════════════════════════════════════
// READ: GetBook - GET /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) GetBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.Data(c, http.StatusOK, b)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /api/books
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) CreateBook(c *gin.Context) {
	var req book.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.DataWithMessage(c, http.StatusCreated, "Book created successfully", b)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.Fail(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.DataWithMessage(c, http.StatusOK, "Book updated successfully", b)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /api/books/:id
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return
	}

	b, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, book.ToHTTPStatus(err), err.Error())
		return
	}

	response.DataWithMessage(c, http.StatusOK, "Book deleted successfully", b)
}

// ════════════════════════════════════════════════════════════════
// READ: SearchBooks - GET /api/books/search?q=&genre=
// ════════════════════════════════════════════════════════════════

func (h *BookHandler) SearchBooks(c *gin.Context) {
	var filter book.SearchFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	books, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.List(c, http.StatusOK, books, len(books))
}
