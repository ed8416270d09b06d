package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/borrowing"
	"library-backend/internal/shared/response"
)

type BorrowingHandler struct {
	service borrowing.Service
}

func NewBorrowingHandler(svc borrowing.Service) *BorrowingHandler {
	return &BorrowingHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: ListBorrowings - GET /api/borrowings
// ════════════════════════════════════════════════════════════════

func (h *BorrowingHandler) ListBorrowings(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.List(c, http.StatusOK, records, len(records))
}

// ════════════════════════════════════════════════════════════════
// CREATE: BorrowBook - POST /api/borrowings
// ════════════════════════════════════════════════════════════════

func (h *BorrowingHandler) BorrowBook(c *gin.Context) {
	var req borrowing.BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	rec, err := h.service.Borrow(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, borrowing.ToHTTPStatus(err), err.Error())
		return
	}

	response.DataWithMessage(c, http.StatusCreated, "Book borrowed successfully", rec)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: ReturnBook - PUT /api/borrowings/:id/return
// ════════════════════════════════════════════════════════════════

func (h *BorrowingHandler) ReturnBook(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid borrowing id")
		return
	}

	rec, err := h.service.Return(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, borrowing.ToHTTPStatus(err), err.Error())
		return
	}

	response.DataWithMessage(c, http.StatusOK, "Book returned successfully", rec)
}

// ════════════════════════════════════════════════════════════════
// READ: OverdueBorrowings - GET /api/borrowings/overdue
// ════════════════════════════════════════════════════════════════

func (h *BorrowingHandler) OverdueBorrowings(c *gin.Context) {
	records, err := h.service.Overdue(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.List(c, http.StatusOK, records, len(records))
}
