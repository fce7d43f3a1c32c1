package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/internal/shared/middleware"
	"shbudget-backend/internal/shared/response"
)

type BookHandler struct {
	books   book.Service
	members book.MemberService
}

func NewBookHandler(books book.Service, members book.MemberService) *BookHandler {
	return &BookHandler{books: books, members: members}
}

// GetMyBook handles GET /api/books/my
func (h *BookHandler) GetMyBook(c *gin.Context) {
	memberID := middleware.MemberID(c)

	b, err := h.books.GetMyBook(c.Request.Context(), memberID)
	if err != nil {
		writeBookError(c, err)
		return
	}

	response.Success(c, "Book retrieved successfully", b.ToResponse())
}

// Update handles PUT /api/books/:id
func (h *BookHandler) Update(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	var req book.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.books.UpdateName(c.Request.Context(), bookID, middleware.MemberID(c), req.Name)
	if err != nil {
		writeBookError(c, err)
		return
	}

	response.Success(c, "Book updated successfully", updated.ToResponse())
}

// RegenerateInviteCode handles POST /api/books/:id/invite-code
func (h *BookHandler) RegenerateInviteCode(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	updated, err := h.books.RegenerateInviteCode(c.Request.Context(), bookID, middleware.MemberID(c))
	if err != nil {
		writeBookError(c, err)
		return
	}

	response.Success(c, "Invite code regenerated successfully", updated.ToResponse())
}

// Delete handles DELETE /api/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	if err := h.books.Delete(c.Request.Context(), bookID, middleware.MemberID(c)); err != nil {
		writeBookError(c, err)
		return
	}

	response.Success(c, "Book deleted successfully", nil)
}

// Join handles POST /api/books/join
func (h *BookHandler) Join(c *gin.Context) {
	var req book.JoinBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	bm, err := h.members.Join(c.Request.Context(), middleware.MemberID(c), &req)
	if err != nil {
		writeBookError(c, err)
		return
	}

	response.Created(c, "Joined book successfully", bm.ToResponse())
}

// ListMembers handles GET /api/books/:id/members
func (h *BookHandler) ListMembers(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	members, err := h.members.ListMembers(c.Request.Context(), bookID, middleware.MemberID(c))
	if err != nil {
		writeBookError(c, err)
		return
	}

	resp := make([]book.BookMemberResponse, 0, len(members))
	for i := range members {
		resp = append(resp, members[i].ToResponse())
	}

	response.Success(c, "Book members retrieved successfully", resp)
}

// RemoveMember handles DELETE /api/books/:id/members/:memberId
func (h *BookHandler) RemoveMember(c *gin.Context) {
	bookID, ok := bookIDParam(c)
	if !ok {
		return
	}

	targetID, err := strconv.ParseInt(c.Param("memberId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid member id")
		return
	}

	if err := h.members.LeaveOrRemove(c.Request.Context(), bookID, middleware.MemberID(c), targetID); err != nil {
		writeBookError(c, err)
		return
	}

	response.Success(c, "Member removed successfully", nil)
}

func bookIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book id")
		return 0, false
	}
	return id, true
}

// writeBookError also maps member-domain errors because the join workflow
// verifies the member record exists first.
func writeBookError(c *gin.Context, err error) {
	status := book.ToHTTPStatus(err)
	if status == 500 {
		status = member.ToHTTPStatus(err)
	}
	if status == 500 {
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
