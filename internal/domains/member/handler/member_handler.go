package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shbudget-backend/internal/domains/member"
	"shbudget-backend/internal/shared/response"
)

type MemberHandler struct {
	service member.Service
}

func NewMemberHandler(svc member.Service) *MemberHandler {
	return &MemberHandler{service: svc}
}

// Register handles POST /api/members
func (h *MemberHandler) Register(c *gin.Context) {
	var req member.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		writeMemberError(c, err)
		return
	}

	response.Created(c, "Member registered successfully", created.ToResponse())
}

// GetByID handles GET /api/members/:id
func (h *MemberHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid member id")
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeMemberError(c, err)
		return
	}

	response.Success(c, "Member retrieved successfully", m.ToResponse())
}

// UpdateProfile handles PUT /api/members/:id
func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid member id")
		return
	}

	var req member.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.UpdateProfile(c.Request.Context(), id, &req)
	if err != nil {
		writeMemberError(c, err)
		return
	}

	response.Success(c, "Member updated successfully", updated.ToResponse())
}

func writeMemberError(c *gin.Context, err error) {
	status := member.ToHTTPStatus(err)
	if status == 500 {
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
