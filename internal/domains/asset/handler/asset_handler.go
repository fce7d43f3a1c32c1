package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shbudget-backend/internal/domains/asset"
	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/shared/middleware"
	"shbudget-backend/internal/shared/response"
)

type AssetHandler struct {
	service asset.Service
}

func NewAssetHandler(svc asset.Service) *AssetHandler {
	return &AssetHandler{service: svc}
}

// Create handles POST /api/assets?bookId=
func (h *AssetHandler) Create(c *gin.Context) {
	bookID, ok := bookIDQuery(c)
	if !ok {
		return
	}

	var req asset.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), middleware.MemberID(c), bookID, &req)
	if err != nil {
		writeAssetError(c, err)
		return
	}

	response.Created(c, "Asset created successfully", created)
}

// List handles GET /api/assets?bookId=
func (h *AssetHandler) List(c *gin.Context) {
	bookID, ok := bookIDQuery(c)
	if !ok {
		return
	}

	assets, err := h.service.List(c.Request.Context(), middleware.MemberID(c), bookID)
	if err != nil {
		writeAssetError(c, err)
		return
	}

	response.Success(c, "Assets retrieved successfully", assets)
}

// Get handles GET /api/assets/:id?bookId=
func (h *AssetHandler) Get(c *gin.Context) {
	bookID, ok := bookIDQuery(c)
	if !ok {
		return
	}
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	a, err := h.service.Get(c.Request.Context(), middleware.MemberID(c), bookID, assetID)
	if err != nil {
		writeAssetError(c, err)
		return
	}

	response.Success(c, "Asset retrieved successfully", a)
}

// Update handles PUT /api/assets/:id?bookId=
func (h *AssetHandler) Update(c *gin.Context) {
	bookID, ok := bookIDQuery(c)
	if !ok {
		return
	}
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	var req asset.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.service.Update(c.Request.Context(), middleware.MemberID(c), bookID, assetID, &req)
	if err != nil {
		writeAssetError(c, err)
		return
	}

	response.Success(c, "Asset updated successfully", updated)
}

// Delete handles DELETE /api/assets/:id?bookId=
func (h *AssetHandler) Delete(c *gin.Context) {
	bookID, ok := bookIDQuery(c)
	if !ok {
		return
	}
	assetID, ok := assetIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.MemberID(c), bookID, assetID); err != nil {
		writeAssetError(c, err)
		return
	}

	response.Success(c, "Asset deleted successfully", nil)
}

// TotalBalance handles GET /api/assets/total?bookId=
func (h *AssetHandler) TotalBalance(c *gin.Context) {
	bookID, ok := bookIDQuery(c)
	if !ok {
		return
	}

	summary, err := h.service.TotalBalance(c.Request.Context(), middleware.MemberID(c), bookID)
	if err != nil {
		writeAssetError(c, err)
		return
	}

	response.Success(c, "Asset summary retrieved successfully", summary)
}

func bookIDQuery(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("bookId"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid or missing bookId")
		return 0, false
	}
	return id, true
}

func assetIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid asset id")
		return 0, false
	}
	return id, true
}

// writeAssetError also maps book-domain errors because every asset operation
// runs a membership check first.
func writeAssetError(c *gin.Context, err error) {
	status := asset.ToHTTPStatus(err)
	if status == 500 {
		status = book.ToHTTPStatus(err)
	}
	if status == 500 {
		response.InternalServerError(c)
		return
	}
	response.Error(c, status, err.Error())
}
