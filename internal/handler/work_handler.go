package handler

import (
	"strconv"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/repository"
	"github.com/gin-gonic/gin"
)

// WorkHandler handles read-only work endpoints
type WorkHandler struct {
	works repository.WorkRepository
}

// NewWorkHandler creates a new WorkHandler
func NewWorkHandler(works repository.WorkRepository) *WorkHandler {
	return &WorkHandler{works: works}
}

// List handles GET /api/v1/works
// @Summary List works
// @Tags works
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Router /works [get]
func (h *WorkHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	works, total, err := h.works.List(page, limit)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, works, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Get handles GET /api/v1/works/:id
// @Summary Get a work
// @Tags works
// @Produce json
// @Param id path int true "Work ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /works/{id} [get]
func (h *WorkHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	work, err := h.works.FindByID(id)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, work, nil)
}
