package handler

import (
	"net/http"
	"strconv"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/middleware"
	"github.com/charapedia/charapedia-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// ReviewHandler handles the admin review queue and decisions
type ReviewHandler struct {
	reviews    service.ReviewService
	characters service.CharacterService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviews service.ReviewService, characters service.CharacterService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, characters: characters}
}

// ListPending handles GET /api/v1/admin/characters/pending
// @Summary List pending submissions
// @Description Returns the review queue, oldest first. Admin only.
// @Tags review
// @Produce json
// @Param work_id query int false "Filter by work"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Security BearerAuth
// @Router /admin/characters/pending [get]
func (h *ReviewHandler) ListPending(c *gin.Context) {
	workID, _ := strconv.ParseUint(c.DefaultQuery("work_id", "0"), 10, 64)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, meta, err := h.characters.ListPending(workID, page, limit)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, resp, meta)
}

// Review handles POST /api/v1/admin/characters/:id/review
// @Summary Review a pending submission
// @Description Approves or rejects a pending character. Admin only.
// @Tags review
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body handler.ReviewRequest true "Decision"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 409 {object} common.APIResponse
// @Security BearerAuth
// @Router /admin/characters/{id}/review [post]
func (h *ReviewHandler) Review(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	reviewer := middleware.GetPrincipal(c)
	if reviewer == nil {
		common.RespondError(c, common.ErrUnauthorized)
		return
	}

	resp, err := h.reviews.Review(c.Request.Context(), id, *reviewer, req.Decision)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// ReviewRequest is the decision payload
type ReviewRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}
