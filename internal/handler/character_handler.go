package handler

import (
	"net/http"
	"strconv"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/charapedia/charapedia-backend/internal/middleware"
	"github.com/charapedia/charapedia-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// CharacterHandler handles character submission, revision and browsing
type CharacterHandler struct {
	characters service.CharacterService
}

// NewCharacterHandler creates a new CharacterHandler
func NewCharacterHandler(characters service.CharacterService) *CharacterHandler {
	return &CharacterHandler{characters: characters}
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid id", err)
		return 0, false
	}
	return id, true
}

// Submit handles POST /api/v1/works/:id/characters
// @Summary Submit a character
// @Description Proposes a new character for a work. The submission enters the review queue.
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Work ID"
// @Param request body domain.CreateCharacterRequest true "Character payload"
// @Success 201 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Failure 429 {object} common.APIResponse
// @Security BearerAuth
// @Router /works/{id}/characters [post]
func (h *CharacterHandler) Submit(c *gin.Context) {
	workID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	author := middleware.GetPrincipal(c)
	if author == nil {
		common.RespondError(c, common.ErrUnauthorized)
		return
	}

	resp, err := h.characters.Submit(c.Request.Context(), workID, &req, *author)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.CreatedResponse(c, resp)
}

// Edit handles PUT /api/v1/characters/:id
// @Summary Edit a character
// @Description Creates a new revision superseding the given one. Author edits re-enter review.
// @Tags characters
// @Accept json
// @Produce json
// @Param id path int true "Character ID"
// @Param request body domain.CreateCharacterRequest true "Character payload"
// @Success 201 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /characters/{id} [put]
func (h *CharacterHandler) Edit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req domain.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	editor := middleware.GetPrincipal(c)
	if editor == nil {
		common.RespondError(c, common.ErrUnauthorized)
		return
	}

	resp, err := h.characters.Edit(c.Request.Context(), id, &req, *editor)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.CreatedResponse(c, resp)
}

// Delete handles DELETE /api/v1/characters/:id
// @Summary Delete a character revision
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Security BearerAuth
// @Router /characters/{id} [delete]
func (h *CharacterHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	requester := middleware.GetPrincipal(c)
	if requester == nil {
		common.RespondError(c, common.ErrUnauthorized)
		return
	}

	if err := h.characters.Delete(c.Request.Context(), id, *requester); err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}

// Get handles GET /api/v1/characters/:id
// @Summary Get a character revision
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /characters/{id} [get]
func (h *CharacterHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.characters.Get(id, middleware.GetPrincipal(c))
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// History handles GET /api/v1/characters/:id/history
// @Summary Get a character's revision history
// @Description Returns the full revision chain, newest first. Author and admins only.
// @Tags characters
// @Produce json
// @Param id path int true "Character ID"
// @Success 200 {object} common.APIResponse
// @Failure 403 {object} common.APIResponse
// @Security BearerAuth
// @Router /characters/{id}/history [get]
func (h *CharacterHandler) History(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	viewer := middleware.GetPrincipal(c)
	if viewer == nil {
		common.RespondError(c, common.ErrUnauthorized)
		return
	}

	resp, err := h.characters.History(id, *viewer)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, resp, nil)
}

// ListByWork handles GET /api/v1/works/:id/characters
// @Summary List published characters of a work
// @Tags characters
// @Produce json
// @Param id path int true "Work ID"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} common.APIResponse
// @Failure 404 {object} common.APIResponse
// @Router /works/{id}/characters [get]
func (h *CharacterHandler) ListByWork(c *gin.Context) {
	workID, ok := parseID(c, "id")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, meta, err := h.characters.ListPublishedByWork(c.Request.Context(), workID, page, limit)
	if err != nil {
		common.RespondError(c, err)
		return
	}
	common.SuccessResponse(c, resp, meta)
}
