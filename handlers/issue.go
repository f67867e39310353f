package handlers

import (
	"net/http"

	"lawroute/models"
	"lawroute/services/issue"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
)

// IssueHandler exposes the civil issue lifecycle endpoints.
type IssueHandler struct {
	IssueService issue.IssueService
}

// SubmitIssueHandler handles POST /api/civil-issues.
func (h *IssueHandler) SubmitIssueHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var req struct {
		Category    string `json:"category"`
		District    string `json:"district"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	created, err := h.IssueService.Submit(actor.ID, req.Category, req.District, req.Description)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListIssuesHandler handles GET /api/civil-issues. Citizens see their own
// reports; authorities see their assigned queue, optionally filtered by
// district.
func (h *IssueHandler) ListIssuesHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var issues []models.CivilIssue
	if actor.Role == models.RoleAuthority {
		issues, err = h.IssueService.ListAssigned(actor.ID, c.Query("district"))
	} else {
		issues, err = h.IssueService.ListByReporter(actor.ID)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

// GetIssueHandler handles GET /api/civil-issues/:id.
func (h *IssueHandler) GetIssueHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	found, err := h.IssueService.Get(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// EditIssueHandler handles PUT /api/civil-issues/:id.
func (h *IssueHandler) EditIssueHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var req struct {
		Description string `json:"description"`
		District    string `json:"district"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	updated, err := h.IssueService.Edit(actor, c.Param("id"), req.Description, req.District)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetIssueStatusHandler handles PATCH /api/civil-issues/:id/status.
func (h *IssueHandler) SetIssueStatusHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	updated, err := h.IssueService.SetStatus(actor, c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteIssueHandler handles DELETE /api/civil-issues/:id.
func (h *IssueHandler) DeleteIssueHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := h.IssueService.Delete(actor, c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted."})
}
