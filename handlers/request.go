package handlers

import (
	"net/http"

	"lawroute/models"
	"lawroute/services/access"
	"lawroute/services/request"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
)

// RequestHandler exposes the lawyer request lifecycle endpoints.
type RequestHandler struct {
	RequestService request.RequestService
}

// CreateRequestHandler handles POST /api/lawyer-requests.
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var req struct {
		LawyerID string `json:"lawyerId"`
		Summary  string `json:"summary"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	created, err := h.RequestService.Create(actor.ID, req.LawyerID, req.Summary)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRequestsHandler handles GET /api/lawyer-requests. Citizens see the
// requests they filed; lawyers see the requests addressed to them.
func (h *RequestHandler) ListRequestsHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var requests []models.LawyerRequest
	if actor.Role == models.RoleLawyer {
		requests, err = h.RequestService.ListForLawyer(actor.ID)
	} else {
		requests, err = h.RequestService.ListForUser(actor.ID)
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

// GetRequestHandler handles GET /api/lawyer-requests/:id.
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	found, err := h.RequestService.Get(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// AcceptRequestHandler handles POST /api/lawyer-requests/:id/accept.
func (h *RequestHandler) AcceptRequestHandler(c *gin.Context) {
	h.respond(c, h.RequestService.Accept)
}

// RejectRequestHandler handles POST /api/lawyer-requests/:id/reject.
func (h *RequestHandler) RejectRequestHandler(c *gin.Context) {
	h.respond(c, h.RequestService.Reject)
}

func (h *RequestHandler) respond(c *gin.Context, fn func(actor access.Actor, requestID string) (*models.LawyerRequest, error)) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	updated, err := fn(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
