package handlers

import (
	"net/http"

	"lawroute/services/auth"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login, and logout endpoints.
type AuthHandler struct {
	AuthService auth.AuthService
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var in auth.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	session, err := h.AuthService.Register(c.Request.Context(), in)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.GetLogger().Info("Account registered",
		zap.String("accountID", session.Account.ID),
		zap.String("role", string(session.Account.Role)))
	c.JSON(http.StatusCreated, session)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	session, err := h.AuthService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// LogoutHandler handles POST /api/auth/logout. It revokes the caller's
// current session.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if err := h.AuthService.Revoke(c.Request.Context(), actor.ID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}
