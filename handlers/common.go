package handlers

import (
	"lawroute/middleware"
	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
)

// actorFromContext builds the access actor from the identity the auth
// middleware placed on the request context.
func actorFromContext(c *gin.Context) (access.Actor, error) {
	id, ok := c.Get(middleware.ContextAccountID)
	idStr, okStr := id.(string)
	if !ok || !okStr || idStr == "" {
		return access.Actor{}, utils.Unauthenticated("Authentication required.")
	}
	role, _ := c.Get(middleware.ContextRole)
	roleStr, _ := role.(string)
	parsed, okRole := models.ParseRole(roleStr)
	if !okRole {
		return access.Actor{}, utils.Unauthenticated("Authentication required.")
	}
	return access.Actor{ID: idStr, Role: parsed}, nil
}
