package routes

import (
	"net/http"
	"time"

	"lawroute/handlers"
	"lawroute/middleware"
	"lawroute/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login, and logout endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("/logout", hb.Auth.LogoutHandler)
	}
}

// RegisterIssueRoutes registers the civil issue lifecycle endpoints.
func RegisterIssueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/civil-issues")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("", middleware.RequireRoles(models.RoleCitizen), hb.Issues.SubmitIssueHandler)
		api.GET("", hb.Issues.ListIssuesHandler)
		api.GET("/:id", hb.Issues.GetIssueHandler)
		api.PUT("/:id", hb.Issues.EditIssueHandler)
		api.PATCH("/:id/status", hb.Issues.SetIssueStatusHandler)
		api.DELETE("/:id", hb.Issues.DeleteIssueHandler)
	}
}

// RegisterRequestRoutes registers the lawyer request endpoints.
func RegisterRequestRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyer-requests")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("", middleware.RequireRoles(models.RoleCitizen), hb.Requests.CreateRequestHandler)
		api.GET("", hb.Requests.ListRequestsHandler)
		api.GET("/:id", hb.Requests.GetRequestHandler)
		api.POST("/:id/accept", hb.Requests.AcceptRequestHandler)
		api.POST("/:id/reject", hb.Requests.RejectRequestHandler)
	}
}

// RegisterProfileRoutes registers the lawyer profile endpoints. Listing is
// public; updates require the lawyer role.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyer-profiles")
	{
		api.GET("", hb.Profiles.ListProfilesHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AccountRepo), middleware.RequireRoles(models.RoleLawyer))
		protected.PUT("/me", hb.Profiles.UpdateProfileHandler)
		protected.POST("/me/photo", hb.Profiles.UploadProfilePhotoHandler)
	}
}

// RegisterArticleRoutes registers the legal-information article endpoints.
func RegisterArticleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/articles")
	{
		api.GET("", hb.Articles.ListPublishedArticlesHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		protected.GET("/mine", hb.Articles.ListOwnArticlesHandler)
		protected.GET("/:id", hb.Articles.GetArticleHandler)
		protected.POST("", middleware.RequireRoles(models.RoleLawyer, models.RoleAdmin), hb.Articles.CreateArticleHandler)
		protected.PATCH("/:id/status", middleware.RequireRoles(models.RoleAdmin), hb.Articles.ModerateArticleHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LawRoute"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterIssueRoutes(r, hb)
	RegisterRequestRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterArticleRoutes(r, hb)
	RegisterHealthRoute(r)
}
