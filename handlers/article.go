package handlers

import (
	"net/http"

	"lawroute/services/article"
	"lawroute/utils"

	"github.com/gin-gonic/gin"
)

// ArticleHandler exposes the legal-information article endpoints.
type ArticleHandler struct {
	ArticleService article.ArticleService
}

// CreateArticleHandler handles POST /api/articles.
func (h *ArticleHandler) CreateArticleHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	var req struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.Validationf("invalid request payload"))
		return
	}
	created, err := h.ArticleService.Create(actor, req.Title, req.Content, req.Category)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPublishedArticlesHandler handles GET /api/articles. Public.
func (h *ArticleHandler) ListPublishedArticlesHandler(c *gin.Context) {
	articles, err := h.ArticleService.ListPublished()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// ListOwnArticlesHandler handles GET /api/articles/mine.
func (h *ArticleHandler) ListOwnArticlesHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	articles, err := h.ArticleService.ListByAuthor(actor.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticleHandler handles GET /api/articles/:id.
func (h *ArticleHandler) GetArticleHandler(c *gin.Context) {
	actor, err := actorFromContext(c)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	found, err := h.ArticleService.Get(actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// ModerateArticleHandler handles PATCH /api/articles/:id/status. Admin only.
func (h *ArticleHandler) ModerateArticleHandler(c *gin.Context) {
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
	updated, err := h.ArticleService.Moderate(actor, c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
