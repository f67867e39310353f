package article

import (
	"strings"

	articleRepo "lawroute/database/repository/article"
	"lawroute/models"
	"lawroute/services/access"
	"lawroute/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ArticleService governs legal-information article publishing.
type ArticleService interface {
	// Create publishes immediately for admins; lawyer articles start
	// pending and wait for moderation.
	Create(actor access.Actor, title, content, category string) (*models.Article, error)
	// Get retrieves an article. Published articles are public; pending
	// ones are visible to their author and admins.
	Get(actor access.Actor, articleID string) (*models.Article, error)
	// ListPublished retrieves all published articles.
	ListPublished() ([]models.Article, error)
	// ListByAuthor retrieves the author's own articles.
	ListByAuthor(authorID string) ([]models.Article, error)
	// Moderate sets an article's status. Admin only, via the guard's
	// role bypass.
	Moderate(actor access.Actor, articleID, status string) (*models.Article, error)
}

// DefaultArticleService is the production implementation.
type DefaultArticleService struct {
	Repo articleRepo.ArticleRepository
}

func (s *DefaultArticleService) Create(actor access.Actor, title, content, category string) (*models.Article, error) {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleLawyer {
		return nil, utils.Forbidden("Only admins or lawyers can create articles.")
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, utils.Validationf("title and content are required")
	}

	status := models.ArticleStatusPending
	if actor.Role == models.RoleAdmin {
		status = models.ArticleStatusPublished
	}

	article := &models.Article{
		ID:         uuid.NewString(),
		Title:      title,
		Content:    content,
		Category:   category,
		AuthorID:   actor.ID,
		AuthorRole: actor.Role,
		Status:     status,
	}
	if err := s.Repo.Create(article); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Article created",
		zap.String("articleID", article.ID),
		zap.String("status", status))
	return article, nil
}

func (s *DefaultArticleService) Get(actor access.Actor, articleID string) (*models.Article, error) {
	article, err := s.Repo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, utils.NotFound("Article not found.")
	}
	if article.Status == models.ArticleStatusPublished {
		return article, nil
	}
	if err := access.Decide(actor, article, access.ActionRead); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *DefaultArticleService) ListPublished() ([]models.Article, error) {
	return s.Repo.ListPublished()
}

func (s *DefaultArticleService) ListByAuthor(authorID string) ([]models.Article, error) {
	return s.Repo.ListByAuthor(authorID)
}

func (s *DefaultArticleService) Moderate(actor access.Actor, articleID, status string) (*models.Article, error) {
	if !models.ValidArticleStatus(status) {
		return nil, utils.Validationf("status must be one of: pending, published, rejected, archived")
	}

	article, err := s.Repo.GetByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, utils.NotFound("Article not found.")
	}
	// Moderation has no ownership rule; only the admin bypass allows it.
	if err := access.Decide(actor, article, access.ActionTransition); err != nil {
		return nil, err
	}

	updated, err := s.Repo.SetStatus(articleID, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, utils.NotFound("Article not found.")
	}
	return updated, nil
}
