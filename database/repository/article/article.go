package articleRepo

import "lawroute/models"

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// Create inserts a new article record.
	Create(article *models.Article) error
	// GetByID retrieves an article by its unique ID. Returns (nil, nil)
	// when no article exists.
	GetByID(id string) (*models.Article, error)
	// ListPublished retrieves all published articles, newest first.
	ListPublished() ([]models.Article, error)
	// ListByAuthor retrieves all articles by the given author, newest first.
	ListByAuthor(authorID string) ([]models.Article, error)
	// SetStatus sets the article status and returns the updated article.
	// Returns (nil, nil) when the article does not exist.
	SetStatus(id, status string) (*models.Article, error)
}
