package models

import "time"

// Article statuses.
const (
	ArticleStatusPending   = "pending"
	ArticleStatusPublished = "published"
	ArticleStatusRejected  = "rejected"
	ArticleStatusArchived  = "archived"
)

// ValidArticleStatus reports whether the given status is a member of the enum.
func ValidArticleStatus(status string) bool {
	switch status {
	case ArticleStatusPending, ArticleStatusPublished, ArticleStatusRejected, ArticleStatusArchived:
		return true
	}
	return false
}

// Article is a legal-information article. Admin-authored articles are
// published immediately; lawyer-authored articles start pending and are
// moderated by an admin.
type Article struct {
	ID         string    `bson:"id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	Category   string    `bson:"category,omitempty" json:"category,omitempty"`
	AuthorID   string    `bson:"authorId" json:"authorId"`
	AuthorRole Role      `bson:"authorRole" json:"authorRole"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (a *Article) Kind() string       { return KindArticle }
func (a *Article) OwnerID() string    { return a.AuthorID }
func (a *Article) AssigneeID() string { return "" }
