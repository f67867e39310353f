package articleRepo

import (
	"context"
	"fmt"
	"time"

	"lawroute/database"
	"lawroute/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoArticleRepo implements ArticleRepository using MongoDB.
type MongoArticleRepo struct {
	coll *mongo.Collection
}

// NewMongoArticleRepo creates a new instance of ArticleRepository using MongoDB.
func NewMongoArticleRepo() ArticleRepository {
	repo := &MongoArticleRepo{coll: database.Collection("articles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create article indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoArticleRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "authorId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new article document.
func (r *MongoArticleRepo) Create(article *models.Article) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, article); err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

// GetByID retrieves an article by its unique ID.
func (r *MongoArticleRepo) GetByID(id string) (*models.Article, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var article models.Article
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&article); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch article with id %s: %w", id, err)
	}
	return &article, nil
}

// ListPublished retrieves all published articles.
func (r *MongoArticleRepo) ListPublished() ([]models.Article, error) {
	return r.list(bson.M{"status": models.ArticleStatusPublished})
}

// ListByAuthor retrieves all articles by the given author.
func (r *MongoArticleRepo) ListByAuthor(authorID string) ([]models.Article, error) {
	return r.list(bson.M{"authorId": authorID})
}

func (r *MongoArticleRepo) list(filter bson.M) ([]models.Article, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve articles: %w", err)
	}
	defer cursor.Close(ctx)

	var articles []models.Article
	for cursor.Next(ctx) {
		var a models.Article
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// SetStatus sets the article status and returns the updated article.
func (r *MongoArticleRepo) SetStatus(id, status string) (*models.Article, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article models.Article
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set status on article with id %s: %w", id, err)
	}
	return &article, nil
}
