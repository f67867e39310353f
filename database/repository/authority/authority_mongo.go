package authorityRepo

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

// MongoAuthorityRepo implements AuthorityRepository using MongoDB.
type MongoAuthorityRepo struct {
	coll *mongo.Collection
}

// NewMongoAuthorityRepo creates a new instance of AuthorityRepository using MongoDB.
func NewMongoAuthorityRepo() AuthorityRepository {
	repo := &MongoAuthorityRepo{coll: database.Collection("authority_profiles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create authority profile indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAuthorityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "accountId", Value: 1}}, Options: options.Index().SetUnique(true)},
		// One authority per category keeps routing deterministic.
		{Keys: bson.D{{Key: "managedCategory", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new authority profile document.
func (r *MongoAuthorityRepo) Create(profile *models.AuthorityProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create authority profile: %w", err)
	}
	return nil
}

// GetByCategory retrieves the authority profile managing the given category.
func (r *MongoAuthorityRepo) GetByCategory(category string) (*models.AuthorityProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.AuthorityProfile
	if err := r.coll.FindOne(ctx, bson.M{"managedCategory": category}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch authority profile for category %s: %w", category, err)
	}
	return &profile, nil
}

// GetByAccount retrieves the authority profile owned by the given account.
func (r *MongoAuthorityRepo) GetByAccount(accountID string) (*models.AuthorityProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.AuthorityProfile
	if err := r.coll.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch authority profile for account %s: %w", accountID, err)
	}
	return &profile, nil
}
