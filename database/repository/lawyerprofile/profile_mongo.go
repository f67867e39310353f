package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	repo := &MongoProfileRepo{coll: database.Collection("lawyer_profiles")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create lawyer profile indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "accountId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new lawyer profile document.
func (r *MongoProfileRepo) Create(profile *models.LawyerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create lawyer profile: %w", err)
	}
	return nil
}

// GetByAccount retrieves the profile owned by the given account.
func (r *MongoProfileRepo) GetByAccount(accountID string) (*models.LawyerProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.LawyerProfile
	if err := r.coll.FindOne(ctx, bson.M{"accountId": accountID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lawyer profile for account %s: %w", accountID, err)
	}
	return &profile, nil
}

// Save persists the full profile document.
func (r *MongoProfileRepo) Save(profile *models.LawyerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"id": profile.ID}, profile)
	if err != nil {
		return fmt.Errorf("failed to save lawyer profile with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("lawyer profile with id %s not found", profile.ID)
	}
	return nil
}

// GetAll retrieves all lawyer profiles.
func (r *MongoProfileRepo) GetAll() ([]models.LawyerProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lawyer profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.LawyerProfile
	for cursor.Next(ctx) {
		var p models.LawyerProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
