package requestRepo

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

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo() RequestRepository {
	repo := &MongoRequestRepo{coll: database.Collection("lawyer_requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create lawyer request indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "lawyerId", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new request document.
func (r *MongoRequestRepo) Create(req *models.LawyerRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, req); err != nil {
		return fmt.Errorf("failed to create lawyer request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID.
func (r *MongoRequestRepo) GetByID(id string) (*models.LawyerRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.LawyerRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch lawyer request with id %s: %w", id, err)
	}
	return &req, nil
}

// ListByUser retrieves all requests created by the given citizen.
func (r *MongoRequestRepo) ListByUser(userID string) ([]models.LawyerRequest, error) {
	return r.list(bson.M{"userId": userID})
}

// ListByLawyer retrieves all requests assigned to the given lawyer.
func (r *MongoRequestRepo) ListByLawyer(lawyerID string) ([]models.LawyerRequest, error) {
	return r.list(bson.M{"lawyerId": lawyerID})
}

func (r *MongoRequestRepo) list(filter bson.M) ([]models.LawyerRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve lawyer requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.LawyerRequest
	for cursor.Next(ctx) {
		var req models.LawyerRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode lawyer request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// RespondIfPending atomically moves a pending request to the given status.
func (r *MongoRequestRepo) RespondIfPending(id, status string) (*models.LawyerRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.RequestStatusPending}
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.LawyerRequest
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&req)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to respond to lawyer request with id %s: %w", id, err)
	}
	return &req, nil
}
