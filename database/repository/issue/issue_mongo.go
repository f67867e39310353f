package issueRepo

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

// MongoIssueRepo implements IssueRepository using MongoDB.
type MongoIssueRepo struct {
	coll *mongo.Collection
}

// NewMongoIssueRepo creates a new instance of IssueRepository using MongoDB.
func NewMongoIssueRepo() IssueRepository {
	repo := &MongoIssueRepo{coll: database.Collection("civil_issues")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create civil issue indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoIssueRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reporterId", Value: 1}}},
		{Keys: bson.D{{Key: "assignedTo", Value: 1}, {Key: "district", Value: 1}}},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new issue document.
func (r *MongoIssueRepo) Create(issue *models.CivilIssue) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	issue.CreatedAt = now
	issue.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, issue); err != nil {
		return fmt.Errorf("failed to create civil issue: %w", err)
	}
	return nil
}

// GetByID retrieves an issue by its unique ID.
func (r *MongoIssueRepo) GetByID(id string) (*models.CivilIssue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var issue models.CivilIssue
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&issue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch civil issue with id %s: %w", id, err)
	}
	return &issue, nil
}

// ListByReporter retrieves all issues reported by the given account.
func (r *MongoIssueRepo) ListByReporter(reporterID string) ([]models.CivilIssue, error) {
	return r.list(bson.M{"reporterId": reporterID})
}

// ListAssigned retrieves all issues assigned to the given authority.
func (r *MongoIssueRepo) ListAssigned(authorityID, district string) ([]models.CivilIssue, error) {
	filter := bson.M{"assignedTo": authorityID}
	if district != "" {
		filter["district"] = district
	}
	return r.list(filter)
}

func (r *MongoIssueRepo) list(filter bson.M) ([]models.CivilIssue, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve civil issues: %w", err)
	}
	defer cursor.Close(ctx)

	var issues []models.CivilIssue
	for cursor.Next(ctx) {
		var issue models.CivilIssue
		if err := cursor.Decode(&issue); err != nil {
			return nil, fmt.Errorf("failed to decode civil issue: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, nil
}

// UpdateFieldsIfPending atomically applies field updates while the issue is
// still pending.
func (r *MongoIssueRepo) UpdateFieldsIfPending(id string, fields map[string]any) (*models.CivilIssue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	for k, v := range fields {
		set[k] = v
	}

	filter := bson.M{"id": id, "status": models.IssueStatusPending}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var issue models.CivilIssue
	err := r.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update civil issue with id %s: %w", id, err)
	}
	return &issue, nil
}

// SetStatus sets the issue status and returns the updated issue.
func (r *MongoIssueRepo) SetStatus(id, status string) (*models.CivilIssue, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var issue models.CivilIssue
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&issue)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set status on civil issue with id %s: %w", id, err)
	}
	return &issue, nil
}

// Delete removes an issue document by its ID.
func (r *MongoIssueRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete civil issue with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("civil issue with id %s not found", id)
	}
	return nil
}
