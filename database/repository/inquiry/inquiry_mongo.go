package inquiryRepo

import (
	"context"
	"fmt"
	"time"

	"akplaw/database"
	"akplaw/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInquiryRepo implements InquiryRepository using MongoDB.
type MongoInquiryRepo struct {
	coll *mongo.Collection
}

// NewMongoInquiryRepo creates an InquiryRepository backed by MongoDB.
func NewMongoInquiryRepo() InquiryRepository {
	repo := &MongoInquiryRepo{coll: database.Collection("inquiries")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inquiry indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInquiryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "reference", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new inquiry document.
func (r *MongoInquiryRepo) Create(inq *models.Inquiry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	inq.CreatedAt = now
	inq.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, inq); err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}
	return nil
}

// GetByID retrieves an inquiry by its unique ID.
func (r *MongoInquiryRepo) GetByID(id string) (*models.Inquiry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inq models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&inq); err != nil {
		return nil, fmt.Errorf("failed to fetch inquiry with id %s: %w", id, err)
	}
	return &inq, nil
}

// GetByReference looks up an inquiry by its public reference.
func (r *MongoInquiryRepo) GetByReference(ref string) (*models.Inquiry, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var inq models.Inquiry
	if err := r.coll.FindOne(ctx, bson.M{"reference": ref}).Decode(&inq); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch inquiry with reference %s: %w", ref, err)
	}
	return &inq, nil
}

// GetAll lists inquiries matching the filter, newest first.
func (r *MongoInquiryRepo) GetAll(filter InquiryFilter) ([]models.Inquiry, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inquiries: %w", err)
	}
	defer cursor.Close(ctx)

	var inquiries []models.Inquiry
	for cursor.Next(ctx) {
		var inq models.Inquiry
		if err := cursor.Decode(&inq); err != nil {
			return nil, fmt.Errorf("failed to decode inquiry: %w", err)
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, nil
}

// UpdateStatus sets the lifecycle status of an inquiry.
func (r *MongoInquiryRepo) UpdateStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update inquiry %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("inquiry with id %s not found", id)
	}
	return nil
}

// Delete removes an inquiry document by its ID.
func (r *MongoInquiryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inquiry with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("inquiry with id %s not found", id)
	}
	return nil
}
