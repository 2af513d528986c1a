package clientdocRepo

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

// MongoClientDocRepo implements ClientDocRepository using MongoDB.
type MongoClientDocRepo struct {
	coll *mongo.Collection
}

// NewMongoClientDocRepo creates a ClientDocRepository backed by MongoDB.
func NewMongoClientDocRepo() ClientDocRepository {
	repo := &MongoClientDocRepo{coll: database.Collection("client_docs")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create client_docs indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoClientDocRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "client_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new vault document.
func (r *MongoClientDocRepo) Create(doc *models.ClientDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	doc.UploadedAt = now
	doc.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create client document: %w", err)
	}
	return nil
}

// GetByID retrieves a vault document by its unique ID.
func (r *MongoClientDocRepo) GetByID(id string) (*models.ClientDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.ClientDocument
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch client document with id %s: %w", id, err)
	}
	return &doc, nil
}

// GetByClient lists a client's vault entries, newest first.
func (r *MongoClientDocRepo) GetByClient(clientID string) ([]models.ClientDocument, error) {
	return r.findAll(bson.M{"client_id": clientID})
}

// GetAll lists every vault entry, newest first.
func (r *MongoClientDocRepo) GetAll() ([]models.ClientDocument, error) {
	return r.findAll(bson.M{})
}

func (r *MongoClientDocRepo) findAll(filter bson.M) ([]models.ClientDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve client documents: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []models.ClientDocument
	for cursor.Next(ctx) {
		var d models.ClientDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode client document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// Update modifies an existing vault document.
func (r *MongoClientDocRepo) Update(doc *models.ClientDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	doc.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": doc.ID}, bson.M{"$set": doc})
	if err != nil {
		return fmt.Errorf("failed to update client document with id %s: %w", doc.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("client document with id %s not found", doc.ID)
	}
	return nil
}

// Delete removes a vault document by its ID.
func (r *MongoClientDocRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete client document with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("client document with id %s not found", id)
	}
	return nil
}
