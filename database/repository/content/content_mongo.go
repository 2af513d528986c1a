package contentRepo

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

// MongoContentRepo implements ContentRepository over the hero, insights,
// authors, and offices collections.
type MongoContentRepo struct {
	hero     *mongo.Collection
	insights *mongo.Collection
	authors  *mongo.Collection
	offices  *mongo.Collection
}

// NewMongoContentRepo creates a ContentRepository backed by MongoDB.
func NewMongoContentRepo() ContentRepository {
	repo := &MongoContentRepo{
		hero:     database.Collection("hero"),
		insights: database.Collection("insights"),
		authors:  database.Collection("authors"),
		offices:  database.Collection("offices"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create content indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.insights.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create insight indexes: %w", err)
	}
	for _, coll := range []*mongo.Collection{r.authors, r.offices} {
		if _, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// --- Hero singleton ---

// GetHero returns the single hero document, or nil when none has been set.
func (r *MongoContentRepo) GetHero() (*models.HeroContent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var hero models.HeroContent
	err := r.hero.FindOne(ctx, bson.M{"id": models.HeroDocumentID}).Decode(&hero)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hero content: %w", err)
	}
	return &hero, nil
}

// UpsertHero writes the hero singleton under its fixed key. The fixed key is
// what guarantees there is never more than one hero document.
func (r *MongoContentRepo) UpsertHero(hero *models.HeroContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	hero.ID = models.HeroDocumentID
	hero.UpdatedAt = time.Now()

	opts := options.Update().SetUpsert(true)
	if _, err := r.hero.UpdateOne(ctx, bson.M{"id": models.HeroDocumentID}, bson.M{"$set": hero}, opts); err != nil {
		return fmt.Errorf("failed to upsert hero content: %w", err)
	}
	return nil
}

// --- Insights ---

// GetInsights lists insights matching the filter. Filtering happens in the
// query rather than client-side.
func (r *MongoContentRepo) GetInsights(filter InsightFilter) ([]models.Insight, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Featured {
		query["featured"] = true
	}
	if filter.HeroOnly {
		query["show_in_hero"] = true
	}

	opts := options.Find()
	if filter.SortByDate {
		opts.SetSort(bson.D{{Key: "date", Value: -1}})
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := r.insights.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve insights: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.Insight
	for cursor.Next(ctx) {
		var ins models.Insight
		if err := cursor.Decode(&ins); err != nil {
			return nil, fmt.Errorf("failed to decode insight: %w", err)
		}
		items = append(items, ins)
	}
	return items, nil
}

// GetInsightByID retrieves one insight by its unique ID.
func (r *MongoContentRepo) GetInsightByID(id string) (*models.Insight, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var ins models.Insight
	if err := r.insights.FindOne(ctx, bson.M{"id": id}).Decode(&ins); err != nil {
		return nil, fmt.Errorf("failed to fetch insight with id %s: %w", id, err)
	}
	return &ins, nil
}

// CreateInsight inserts a new insight document.
func (r *MongoContentRepo) CreateInsight(ins *models.Insight) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	ins.CreatedAt = now
	ins.UpdatedAt = now

	if _, err := r.insights.InsertOne(ctx, ins); err != nil {
		return fmt.Errorf("failed to create insight: %w", err)
	}
	return nil
}

// UpdateInsight modifies an existing insight document.
func (r *MongoContentRepo) UpdateInsight(ins *models.Insight) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	ins.UpdatedAt = time.Now()
	result, err := r.insights.UpdateOne(ctx, bson.M{"id": ins.ID}, bson.M{"$set": ins})
	if err != nil {
		return fmt.Errorf("failed to update insight with id %s: %w", ins.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("insight with id %s not found", ins.ID)
	}
	return nil
}

// DeleteInsight removes an insight document by its ID.
func (r *MongoContentRepo) DeleteInsight(id string) error {
	return r.deleteByID(r.insights, "insight", id)
}

// --- Authors ---

// GetAuthors lists all staff profiles.
func (r *MongoContentRepo) GetAuthors() ([]models.Author, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.authors.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve authors: %w", err)
	}
	defer cursor.Close(ctx)

	var authors []models.Author
	for cursor.Next(ctx) {
		var a models.Author
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, nil
}

// GetAuthorByID retrieves a staff profile by ID. Returns nil, nil when absent
// so dangling author references on insights degrade to "no author".
func (r *MongoContentRepo) GetAuthorByID(id string) (*models.Author, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.Author
	if err := r.authors.FindOne(ctx, bson.M{"id": id}).Decode(&a); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch author with id %s: %w", id, err)
	}
	return &a, nil
}

// CreateAuthor inserts a new staff profile.
func (r *MongoContentRepo) CreateAuthor(a *models.Author) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now

	if _, err := r.authors.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("failed to create author: %w", err)
	}
	return nil
}

// UpdateAuthor modifies an existing staff profile.
func (r *MongoContentRepo) UpdateAuthor(a *models.Author) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.UpdatedAt = time.Now()
	result, err := r.authors.UpdateOne(ctx, bson.M{"id": a.ID}, bson.M{"$set": a})
	if err != nil {
		return fmt.Errorf("failed to update author with id %s: %w", a.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("author with id %s not found", a.ID)
	}
	return nil
}

// DeleteAuthor removes a staff profile by ID.
func (r *MongoContentRepo) DeleteAuthor(id string) error {
	return r.deleteByID(r.authors, "author", id)
}

// --- Offices ---

// GetOffices lists all office locations.
func (r *MongoContentRepo) GetOffices() ([]models.OfficeLocation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.offices.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve offices: %w", err)
	}
	defer cursor.Close(ctx)

	var offices []models.OfficeLocation
	for cursor.Next(ctx) {
		var o models.OfficeLocation
		if err := cursor.Decode(&o); err != nil {
			return nil, fmt.Errorf("failed to decode office: %w", err)
		}
		offices = append(offices, o)
	}
	return offices, nil
}

// CreateOffice inserts a new office location.
func (r *MongoContentRepo) CreateOffice(o *models.OfficeLocation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	if _, err := r.offices.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("failed to create office: %w", err)
	}
	return nil
}

// UpdateOffice modifies an existing office location.
func (r *MongoContentRepo) UpdateOffice(o *models.OfficeLocation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	o.UpdatedAt = time.Now()
	result, err := r.offices.UpdateOne(ctx, bson.M{"id": o.ID}, bson.M{"$set": o})
	if err != nil {
		return fmt.Errorf("failed to update office with id %s: %w", o.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("office with id %s not found", o.ID)
	}
	return nil
}

// DeleteOffice removes an office location by ID.
func (r *MongoContentRepo) DeleteOffice(id string) error {
	return r.deleteByID(r.offices, "office", id)
}

func (r *MongoContentRepo) deleteByID(coll *mongo.Collection, kind, id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete %s with id %s: %w", kind, id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("%s with id %s not found", kind, id)
	}
	return nil
}
