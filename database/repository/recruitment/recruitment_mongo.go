package recruitmentRepo

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

// MongoRecruitmentRepo implements RecruitmentRepository using MongoDB.
type MongoRecruitmentRepo struct {
	jobs         *mongo.Collection
	applications *mongo.Collection
}

// NewMongoRecruitmentRepo creates a RecruitmentRepository backed by MongoDB.
func NewMongoRecruitmentRepo() RecruitmentRepository {
	repo := &MongoRecruitmentRepo{
		jobs:         database.Collection("jobs"),
		applications: database.Collection("applications"),
	}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create recruitment indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRecruitmentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.jobs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create job indexes: %w", err)
	}
	if _, err := r.applications.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create application indexes: %w", err)
	}
	return nil
}

// --- Jobs ---

// GetJobs lists job postings, optionally restricted to active listings.
func (r *MongoRecruitmentRepo) GetJobs(activeOnly bool) ([]models.Job, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["status"] = models.JobStatusActive
	}

	cursor, err := r.jobs.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve jobs: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	for cursor.Next(ctx) {
		var j models.Job
		if err := cursor.Decode(&j); err != nil {
			return nil, fmt.Errorf("failed to decode job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// GetJobByID retrieves a job posting by its unique ID. Returns nil, nil when absent.
func (r *MongoRecruitmentRepo) GetJobByID(id string) (*models.Job, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var job models.Job
	if err := r.jobs.FindOne(ctx, bson.M{"id": id}).Decode(&job); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch job with id %s: %w", id, err)
	}
	return &job, nil
}

// CreateJob inserts a new job posting.
func (r *MongoRecruitmentRepo) CreateJob(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := r.jobs.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// UpdateJob modifies an existing job posting.
func (r *MongoRecruitmentRepo) UpdateJob(job *models.Job) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	job.UpdatedAt = time.Now()
	result, err := r.jobs.UpdateOne(ctx, bson.M{"id": job.ID}, bson.M{"$set": job})
	if err != nil {
		return fmt.Errorf("failed to update job with id %s: %w", job.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("job with id %s not found", job.ID)
	}
	return nil
}

// DeleteJob removes a job posting by its ID.
func (r *MongoRecruitmentRepo) DeleteJob(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.jobs.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete job with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("job with id %s not found", id)
	}
	return nil
}

// --- Applications ---

// GetApplications lists applications matching the filter.
func (r *MongoRecruitmentRepo) GetApplications(filter ApplicationFilter) ([]models.JobApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{}
	if filter.JobID != "" {
		query["job_id"] = filter.JobID
	}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	cursor, err := r.applications.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.JobApplication
	for cursor.Next(ctx) {
		var a models.JobApplication
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

// GetApplicationByID retrieves an application by its unique ID.
func (r *MongoRecruitmentRepo) GetApplicationByID(id string) (*models.JobApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.JobApplication
	if err := r.applications.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		return nil, fmt.Errorf("failed to fetch application with id %s: %w", id, err)
	}
	return &app, nil
}

// CreateApplication inserts a new application dossier.
func (r *MongoRecruitmentRepo) CreateApplication(app *models.JobApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	app.SubmittedAt = now
	app.UpdatedAt = now

	if _, err := r.applications.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// UpdateApplicationStatus sets the pipeline status of an application.
func (r *MongoRecruitmentRepo) UpdateApplicationStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	result, err := r.applications.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update application %s status: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("application with id %s not found", id)
	}
	return nil
}

// DeleteApplication removes an application dossier by its ID.
func (r *MongoRecruitmentRepo) DeleteApplication(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.applications.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete application with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("application with id %s not found", id)
	}
	return nil
}
