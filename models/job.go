package models

import "time"

// Job listing statuses.
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// Job is a recruitment listing.
type Job struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Department  string    `bson:"department" json:"department"`
	Location    string    `bson:"location" json:"location"`
	Description string    `bson:"description" json:"description"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}
