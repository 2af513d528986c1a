package models

import "time"

// OfficeLocation is a firm office shown on the locations page.
type OfficeLocation struct {
	ID        string    `bson:"id" json:"id"`
	City      string    `bson:"city" json:"city"`
	Address   string    `bson:"address" json:"address"`
	Phone     string    `bson:"phone" json:"phone"`
	Email     string    `bson:"email" json:"email"`
	Latitude  float64   `bson:"latitude" json:"latitude"`
	Longitude float64   `bson:"longitude" json:"longitude"`
	ImageURL  string    `bson:"image_url,omitempty" json:"imageUrl,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
