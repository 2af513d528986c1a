package models

import "time"

// Author is a staff profile referenced by id from insights.
type Author struct {
	ID             string    `bson:"id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Title          string    `bson:"title" json:"title"`
	Bio            string    `bson:"bio" json:"bio"`
	Email          string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone          string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PhotoURL       string    `bson:"photo_url,omitempty" json:"photoUrl,omitempty"`
	Qualifications []string  `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updatedAt"`
}
