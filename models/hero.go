package models

import "time"

// HeroContent is the singleton homepage banner configuration.
// There is exactly one hero document, upserted under a fixed key.
type HeroContent struct {
	ID              string    `bson:"id" json:"id"`
	Headline        string    `bson:"headline" json:"headline"`
	Subtext         string    `bson:"subtext" json:"subtext"`
	BackgroundImage string    `bson:"background_image" json:"backgroundImage"`
	CTAText         string    `bson:"cta_text" json:"ctaText"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// HeroDocumentID is the fixed key under which the hero singleton is stored.
const HeroDocumentID = "hero"
