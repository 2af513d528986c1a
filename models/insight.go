package models

import "time"

// Insight content types.
const (
	InsightTypeInsight   = "insight"
	InsightTypeReport    = "report"
	InsightTypePodcast   = "podcast"
	InsightTypeArticle   = "article"
	InsightTypeEvent     = "event"
	InsightTypeCaseStudy = "case study"
)

// Insight is a publishable content item (article, report, podcast, case study).
type Insight struct {
	ID           string    `bson:"id" json:"id"`
	Type         string    `bson:"type" json:"type"`
	Category     string    `bson:"category" json:"category"`
	Title        string    `bson:"title" json:"title"`
	Date         time.Time `bson:"date" json:"date"`
	Description  string    `bson:"description" json:"description"`
	ImageURL     string    `bson:"image_url" json:"imageUrl"`
	ThumbnailURL string    `bson:"thumbnail_url,omitempty" json:"thumbnailUrl,omitempty"`
	PDFURL       string    `bson:"pdf_url,omitempty" json:"pdfUrl,omitempty"`
	AudioURL     string    `bson:"audio_url,omitempty" json:"audioUrl,omitempty"`
	AuthorID     string    `bson:"author_id,omitempty" json:"authorId,omitempty"`
	Featured     bool      `bson:"featured" json:"featured"`
	ShowInHero   bool      `bson:"show_in_hero" json:"showInHero"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`

	// Author is embedded on read when AuthorID resolves; never persisted.
	Author *Author `bson:"-" json:"author,omitempty"`
}

// ValidInsightType reports whether t is one of the recognized content types.
func ValidInsightType(t string) bool {
	switch t {
	case InsightTypeInsight, InsightTypeReport, InsightTypePodcast,
		InsightTypeArticle, InsightTypeEvent, InsightTypeCaseStudy:
		return true
	}
	return false
}
