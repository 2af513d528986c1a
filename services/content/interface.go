package content

import (
	contentRepo "akplaw/database/repository/content"
	"akplaw/models"
)

// InsightQuery is the public listing query. Zero values mean "no constraint".
type InsightQuery struct {
	Type     string
	Category string
	Featured bool
	HeroOnly bool
	Latest   int64 // newest N items
}

// ContentService manages the content-managed front-end collections.
type ContentService interface {
	// Hero singleton.
	GetHero() (*models.HeroContent, error)
	SetHero(hero models.HeroContent) (*models.HeroContent, error)

	// Insights.
	ListInsights(q InsightQuery) ([]models.Insight, error)
	GetInsight(id string) (*models.Insight, error)
	GetInsightBySlug(slug string) (*models.Insight, error)
	CreateInsight(ins models.Insight) (*models.Insight, error)
	UpdateInsight(ins models.Insight) (*models.Insight, error)
	DeleteInsight(id string) error

	// Authors.
	ListAuthors() ([]models.Author, error)
	GetAuthor(id string) (*models.Author, error)
	CreateAuthor(a models.Author) (*models.Author, error)
	UpdateAuthor(a models.Author) (*models.Author, error)
	DeleteAuthor(id string) error

	// Offices.
	ListOffices() ([]models.OfficeLocation, error)
	CreateOffice(o models.OfficeLocation) (*models.OfficeLocation, error)
	UpdateOffice(o models.OfficeLocation) (*models.OfficeLocation, error)
	DeleteOffice(id string) error
}

// DefaultContentService is the production implementation.
type DefaultContentService struct {
	Repo contentRepo.ContentRepository
}
