package contentRepo

import "akplaw/models"

// InsightFilter narrows insight listings. Zero values mean "no constraint".
type InsightFilter struct {
	Type       string
	Category   string
	Featured   bool // only featured items
	HeroOnly   bool // only items flagged for the hero carousel
	Limit      int64
	SortByDate bool // newest first
}

// ContentRepository defines data access for the content-managed collections:
// hero banner, insights, authors, and office locations.
type ContentRepository interface {
	// Hero singleton.
	GetHero() (*models.HeroContent, error)
	UpsertHero(hero *models.HeroContent) error

	// Insights.
	GetInsights(filter InsightFilter) ([]models.Insight, error)
	GetInsightByID(id string) (*models.Insight, error)
	CreateInsight(ins *models.Insight) error
	UpdateInsight(ins *models.Insight) error
	DeleteInsight(id string) error

	// Authors.
	GetAuthors() ([]models.Author, error)
	GetAuthorByID(id string) (*models.Author, error)
	CreateAuthor(a *models.Author) error
	UpdateAuthor(a *models.Author) error
	DeleteAuthor(id string) error

	// Offices.
	GetOffices() ([]models.OfficeLocation, error)
	CreateOffice(o *models.OfficeLocation) error
	UpdateOffice(o *models.OfficeLocation) error
	DeleteOffice(id string) error
}
