package content

import (
	"errors"
	"fmt"

	contentRepo "akplaw/database/repository/content"
	"akplaw/models"
	"akplaw/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a content item does not exist. Handlers map
// it to a 404 "not found" view.
var ErrNotFound = errors.New("content not found")

// --- Hero ---

// GetHero returns the homepage banner configuration.
func (s *DefaultContentService) GetHero() (*models.HeroContent, error) {
	hero, err := s.Repo.GetHero()
	if err != nil {
		return nil, err
	}
	if hero == nil {
		return nil, ErrNotFound
	}
	return hero, nil
}

// SetHero replaces the homepage banner configuration. There is only ever one
// hero document; writes upsert it in place.
func (s *DefaultContentService) SetHero(hero models.HeroContent) (*models.HeroContent, error) {
	if hero.Headline == "" {
		return nil, fmt.Errorf("hero headline is required")
	}
	if err := s.Repo.UpsertHero(&hero); err != nil {
		return nil, err
	}
	return &hero, nil
}

// --- Insights ---

// ListInsights lists insights for the public site, newest first, with the
// author profile embedded where one resolves.
func (s *DefaultContentService) ListInsights(q InsightQuery) ([]models.Insight, error) {
	items, err := s.Repo.GetInsights(contentRepo.InsightFilter{
		Type:       q.Type,
		Category:   q.Category,
		Featured:   q.Featured,
		HeroOnly:   q.HeroOnly,
		Limit:      q.Latest,
		SortByDate: true,
	})
	if err != nil {
		return nil, err
	}
	for i := range items {
		s.embedAuthor(&items[i])
	}
	return items, nil
}

// GetInsight retrieves one insight by ID with its author embedded.
func (s *DefaultContentService) GetInsight(id string) (*models.Insight, error) {
	ins, err := s.Repo.GetInsightByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	s.embedAuthor(ins)
	return ins, nil
}

// GetInsightBySlug resolves a deep link like /insights/some-slug to the
// insight whose title slugifies to that slug.
func (s *DefaultContentService) GetInsightBySlug(slug string) (*models.Insight, error) {
	items, err := s.Repo.GetInsights(contentRepo.InsightFilter{})
	if err != nil {
		return nil, err
	}
	for i := range items {
		if utils.Slugify(items[i].Title) == slug {
			s.embedAuthor(&items[i])
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// CreateInsight adds a content item.
func (s *DefaultContentService) CreateInsight(ins models.Insight) (*models.Insight, error) {
	if err := validateInsight(&ins); err != nil {
		return nil, err
	}
	ins.ID = uuid.New().String()
	if err := s.Repo.CreateInsight(&ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

// UpdateInsight replaces a content item.
func (s *DefaultContentService) UpdateInsight(ins models.Insight) (*models.Insight, error) {
	if ins.ID == "" {
		return nil, fmt.Errorf("insight id is required")
	}
	if err := validateInsight(&ins); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateInsight(&ins); err != nil {
		return nil, err
	}
	return &ins, nil
}

// DeleteInsight removes a content item.
func (s *DefaultContentService) DeleteInsight(id string) error {
	return s.Repo.DeleteInsight(id)
}

func validateInsight(ins *models.Insight) error {
	if ins.Title == "" {
		return fmt.Errorf("insight title is required")
	}
	if !models.ValidInsightType(ins.Type) {
		return fmt.Errorf("invalid insight type %q", ins.Type)
	}
	return nil
}

// embedAuthor attaches the author profile when the reference resolves. A
// dangling reference degrades silently to no author.
func (s *DefaultContentService) embedAuthor(ins *models.Insight) {
	if ins.AuthorID == "" {
		return
	}
	author, err := s.Repo.GetAuthorByID(ins.AuthorID)
	if err != nil {
		utils.GetLogger().Warn("failed to embed author", zap.String("authorId", ins.AuthorID), zap.Error(err))
		return
	}
	ins.Author = author
}

// --- Authors ---

// ListAuthors lists all staff profiles.
func (s *DefaultContentService) ListAuthors() ([]models.Author, error) {
	return s.Repo.GetAuthors()
}

// GetAuthor retrieves a staff profile by ID.
func (s *DefaultContentService) GetAuthor(id string) (*models.Author, error) {
	a, err := s.Repo.GetAuthorByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// CreateAuthor adds a staff profile.
func (s *DefaultContentService) CreateAuthor(a models.Author) (*models.Author, error) {
	if a.Name == "" {
		return nil, fmt.Errorf("author name is required")
	}
	a.ID = uuid.New().String()
	if err := s.Repo.CreateAuthor(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAuthor replaces a staff profile.
func (s *DefaultContentService) UpdateAuthor(a models.Author) (*models.Author, error) {
	if a.ID == "" {
		return nil, fmt.Errorf("author id is required")
	}
	if err := s.Repo.UpdateAuthor(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAuthor removes a staff profile. Insights referencing it keep their
// dangling author id; reads degrade to no author.
func (s *DefaultContentService) DeleteAuthor(id string) error {
	return s.Repo.DeleteAuthor(id)
}

// --- Offices ---

// ListOffices lists all office locations.
func (s *DefaultContentService) ListOffices() ([]models.OfficeLocation, error) {
	return s.Repo.GetOffices()
}

// CreateOffice adds an office location.
func (s *DefaultContentService) CreateOffice(o models.OfficeLocation) (*models.OfficeLocation, error) {
	if o.City == "" || o.Address == "" {
		return nil, fmt.Errorf("office city and address are required")
	}
	o.ID = uuid.New().String()
	if err := s.Repo.CreateOffice(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOffice replaces an office location.
func (s *DefaultContentService) UpdateOffice(o models.OfficeLocation) (*models.OfficeLocation, error) {
	if o.ID == "" {
		return nil, fmt.Errorf("office id is required")
	}
	if err := s.Repo.UpdateOffice(&o); err != nil {
		return nil, err
	}
	return &o, nil
}

// DeleteOffice removes an office location.
func (s *DefaultContentService) DeleteOffice(id string) error {
	return s.Repo.DeleteOffice(id)
}
