package content

import (
	"errors"
	"testing"

	contentRepo "akplaw/database/repository/content"
	"akplaw/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContentRepo struct {
	hero     *models.HeroContent
	insights []models.Insight
	authors  []models.Author
	offices  []models.OfficeLocation
}

func (f *fakeContentRepo) GetHero() (*models.HeroContent, error) { return f.hero, nil }

func (f *fakeContentRepo) UpsertHero(hero *models.HeroContent) error {
	f.hero = hero
	return nil
}

func (f *fakeContentRepo) GetInsights(filter contentRepo.InsightFilter) ([]models.Insight, error) {
	var out []models.Insight
	for _, ins := range f.insights {
		if filter.Type != "" && ins.Type != filter.Type {
			continue
		}
		if filter.Category != "" && ins.Category != filter.Category {
			continue
		}
		if filter.Featured && !ins.Featured {
			continue
		}
		if filter.HeroOnly && !ins.ShowInHero {
			continue
		}
		out = append(out, ins)
	}
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeContentRepo) GetInsightByID(id string) (*models.Insight, error) {
	for i := range f.insights {
		if f.insights[i].ID == id {
			return &f.insights[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeContentRepo) CreateInsight(ins *models.Insight) error {
	f.insights = append(f.insights, *ins)
	return nil
}

func (f *fakeContentRepo) UpdateInsight(ins *models.Insight) error { return nil }
func (f *fakeContentRepo) DeleteInsight(id string) error           { return nil }

func (f *fakeContentRepo) GetAuthors() ([]models.Author, error) { return f.authors, nil }

func (f *fakeContentRepo) GetAuthorByID(id string) (*models.Author, error) {
	for i := range f.authors {
		if f.authors[i].ID == id {
			return &f.authors[i], nil
		}
	}
	return nil, nil
}

func (f *fakeContentRepo) CreateAuthor(a *models.Author) error {
	f.authors = append(f.authors, *a)
	return nil
}

func (f *fakeContentRepo) UpdateAuthor(a *models.Author) error { return nil }
func (f *fakeContentRepo) DeleteAuthor(id string) error        { return nil }

func (f *fakeContentRepo) GetOffices() ([]models.OfficeLocation, error) { return f.offices, nil }

func (f *fakeContentRepo) CreateOffice(o *models.OfficeLocation) error {
	f.offices = append(f.offices, *o)
	return nil
}

func (f *fakeContentRepo) UpdateOffice(o *models.OfficeLocation) error { return nil }
func (f *fakeContentRepo) DeleteOffice(id string) error                { return nil }

func TestSetHeroUpserts(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := &DefaultContentService{Repo: repo}

	_, err := svc.SetHero(models.HeroContent{Headline: "Counsel you can build on"})
	require.NoError(t, err)

	hero, err := svc.GetHero()
	require.NoError(t, err)
	assert.Equal(t, "Counsel you can build on", hero.Headline)

	// Second write replaces, never duplicates.
	_, err = svc.SetHero(models.HeroContent{Headline: "New headline"})
	require.NoError(t, err)
	hero, err = svc.GetHero()
	require.NoError(t, err)
	assert.Equal(t, "New headline", hero.Headline)
}

func TestSetHeroRequiresHeadline(t *testing.T) {
	svc := &DefaultContentService{Repo: &fakeContentRepo{}}
	_, err := svc.SetHero(models.HeroContent{})
	assert.Error(t, err)
}

func TestGetHeroNotConfigured(t *testing.T) {
	svc := &DefaultContentService{Repo: &fakeContentRepo{}}
	_, err := svc.GetHero()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetInsightBySlug(t *testing.T) {
	repo := &fakeContentRepo{insights: []models.Insight{
		{ID: "1", Title: "Understanding Land Rates in Kenya", Type: models.InsightTypeArticle},
		{ID: "2", Title: "M&A Outlook 2026", Type: models.InsightTypeArticle},
	}}
	svc := &DefaultContentService{Repo: repo}

	ins, err := svc.GetInsightBySlug("understanding-land-rates-in-kenya")
	require.NoError(t, err)
	assert.Equal(t, "1", ins.ID)

	_, err = svc.GetInsightBySlug("no-such-post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListInsightsEmbedsAuthor(t *testing.T) {
	repo := &fakeContentRepo{
		insights: []models.Insight{
			{ID: "1", Title: "With author", AuthorID: "a1"},
			{ID: "2", Title: "Dangling author", AuthorID: "ghost"},
		},
		authors: []models.Author{{ID: "a1", Name: "Amina Khalid"}},
	}
	svc := &DefaultContentService{Repo: repo}

	items, err := svc.ListInsights(InsightQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].Author)
	assert.Equal(t, "Amina Khalid", items[0].Author.Name)
	// A dangling reference degrades to no author, not an error.
	assert.Nil(t, items[1].Author)
}

func TestListInsightsLatestLimit(t *testing.T) {
	repo := &fakeContentRepo{insights: []models.Insight{
		{ID: "1", Title: "One"}, {ID: "2", Title: "Two"},
		{ID: "3", Title: "Three"}, {ID: "4", Title: "Four"},
	}}
	svc := &DefaultContentService{Repo: repo}

	items, err := svc.ListInsights(InsightQuery{Latest: 3})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestCreateInsightValidation(t *testing.T) {
	svc := &DefaultContentService{Repo: &fakeContentRepo{}}

	_, err := svc.CreateInsight(models.Insight{Type: models.InsightTypeArticle})
	assert.Error(t, err)

	_, err = svc.CreateInsight(models.Insight{Title: "T", Type: "webinar"})
	assert.Error(t, err)

	created, err := svc.CreateInsight(models.Insight{Title: "T", Type: models.InsightTypeArticle})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
}

func TestCreateOfficeValidation(t *testing.T) {
	svc := &DefaultContentService{Repo: &fakeContentRepo{}}

	_, err := svc.CreateOffice(models.OfficeLocation{City: "Nairobi"})
	assert.Error(t, err)

	o, err := svc.CreateOffice(models.OfficeLocation{City: "Nairobi", Address: "Upper Hill, 5th Floor"})
	require.NoError(t, err)
	assert.NotEmpty(t, o.ID)
}
