package service_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/service"
)

type fakeTemplateRepo struct {
	templates []*model.Template
	nextID    int
}

func (f *fakeTemplateRepo) List(category string) ([]*model.Template, error) {
	if category == "" {
		return f.templates, nil
	}
	matched := []*model.Template{}
	for _, t := range f.templates {
		if string(t.Category) == category {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (f *fakeTemplateRepo) GetByID(id string) (*model.Template, error) {
	for _, t := range f.templates {
		if t.ID == id {
			copied := *t
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) Create(t *model.Template) error {
	f.nextID++
	t.ID = fmt.Sprintf("t-%d", f.nextID)
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	copied := *t
	f.templates = append(f.templates, &copied)
	return nil
}

func (f *fakeTemplateRepo) CreateBatch(templates []*model.Template) error {
	for _, t := range templates {
		f.nextID++
		t.ID = fmt.Sprintf("t-%d", f.nextID)
		copied := *t
		f.templates = append(f.templates, &copied)
	}
	return nil
}

func (f *fakeTemplateRepo) Update(id string, patch model.TemplatePatch) (*model.Template, error) {
	for _, t := range f.templates {
		if t.ID != id {
			continue
		}
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Content != nil {
			t.Content = *patch.Content
		}
		if patch.Tags != nil {
			t.Tags = *patch.Tags
		}
		copied := *t
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeTemplateRepo) Delete(id string) (bool, error) {
	for i, t := range f.templates {
		if t.ID == id {
			f.templates = append(f.templates[:i], f.templates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTemplateRepo) Count() (int, error) {
	return len(f.templates), nil
}

func strPtr(s string) *string { return &s }

func newSearchFixture(t *testing.T) *service.TemplateService {
	t.Helper()
	repo := &fakeTemplateRepo{}
	svc := &service.TemplateService{Repo: repo}

	_, err := svc.Create(model.TemplateDraft{
		Name:     "Initial Outreach",
		Category: model.CategoryEmail,
		Subject:  strPtr("Opportunity to collaborate"),
		Content:  "Hi {{firstName}}, reaching out about {{painPoint}}.",
		Tags:     []string{"cold", "introduction"},
	})
	require.NoError(t, err)

	_, err = svc.Create(model.TemplateDraft{
		Name:     "Follow-up",
		Category: model.CategoryLinkedIn,
		Content:  "Hi {{firstName}}, circling back.",
		Tags:     []string{"nurture"},
	})
	require.NoError(t, err)

	return svc
}

func TestSearchByTextMatchesSubstringCaseInsensitive(t *testing.T) {
	svc := newSearchFixture(t)

	results, err := svc.SearchByText("outreach")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Initial Outreach", results[0].Name)

	results, err = svc.SearchByText("OUTREACH")
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestSearchByTextBlankQueryIsPassthrough(t *testing.T) {
	svc := newSearchFixture(t)

	results, err := svc.SearchByText("")
	require.NoError(t, err)
	assert.Len(t, results, 2)

	// whitespace-only means "no filter" too
	results, err = svc.SearchByText("   ")
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchByTextMatchesSubjectAndTags(t *testing.T) {
	svc := newSearchFixture(t)

	results, err := svc.SearchByText("collaborate")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Initial Outreach", results[0].Name)

	results, err = svc.SearchByText("nurture")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Follow-up", results[0].Name)
}

func TestSearchByTextNoMatch(t *testing.T) {
	svc := newSearchFixture(t)

	results, err := svc.SearchByText("zzz-no-such-text")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFilterByCategory(t *testing.T) {
	svc := newSearchFixture(t)

	results, err := svc.FilterByCategory(model.CategoryEmail)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, model.CategoryEmail, results[0].Category)

	// unknown category matches nothing rather than failing
	results, err = svc.FilterByCategory(model.TemplateCategory("carrier-pigeon"))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTemplateSeedIfEmptyIsIdempotent(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := &service.TemplateService{Repo: repo}

	seeded, err := svc.SeedIfEmpty()
	require.NoError(t, err)
	require.Greater(t, seeded, 0)

	first, _ := repo.Count()

	seeded, err = svc.SeedIfEmpty()
	require.NoError(t, err)
	assert.Zero(t, seeded)

	second, _ := repo.Count()
	assert.Equal(t, first, second)
}

func TestTemplateSeedCoversEveryCategory(t *testing.T) {
	repo := &fakeTemplateRepo{}
	svc := &service.TemplateService{Repo: repo}

	_, err := svc.SeedIfEmpty()
	require.NoError(t, err)

	seen := map[model.TemplateCategory]bool{}
	for _, tpl := range repo.templates {
		seen[tpl.Category] = true
		if tpl.Category != model.CategoryEmail {
			assert.Nil(t, tpl.Subject, "non-email template %q should have no subject", tpl.Name)
		}
	}
	for _, category := range []model.TemplateCategory{model.CategoryEmail, model.CategoryLinkedIn, model.CategoryMessage, model.CategoryOther} {
		assert.True(t, seen[category], "missing seeded template for category %s", category)
	}
}

func TestTemplateDeleteNonExistentIDReturnsFalse(t *testing.T) {
	svc := &service.TemplateService{Repo: &fakeTemplateRepo{}}

	deleted, err := svc.Delete("nonexistent-id")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTemplateCreateDefaultsNilTags(t *testing.T) {
	svc := &service.TemplateService{Repo: &fakeTemplateRepo{}}

	created, err := svc.Create(model.TemplateDraft{Name: "Bare", Category: model.CategoryOther})
	require.NoError(t, err)
	require.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
}
