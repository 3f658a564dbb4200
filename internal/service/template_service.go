// internal/service/template_service.go
package service

import (
	"log"
	"strings"

	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/repository"
	"github.com/leadpilot/leadpilot-backend/internal/seed"
)

type TemplateService struct {
	Repo repository.TemplateRepositoryInterface
}

func (s *TemplateService) List() ([]model.Template, error) {
	ptrs, err := s.Repo.List("")
	if err != nil {
		return nil, err
	}
	return derefTemplates(ptrs), nil
}

func (s *TemplateService) GetByID(id string) (*model.Template, error) {
	return s.Repo.GetByID(id)
}

func (s *TemplateService) Create(draft model.TemplateDraft) (*model.Template, error) {
	t := &model.Template{
		Name:     draft.Name,
		Category: draft.Category,
		Subject:  draft.Subject,
		Content:  draft.Content,
		Tags:     draft.Tags,
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
	if err := s.Repo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TemplateService) Update(id string, patch model.TemplatePatch) (*model.Template, error) {
	return s.Repo.Update(id, patch)
}

func (s *TemplateService) Delete(id string) (bool, error) {
	return s.Repo.Delete(id)
}

// FilterByCategory returns the templates matching exactly one category value.
// An unknown category simply matches nothing.
func (s *TemplateService) FilterByCategory(category model.TemplateCategory) ([]model.Template, error) {
	ptrs, err := s.Repo.List(string(category))
	if err != nil {
		return nil, err
	}
	return derefTemplates(ptrs), nil
}

// SearchByText does a case-insensitive substring match over name, content,
// subject and tags. A blank or whitespace-only query means "no filter", not
// "match nothing".
func (s *TemplateService) SearchByText(query string) ([]model.Template, error) {
	templates, err := s.Repo.List("")
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return derefTemplates(templates), nil
	}

	matched := []model.Template{}
	for _, t := range templates {
		if templateMatches(t, q) {
			matched = append(matched, *t)
		}
	}
	return matched, nil
}

func templateMatches(t *model.Template, query string) bool {
	if strings.Contains(strings.ToLower(t.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Content), query) {
		return true
	}
	if t.Subject != nil && strings.Contains(strings.ToLower(*t.Subject), query) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// SeedIfEmpty inserts the fixed starter templates when the store holds none.
// Idempotent for the same reason as the campaign variant: the emptiness check
// precedes every insert attempt.
func (s *TemplateService) SeedIfEmpty() (int, error) {
	count, err := s.Repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	batch := seed.SampleTemplates()
	if err := s.Repo.CreateBatch(batch); err != nil {
		return 0, err
	}
	log.Printf("✅ Seeded %d starter templates", len(batch))
	return len(batch), nil
}

func derefTemplates(ptrs []*model.Template) []model.Template {
	templates := make([]model.Template, len(ptrs))
	for i, t := range ptrs {
		templates[i] = *t
	}
	return templates
}
