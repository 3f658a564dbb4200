// internal/service/campaign_service.go
package service

import (
	"log"

	appErrors "github.com/leadpilot/leadpilot-backend/internal/errors"
	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/repository"
	"github.com/leadpilot/leadpilot-backend/internal/seed"
)

type CampaignService struct {
	Repo repository.CampaignRepositoryInterface
	Gen  *seed.Generator
}

// legalTransitions is the campaign status graph: draft -> active,
// active <-> paused, active/paused -> completed. Completed is terminal.
var legalTransitions = map[model.CampaignStatus][]model.CampaignStatus{
	model.StatusDraft:     {model.StatusActive},
	model.StatusActive:    {model.StatusPaused, model.StatusCompleted},
	model.StatusPaused:    {model.StatusActive, model.StatusCompleted},
	model.StatusCompleted: {},
}

func transitionAllowed(from, to model.CampaignStatus) bool {
	if from == to {
		return true // re-asserting the current status is a no-op, not an error
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// List fetches all campaigns newest first, optionally filtered by status.
func (s *CampaignService) List(status string) ([]model.Campaign, error) {
	ptrs, err := s.Repo.List(status)
	if err != nil {
		return nil, err
	}
	campaigns := make([]model.Campaign, len(ptrs))
	for i, c := range ptrs {
		campaigns[i] = *c
	}
	return campaigns, nil
}

// GetByID returns (nil, nil) when the id does not exist; an error only means
// the store itself failed.
func (s *CampaignService) GetByID(id string) (*model.Campaign, error) {
	return s.Repo.GetByID(id)
}

// Create persists a draft. The form layer owns validation; this layer only
// fills the server-side defaults: draft status, zeroed metrics, timestamps.
func (s *CampaignService) Create(draft model.CampaignDraft) (*model.Campaign, error) {
	c := &model.Campaign{
		Name:        draft.Name,
		Description: draft.Description,
		Status:      model.StatusDraft,
		Target: model.Target{
			Industries: draft.Industries,
			CompanySize: model.CompanySize{
				Min: draft.MinCompanySize,
				Max: draft.MaxCompanySize,
			},
			Locations: draft.Locations,
		},
		Messaging: model.Messaging{
			Subject:  draft.Subject,
			Template: draft.Template,
		},
		Schedule: model.Schedule{
			StartDate: draft.StartDate,
			EndDate:   draft.EndDate,
			Frequency: draft.Frequency,
		},
	}
	if c.Target.Industries == nil {
		c.Target.Industries = []string{}
	}
	if c.Target.Locations == nil {
		c.Target.Locations = []string{}
	}

	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Update applies a sparse patch and returns the updated record, or (nil, nil)
// when the id does not exist.
func (s *CampaignService) Update(id string, patch model.CampaignPatch) (*model.Campaign, error) {
	return s.Repo.Update(id, patch)
}

// UpdateStatus moves a campaign along the status graph. Unknown statuses and
// illegal transitions fail with typed errors; an unknown id returns (nil, nil).
func (s *CampaignService) UpdateStatus(id string, status model.CampaignStatus) (*model.Campaign, error) {
	if !status.Valid() {
		return nil, appErrors.NewInvalidStatus(string(status))
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	if !transitionAllowed(current.Status, status) {
		return nil, appErrors.NewIllegalTransition(string(current.Status), string(status))
	}

	return s.Repo.UpdateStatus(id, status)
}

// Delete reports whether anything was removed. A missing id is false, never
// an error.
func (s *CampaignService) Delete(id string) (bool, error) {
	return s.Repo.Delete(id)
}

// SeedIfEmpty populates an empty campaign store with n generated samples and
// returns how many were inserted. The emptiness check runs on every call, so
// repeated calls never produce a second batch.
func (s *CampaignService) SeedIfEmpty(n int) (int, error) {
	count, err := s.Repo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	if n <= 0 {
		n = seed.DefaultCampaignCount
	}

	batch := s.Gen.Campaigns(n)
	if err := s.Repo.CreateBatch(batch); err != nil {
		return 0, err
	}
	log.Printf("✅ Seeded %d sample campaigns", len(batch))
	return len(batch), nil
}
