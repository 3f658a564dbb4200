package service_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	appErrors "github.com/leadpilot/leadpilot-backend/internal/errors"
	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/seed"
	"github.com/leadpilot/leadpilot-backend/internal/service"
)

// fakeCampaignRepo is an in-memory stand-in for the campaigns collection.
type fakeCampaignRepo struct {
	campaigns []*model.Campaign
	nextID    int
}

func (f *fakeCampaignRepo) List(status string) ([]*model.Campaign, error) {
	if status == "" {
		return f.campaigns, nil
	}
	matched := []*model.Campaign{}
	for _, c := range f.campaigns {
		if string(c.Status) == status {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (f *fakeCampaignRepo) GetByID(id string) (*model.Campaign, error) {
	for _, c := range f.campaigns {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCampaignRepo) Create(c *model.Campaign) error {
	f.nextID++
	c.ID = fmt.Sprintf("c-%d", f.nextID)
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	copied := *c
	f.campaigns = append(f.campaigns, &copied)
	return nil
}

func (f *fakeCampaignRepo) CreateBatch(campaigns []*model.Campaign) error {
	for _, c := range campaigns {
		f.nextID++
		c.ID = fmt.Sprintf("c-%d", f.nextID)
		copied := *c
		f.campaigns = append(f.campaigns, &copied)
	}
	return nil
}

func (f *fakeCampaignRepo) Update(id string, patch model.CampaignPatch) (*model.Campaign, error) {
	for _, c := range f.campaigns {
		if c.ID != id {
			continue
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		if patch.Industries != nil {
			c.Target.Industries = *patch.Industries
		}
		if patch.Subject != nil {
			c.Messaging.Subject = *patch.Subject
		}
		c.UpdatedAt = time.Now().UTC()
		copied := *c
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeCampaignRepo) UpdateStatus(id string, status model.CampaignStatus) (*model.Campaign, error) {
	for _, c := range f.campaigns {
		if c.ID == id {
			c.Status = status
			c.UpdatedAt = time.Now().UTC()
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeCampaignRepo) Delete(id string) (bool, error) {
	for i, c := range f.campaigns {
		if c.ID == id {
			f.campaigns = append(f.campaigns[:i], f.campaigns[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCampaignRepo) Count() (int, error) {
	return len(f.campaigns), nil
}

func newCampaignService(repo *fakeCampaignRepo) *service.CampaignService {
	return &service.CampaignService{Repo: repo, Gen: seed.NewGenerator(42)}
}

func TestCreateAssignsDraftStatusAndZeroMetrics(t *testing.T) {
	svc := newCampaignService(&fakeCampaignRepo{})

	created, err := svc.Create(model.CampaignDraft{
		Name:        "Launch",
		Description: "First touch",
		Frequency:   "weekly",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == "" {
		t.Error("expected an assigned id")
	}
	if created.Status != model.StatusDraft {
		t.Errorf("expected draft status, got %s", created.Status)
	}
	if created.Metrics != (model.Metrics{}) {
		t.Errorf("expected zeroed metrics, got %+v", created.Metrics)
	}
	if created.Target.Industries == nil || created.Target.Locations == nil {
		t.Error("expected empty slices, not nil, for unset list fields")
	}
}

func TestSparseUpdateLeavesOtherFieldsUntouched(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := newCampaignService(repo)

	created, err := svc.Create(model.CampaignDraft{Name: "A", Description: "B"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	name := "A2"
	updated, err := svc.Update(created.ID, model.CampaignPatch{Name: &name})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "A2" {
		t.Errorf("expected name A2, got %s", updated.Name)
	}
	if updated.Description != "B" {
		t.Errorf("untouched description was clobbered: got %q", updated.Description)
	}
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	svc := newCampaignService(&fakeCampaignRepo{})

	name := "A2"
	updated, err := svc.Update("nonexistent-id", model.CampaignPatch{Name: &name})
	if err != nil {
		t.Fatalf("expected nil error for unknown id, got %v", err)
	}
	if updated != nil {
		t.Error("expected nil campaign for unknown id")
	}
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := newCampaignService(repo)

	seeded, err := svc.SeedIfEmpty(0)
	if err != nil {
		t.Fatalf("first SeedIfEmpty failed: %v", err)
	}
	if seeded != seed.DefaultCampaignCount {
		t.Errorf("expected %d seeded campaigns, got %d", seed.DefaultCampaignCount, seeded)
	}

	count, _ := repo.Count()
	if count != seed.DefaultCampaignCount {
		t.Fatalf("expected %d campaigns after first seed, got %d", seed.DefaultCampaignCount, count)
	}

	seeded, err = svc.SeedIfEmpty(0)
	if err != nil {
		t.Fatalf("second SeedIfEmpty failed: %v", err)
	}
	if seeded != 0 {
		t.Errorf("second call seeded %d campaigns, want 0", seeded)
	}

	count, _ = repo.Count()
	if count != seed.DefaultCampaignCount {
		t.Errorf("count changed after second seed: %d", count)
	}
}

func TestUpdateStatusFollowsTransitionTable(t *testing.T) {
	repo := &fakeCampaignRepo{}
	svc := newCampaignService(repo)

	created, err := svc.Create(model.CampaignDraft{Name: "Lifecycle"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// draft -> active -> paused -> completed is the happy path
	for _, next := range []model.CampaignStatus{model.StatusActive, model.StatusPaused, model.StatusCompleted} {
		updated, err := svc.UpdateStatus(created.ID, next)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", next, err)
		}
		if updated.Status != next {
			t.Errorf("expected status %s, got %s", next, updated.Status)
		}
	}

	// completed is terminal
	_, err = svc.UpdateStatus(created.ID, model.StatusActive)
	var illegal *appErrors.ErrIllegalTransition
	if !errors.As(err, &illegal) {
		t.Fatalf("expected ErrIllegalTransition for completed -> active, got %v", err)
	}
	if illegal.From != "completed" || illegal.To != "active" {
		t.Errorf("unexpected transition details: %+v", illegal)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newCampaignService(&fakeCampaignRepo{})

	_, err := svc.UpdateStatus("c-1", model.CampaignStatus("archived"))
	var invalid *appErrors.ErrInvalidStatus
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusUnknownIDReturnsNotFound(t *testing.T) {
	svc := newCampaignService(&fakeCampaignRepo{})

	c, err := svc.UpdateStatus("nonexistent-id", model.StatusActive)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if c != nil {
		t.Error("expected nil campaign for unknown id")
	}
}

func TestDeleteNonExistentIDReturnsFalse(t *testing.T) {
	svc := newCampaignService(&fakeCampaignRepo{})

	deleted, err := svc.Delete("nonexistent-id")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for unknown id")
	}
}
