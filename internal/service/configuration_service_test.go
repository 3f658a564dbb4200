package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/service"
)

// fakeICPRepo mimics upsert-by-presence over a single slot and counts rows so
// tests can assert the singleton held.
type fakeICPRepo struct {
	row  *model.ICPConfiguration
	rows int
}

func (f *fakeICPRepo) Get() (*model.ICPConfiguration, error) {
	if f.row == nil {
		return nil, nil
	}
	copied := *f.row
	return &copied, nil
}

func (f *fakeICPRepo) Save(cfg *model.ICPConfiguration) (*model.ICPConfiguration, error) {
	now := time.Now().UTC()
	if f.row == nil {
		f.rows++
	}
	copied := *cfg
	copied.UpdatedAt = &now
	f.row = &copied
	return &copied, nil
}

type fakeLeadRepo struct {
	row  *model.LeadAutomationConfiguration
	rows int
}

func (f *fakeLeadRepo) Get() (*model.LeadAutomationConfiguration, error) {
	if f.row == nil {
		return nil, nil
	}
	copied := *f.row
	return &copied, nil
}

func (f *fakeLeadRepo) Save(cfg *model.LeadAutomationConfiguration) (*model.LeadAutomationConfiguration, error) {
	now := time.Now().UTC()
	if f.row == nil {
		f.rows++
	}
	copied := *cfg
	copied.UpdatedAt = &now
	f.row = &copied
	return &copied, nil
}

func TestICPSaveTwiceKeepsSingleRowWithLatestValues(t *testing.T) {
	repo := &fakeICPRepo{}
	svc := &service.ConfigurationService{ICPRepo: repo, LeadRepo: &fakeLeadRepo{}}

	_, err := svc.SaveICP(model.ICPConfiguration{TargetIndustries: "Technology", CompanySize: "11-50"})
	require.NoError(t, err)

	saved, err := svc.SaveICP(model.ICPConfiguration{TargetIndustries: "Healthcare", CompanySize: "51-200"})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.rows, "sequential saves must not duplicate the singleton")
	assert.Equal(t, "Healthcare", saved.TargetIndustries)

	loaded, err := svc.LoadICP()
	require.NoError(t, err)
	assert.Equal(t, "Healthcare", loaded.TargetIndustries)
	assert.Equal(t, "51-200", loaded.CompanySize)
}

func TestLoadICPReturnsEmptyFormWhenUnsaved(t *testing.T) {
	svc := &service.ConfigurationService{ICPRepo: &fakeICPRepo{}, LeadRepo: &fakeLeadRepo{}}

	loaded, err := svc.LoadICP()
	require.NoError(t, err)
	require.NotNil(t, loaded, "an unsaved configuration loads as the empty form, never an error")
	assert.Empty(t, loaded.TargetIndustries)
	assert.Nil(t, loaded.UpdatedAt)
}

func TestLeadAutomationRoundTrip(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := &service.ConfigurationService{ICPRepo: &fakeICPRepo{}, LeadRepo: repo}

	loaded, err := svc.LoadLeadAutomation()
	require.NoError(t, err)
	assert.Empty(t, loaded.SearchURL)

	_, err = svc.SaveLeadAutomation(model.LeadAutomationConfiguration{
		SearchURL:  "https://example.com/search?q=cto",
		CampaignID: "camp-1",
		Workspace:  "sales",
		Industry:   "technology",
	})
	require.NoError(t, err)

	_, err = svc.SaveLeadAutomation(model.LeadAutomationConfiguration{
		SearchURL: "https://example.com/search?q=vp-eng",
		Workspace: "marketing",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.rows)

	loaded, err = svc.LoadLeadAutomation()
	require.NoError(t, err)
	assert.Equal(t, "marketing", loaded.Workspace)
	assert.NotNil(t, loaded.UpdatedAt)
}
