// internal/service/configuration_service.go
package service

import (
	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/repository"
)

// ConfigurationService fronts the two singleton configuration kinds. Load
// never errors just because nothing has been saved yet; it hands back the
// empty form instead. Save is upsert-by-presence, so the caller never needs
// to know whether a row already existed.
type ConfigurationService struct {
	ICPRepo  repository.ICPConfigurationRepositoryInterface
	LeadRepo repository.LeadAutomationConfigurationRepositoryInterface
}

func (s *ConfigurationService) LoadICP() (*model.ICPConfiguration, error) {
	cfg, err := s.ICPRepo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &model.ICPConfiguration{}, nil
	}
	return cfg, nil
}

func (s *ConfigurationService) SaveICP(cfg model.ICPConfiguration) (*model.ICPConfiguration, error) {
	return s.ICPRepo.Save(&cfg)
}

func (s *ConfigurationService) LoadLeadAutomation() (*model.LeadAutomationConfiguration, error) {
	cfg, err := s.LeadRepo.Get()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return &model.LeadAutomationConfiguration{}, nil
	}
	return cfg, nil
}

func (s *ConfigurationService) SaveLeadAutomation(cfg model.LeadAutomationConfiguration) (*model.LeadAutomationConfiguration, error) {
	return s.LeadRepo.Save(&cfg)
}
