package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/leadpilot/leadpilot-backend/internal/model"
)

// The two configuration kinds are singletons: Save checks for an existing row
// and either patches it or inserts the first one (upsert-by-presence). Two
// concurrent first saves can both miss the presence check and both insert;
// the schema carries no unique constraint to stop that, so the limitation
// stands as documented rather than being papered over here.

type ICPConfigurationRepositoryInterface interface {
	Get() (*model.ICPConfiguration, error)
	Save(cfg *model.ICPConfiguration) (*model.ICPConfiguration, error)
}

type ICPConfigurationRepository struct {
	DB *sql.DB
}

func (r *ICPConfigurationRepository) Get() (*model.ICPConfiguration, error) {
	query := `
        SELECT target_industries, company_size, annual_revenue, target_locations, target_job_titles, updated_at
        FROM icp_configurations
        ORDER BY created_at
        LIMIT 1
    `
	var cfg model.ICPConfiguration
	var updatedAt time.Time
	err := r.DB.QueryRow(query).Scan(
		&cfg.TargetIndustries, &cfg.CompanySize, &cfg.AnnualRevenue,
		&cfg.TargetLocations, &cfg.TargetJobTitles, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no row yet
		}
		return nil, err
	}
	cfg.UpdatedAt = &updatedAt
	return &cfg, nil
}

func (r *ICPConfigurationRepository) Save(cfg *model.ICPConfiguration) (*model.ICPConfiguration, error) {
	now := time.Now().UTC()

	var id string
	err := r.DB.QueryRow(`SELECT id FROM icp_configurations ORDER BY created_at LIMIT 1`).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		id = uuid.New().String()
		insert := `
            INSERT INTO icp_configurations (id, target_industries, company_size, annual_revenue, target_locations, target_job_titles, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `
		if _, err := r.DB.Exec(insert, id, cfg.TargetIndustries, cfg.CompanySize, cfg.AnnualRevenue, cfg.TargetLocations, cfg.TargetJobTitles, now, now); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		update := `
            UPDATE icp_configurations
            SET target_industries=$1, company_size=$2, annual_revenue=$3, target_locations=$4, target_job_titles=$5, updated_at=$6
            WHERE id=$7
        `
		if _, err := r.DB.Exec(update, cfg.TargetIndustries, cfg.CompanySize, cfg.AnnualRevenue, cfg.TargetLocations, cfg.TargetJobTitles, now, id); err != nil {
			return nil, err
		}
	}

	saved := *cfg
	saved.UpdatedAt = &now
	return &saved, nil
}

var _ ICPConfigurationRepositoryInterface = (*ICPConfigurationRepository)(nil)

type LeadAutomationConfigurationRepositoryInterface interface {
	Get() (*model.LeadAutomationConfiguration, error)
	Save(cfg *model.LeadAutomationConfiguration) (*model.LeadAutomationConfiguration, error)
}

type LeadAutomationConfigurationRepository struct {
	DB *sql.DB
}

func (r *LeadAutomationConfigurationRepository) Get() (*model.LeadAutomationConfiguration, error) {
	query := `
        SELECT search_url, campaign_id, workspace, industry, updated_at
        FROM lead_automation_configurations
        ORDER BY created_at
        LIMIT 1
    `
	var cfg model.LeadAutomationConfiguration
	var updatedAt time.Time
	err := r.DB.QueryRow(query).Scan(&cfg.SearchURL, &cfg.CampaignID, &cfg.Workspace, &cfg.Industry, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // no row yet
		}
		return nil, err
	}
	cfg.UpdatedAt = &updatedAt
	return &cfg, nil
}

func (r *LeadAutomationConfigurationRepository) Save(cfg *model.LeadAutomationConfiguration) (*model.LeadAutomationConfiguration, error) {
	now := time.Now().UTC()

	var id string
	err := r.DB.QueryRow(`SELECT id FROM lead_automation_configurations ORDER BY created_at LIMIT 1`).Scan(&id)
	switch {
	case err == sql.ErrNoRows:
		id = uuid.New().String()
		insert := `
            INSERT INTO lead_automation_configurations (id, search_url, campaign_id, workspace, industry, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7)
        `
		if _, err := r.DB.Exec(insert, id, cfg.SearchURL, cfg.CampaignID, cfg.Workspace, cfg.Industry, now, now); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		update := `
            UPDATE lead_automation_configurations
            SET search_url=$1, campaign_id=$2, workspace=$3, industry=$4, updated_at=$5
            WHERE id=$6
        `
		if _, err := r.DB.Exec(update, cfg.SearchURL, cfg.CampaignID, cfg.Workspace, cfg.Industry, now, id); err != nil {
			return nil, err
		}
	}

	saved := *cfg
	saved.UpdatedAt = &now
	return &saved, nil
}

var _ LeadAutomationConfigurationRepositoryInterface = (*LeadAutomationConfigurationRepository)(nil)
