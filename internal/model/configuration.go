// internal/model/configuration.go
package model

import "time"

// ICPConfiguration is the ideal-customer-profile settings form. At most one
// row exists per deployment; saving upserts it.
type ICPConfiguration struct {
	TargetIndustries string     `json:"targetIndustries"`
	CompanySize      string     `json:"companySize"`
	AnnualRevenue    string     `json:"annualRevenue"`
	TargetLocations  string     `json:"targetLocations"`
	TargetJobTitles  string     `json:"targetJobTitles"`
	UpdatedAt        *time.Time `json:"updatedAt,omitempty"`
}

// LeadAutomationConfiguration holds the lead-automation settings form, also a
// singleton. All fields are free text supplied by the dashboard.
type LeadAutomationConfiguration struct {
	SearchURL  string     `json:"searchUrl"`
	CampaignID string     `json:"campaignId"`
	Workspace  string     `json:"workspace"`
	Industry   string     `json:"industry"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}
