// internal/model/campaign.go
package model

import "time"

// CampaignStatus is a closed enumeration over the campaign lifecycle.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
)

// Valid reports whether s is one of the four known statuses.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted:
		return true
	}
	return false
}

type CompanySize struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Target struct {
	Industries  []string    `json:"industries"`
	CompanySize CompanySize `json:"companySize"`
	Locations   []string    `json:"locations"`
}

type Messaging struct {
	Subject  string `json:"subject"`
	Template string `json:"template"`
}

type Schedule struct {
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Frequency string     `json:"frequency"`
}

type Metrics struct {
	Sent      int `json:"sent"`
	Opened    int `json:"opened"`
	Responded int `json:"responded"`
	Converted int `json:"converted"`
}

type Campaign struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Status      CampaignStatus `json:"status"`
	Target      Target         `json:"target"`
	Messaging   Messaging      `json:"messaging"`
	Schedule    Schedule       `json:"schedule"`
	Metrics     Metrics        `json:"metrics"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// CampaignDraft is the form-data shape: no id, no metrics, no timestamps.
type CampaignDraft struct {
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	Industries     []string   `json:"industries"`
	MinCompanySize int        `json:"minCompanySize"`
	MaxCompanySize int        `json:"maxCompanySize"`
	Locations      []string   `json:"locations"`
	Subject        string     `json:"subject"`
	Template       string     `json:"template"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Frequency      string     `json:"frequency"`
}

// CampaignPatch carries only the fields the caller wants changed. A nil field
// leaves the stored value untouched, which also means a patch cannot clear
// schedule_end_date once set.
type CampaignPatch struct {
	Name           *string    `json:"name"`
	Description    *string    `json:"description"`
	Industries     *[]string  `json:"industries"`
	MinCompanySize *int       `json:"minCompanySize"`
	MaxCompanySize *int       `json:"maxCompanySize"`
	Locations      *[]string  `json:"locations"`
	Subject        *string    `json:"subject"`
	Template       *string    `json:"template"`
	StartDate      *time.Time `json:"startDate"`
	EndDate        *time.Time `json:"endDate"`
	Frequency      *string    `json:"frequency"`
}

// IsEmpty reports whether the patch would change nothing.
func (p CampaignPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Industries == nil &&
		p.MinCompanySize == nil && p.MaxCompanySize == nil && p.Locations == nil &&
		p.Subject == nil && p.Template == nil && p.StartDate == nil &&
		p.EndDate == nil && p.Frequency == nil
}
