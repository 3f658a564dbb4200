// internal/model/template.go
package model

import "time"

type TemplateCategory string

const (
	CategoryEmail    TemplateCategory = "email"
	CategoryLinkedIn TemplateCategory = "linkedin"
	CategoryMessage  TemplateCategory = "message"
	CategoryOther    TemplateCategory = "other"
)

func (c TemplateCategory) Valid() bool {
	switch c {
	case CategoryEmail, CategoryLinkedIn, CategoryMessage, CategoryOther:
		return true
	}
	return false
}

// Template is a reusable outreach message. Subject is only set for email
// templates; content may contain {{placeholder}} tokens that this layer
// never interprets.
type Template struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Category  TemplateCategory `json:"category"`
	Subject   *string          `json:"subject,omitempty"`
	Content   string           `json:"content"`
	Tags      []string         `json:"tags"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type TemplateDraft struct {
	Name     string           `json:"name"`
	Category TemplateCategory `json:"category"`
	Subject  *string          `json:"subject"`
	Content  string           `json:"content"`
	Tags     []string         `json:"tags"`
}

// TemplatePatch is sparse: nil fields stay untouched. Setting Subject to an
// empty string stores NULL, mirroring the form sending subject || null.
type TemplatePatch struct {
	Name     *string           `json:"name"`
	Category *TemplateCategory `json:"category"`
	Subject  *string           `json:"subject"`
	Content  *string           `json:"content"`
	Tags     *[]string         `json:"tags"`
}

func (p TemplatePatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Subject == nil &&
		p.Content == nil && p.Tags == nil
}
