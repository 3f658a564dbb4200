// Package seed builds the sample records used to bootstrap an empty store.
// It only ever runs behind the emptiness check in the services' SeedIfEmpty
// and never touches the production write path.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/leadpilot/leadpilot-backend/internal/model"
)

// DefaultCampaignCount is how many sample campaigns SeedIfEmpty inserts.
const DefaultCampaignCount = 5

var (
	industries  = []string{"Technology", "Healthcare", "Finance", "Education", "Retail"}
	locations   = []string{"United States", "Europe", "Asia", "Australia", "Canada"}
	frequencies = []string{"daily", "weekly", "monthly"}
	statuses    = []model.CampaignStatus{model.StatusDraft, model.StatusActive, model.StatusPaused, model.StatusCompleted}
)

const sampleTemplateBody = "Hello {{firstName}},\n\nI noticed your company, {{companyName}}, and wanted to reach out about our services that could help with your growth goals.\n\nLet me know if you'd like to learn more.\n\nBest regards,\nThe Team"

// Generator produces schema-valid sample campaigns from a seeded source, so
// tests can pin the sequence.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Campaigns generates n sample campaigns. Metrics are drawn in descending
// chains so sent >= opened >= responded >= converted holds by construction,
// and company size ranges always satisfy max > min.
func (g *Generator) Campaigns(n int) []*model.Campaign {
	now := time.Now().UTC()
	campaigns := make([]*model.Campaign, 0, n)

	for i := 0; i < n; i++ {
		sent := g.rng.Intn(1000)
		opened := g.rng.Intn(sent + 1)
		responded := g.rng.Intn(opened + 1)
		converted := g.rng.Intn(responded + 1)

		created := now.Add(-time.Duration(g.rng.Intn(90*24)) * time.Hour)
		updated := now.Add(-time.Duration(g.rng.Intn(30*24)) * time.Hour)
		start := now.Add(-time.Duration(g.rng.Intn(30*24)) * time.Hour)

		c := &model.Campaign{
			Name:        fmt.Sprintf("Sample Campaign %d", i+1),
			Description: "This is a sample campaign for demonstration purposes.",
			Status:      statuses[g.rng.Intn(len(statuses))],
			Target: model.Target{
				Industries: []string{industries[g.rng.Intn(len(industries))]},
				CompanySize: model.CompanySize{
					Min: g.rng.Intn(50) * 10,
					Max: g.rng.Intn(50)*100 + 500,
				},
				Locations: []string{locations[g.rng.Intn(len(locations))]},
			},
			Messaging: model.Messaging{
				Subject:  "Discover how we can help your business grow",
				Template: sampleTemplateBody,
			},
			Schedule: model.Schedule{
				StartDate: &start,
				Frequency: frequencies[g.rng.Intn(len(frequencies))],
			},
			Metrics: model.Metrics{
				Sent:      sent,
				Opened:    opened,
				Responded: responded,
				Converted: converted,
			},
			CreatedAt: created,
			UpdatedAt: updated,
		}
		if g.rng.Float64() > 0.5 {
			end := now.Add(time.Duration(g.rng.Intn(30*24)) * time.Hour)
			c.Schedule.EndDate = &end
		}
		campaigns = append(campaigns, c)
	}
	return campaigns
}

func strPtr(s string) *string { return &s }

// SampleTemplates returns the fixed starter set, one per category plus a
// second email example.
func SampleTemplates() []*model.Template {
	return []*model.Template{
		{
			Name:     "Initial Outreach",
			Category: model.CategoryEmail,
			Subject:  strPtr("Opportunity to collaborate with {{companyName}}"),
			Content:  "Hi {{firstName}},\n\nI hope this email finds you well. I noticed your work at {{companyName}} and I'm impressed with what you've accomplished in {{industry}}.\n\nI'd love to discuss how our solution could help you with {{painPoint}}.\n\nWould you be open to a brief 15-minute call next week?\n\nBest regards,\n[Your Name]",
			Tags:     []string{"cold", "introduction", "collaboration"},
		},
		{
			Name:     "LinkedIn Connection",
			Category: model.CategoryLinkedIn,
			Content:  "Hi {{firstName}}, I noticed your work at {{companyName}} and would love to connect to discuss potential synergies between our companies.",
			Tags:     []string{"linkedin", "connection", "networking"},
		},
		{
			Name:     "Follow-up",
			Category: model.CategoryEmail,
			Subject:  strPtr("Following up on our previous conversation"),
			Content:  "Hi {{firstName}},\n\nI hope you've been well since our last conversation. I wanted to follow up on the points we discussed regarding {{topic}}.\n\nHave you had a chance to consider our proposal? I'd be happy to address any questions or concerns you might have.\n\nBest regards,\n[Your Name]",
			Tags:     []string{"follow-up", "nurture"},
		},
		{
			Name:     "Quick Check-in",
			Category: model.CategoryMessage,
			Content:  "Hey {{firstName}}, just checking in to see whether {{topic}} is still on your radar. Happy to pick it back up whenever suits you.",
			Tags:     []string{"check-in", "nurture"},
		},
		{
			Name:     "Event Invitation",
			Category: model.CategoryOther,
			Content:  "Hi {{firstName}}, we are hosting a roundtable for {{industry}} leaders next month and thought of you. Would you like an invite?",
			Tags:     []string{"event", "invitation"},
		},
	}
}
