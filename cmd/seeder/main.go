// cmd/seeder/main.go
//
// Applies the schema and bootstraps an empty store with sample data. Safe to
// run repeatedly: the schema uses IF NOT EXISTS and seeding checks emptiness
// before every insert attempt.
package main

import (
	"log"
	"os"
	"time"

	"github.com/leadpilot/leadpilot-backend/internal/config"
	"github.com/leadpilot/leadpilot-backend/internal/db"
	"github.com/leadpilot/leadpilot-backend/internal/repository"
	"github.com/leadpilot/leadpilot-backend/internal/seed"
	"github.com/leadpilot/leadpilot-backend/internal/service"
)

func main() {
	cfg, err := config.LoadFromEnv("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	conn, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer conn.Close()

	schema, err := os.ReadFile("migrations/schema.sql")
	if err != nil {
		log.Fatalf("failed to read schema: %v", err)
	}
	if _, err := conn.Exec(string(schema)); err != nil {
		log.Fatalf("failed to apply schema: %v", err)
	}
	log.Println("✅ Schema applied")

	campaignService := &service.CampaignService{
		Repo: &repository.CampaignRepository{DB: conn},
		Gen:  seed.NewGenerator(time.Now().UnixNano()),
	}
	templateService := &service.TemplateService{
		Repo: &repository.TemplateRepository{DB: conn},
	}

	seeded, err := campaignService.SeedIfEmpty(cfg.Seed.Campaigns)
	if err != nil {
		log.Fatalf("failed to seed campaigns: %v", err)
	}
	if seeded == 0 {
		log.Println("Campaigns already present, nothing to seed")
	}

	seeded, err = templateService.SeedIfEmpty()
	if err != nil {
		log.Fatalf("failed to seed templates: %v", err)
	}
	if seeded == 0 {
		log.Println("Templates already present, nothing to seed")
	}

	log.Println("Database seeding completed successfully!")
}
