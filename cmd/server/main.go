// cmd/server/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/leadpilot/leadpilot-backend/internal/config"
	"github.com/leadpilot/leadpilot-backend/internal/db"
	"github.com/leadpilot/leadpilot-backend/internal/handler"
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
	log.Println("✅ Connected to database")

	campaignRepo := &repository.CampaignRepository{DB: conn}
	templateRepo := &repository.TemplateRepository{DB: conn}
	icpRepo := &repository.ICPConfigurationRepository{DB: conn}
	leadRepo := &repository.LeadAutomationConfigurationRepository{DB: conn}

	campaignService := &service.CampaignService{
		Repo: campaignRepo,
		Gen:  seed.NewGenerator(time.Now().UnixNano()),
	}
	templateService := &service.TemplateService{Repo: templateRepo}
	configurationService := &service.ConfigurationService{
		ICPRepo:  icpRepo,
		LeadRepo: leadRepo,
	}

	campaignHandler := &handler.CampaignHandler{Service: campaignService}
	templateHandler := &handler.TemplateHandler{Service: templateService}
	configurationHandler := &handler.ConfigurationHandler{Service: configurationService}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// Campaign routes
	r.Get("/campaigns", campaignHandler.ListCampaigns)
	r.Post("/campaigns", campaignHandler.CreateCampaign)
	r.Get("/campaigns/{id}", campaignHandler.GetCampaign)
	r.Patch("/campaigns/{id}", campaignHandler.UpdateCampaign)
	r.Patch("/campaigns/{id}/status", campaignHandler.UpdateCampaignStatus)
	r.Delete("/campaigns/{id}", campaignHandler.DeleteCampaign)

	// Template routes
	r.Get("/templates", templateHandler.ListTemplates)
	r.Post("/templates", templateHandler.CreateTemplate)
	r.Get("/templates/{id}", templateHandler.GetTemplate)
	r.Patch("/templates/{id}", templateHandler.UpdateTemplate)
	r.Delete("/templates/{id}", templateHandler.DeleteTemplate)

	// Configuration routes (singletons: load + upsert only)
	r.Get("/configurations/icp", configurationHandler.GetICP)
	r.Put("/configurations/icp", configurationHandler.SaveICP)
	r.Get("/configurations/lead-automation", configurationHandler.GetLeadAutomation)
	r.Put("/configurations/lead-automation", configurationHandler.SaveLeadAutomation)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Println("🚀 Server running on", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
