// internal/handler/configuration_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/leadpilot/leadpilot-backend/internal/model"
	"github.com/leadpilot/leadpilot-backend/internal/service"
)

type ConfigurationHandler struct {
	Service *service.ConfigurationService
}

// GetICP always answers 200: an unsaved configuration is the empty form,
// not an error.
func (h *ConfigurationHandler) GetICP(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Service.LoadICP()
	if err != nil {
		http.Error(w, "failed to load ICP configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (h *ConfigurationHandler) SaveICP(w http.ResponseWriter, r *http.Request) {
	var cfg model.ICPConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.Service.SaveICP(cfg)
	if err != nil {
		http.Error(w, "failed to save ICP configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}

func (h *ConfigurationHandler) GetLeadAutomation(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.Service.LoadLeadAutomation()
	if err != nil {
		http.Error(w, "failed to load lead automation configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cfg)
}

func (h *ConfigurationHandler) SaveLeadAutomation(w http.ResponseWriter, r *http.Request) {
	var cfg model.LeadAutomationConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := h.Service.SaveLeadAutomation(cfg)
	if err != nil {
		http.Error(w, "failed to save lead automation configuration: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(saved)
}
