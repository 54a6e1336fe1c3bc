package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/repository"
)

// SettingHandler serves the public settings endpoints. All by-id misses are
// 404s; no endpoint returns a JSON null for a missing row.
type SettingHandler struct {
	Repo repository.SettingRepositoryInterface
}

func NewSettingHandler(repo repository.SettingRepositoryInterface) *SettingHandler {
	return &SettingHandler{Repo: repo}
}

func (h *SettingHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Repo.ListAll(r.Context())
	if err != nil {
		log.Printf("Error listing settings: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	writeJSON(w, http.StatusOK, toSettingListDTO(settings))
}

func (h *SettingHandler) ListSettingsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	if category == "" {
		writeError(w, http.StatusBadRequest, "Missing required parameter: category")
		return
	}

	settings, err := h.Repo.ListByCategory(r.Context(), category)
	if err != nil {
		log.Printf("Error listing settings for category %s: %v", category, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	writeJSON(w, http.StatusOK, toSettingListDTO(settings))
}

func (h *SettingHandler) GetSetting(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "setting_id")
	if !ok {
		return
	}

	setting, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Setting not found")
		} else {
			log.Printf("Error getting setting %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve setting")
		}
		return
	}
	writeJSON(w, http.StatusOK, toSettingDTO(setting))
}
