package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/repository"
)

// AdminSettingHandler serves the authenticated settings endpoints.
type AdminSettingHandler struct {
	Repo repository.SettingRepositoryInterface
}

func NewAdminSettingHandler(repo repository.SettingRepositoryInterface) *AdminSettingHandler {
	return &AdminSettingHandler{Repo: repo}
}

type SettingWritePayload struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Category string `json:"category"`
}

func (p *SettingWritePayload) validate(w http.ResponseWriter) bool {
	if strings.TrimSpace(p.Key) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: key")
		return false
	}
	return true
}

func (h *AdminSettingHandler) ListSettings(w http.ResponseWriter, r *http.Request) {
	var (
		settings []models.Setting
		err      error
	)
	if r.URL.Query().Get("include_deleted") == "true" {
		settings, err = h.Repo.ListAllIncludingDeleted(r.Context())
	} else {
		settings, err = h.Repo.ListAll(r.Context())
	}
	if err != nil {
		log.Printf("Error listing settings for admin: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve settings")
		return
	}
	writeJSON(w, http.StatusOK, toSettingListDTO(settings))
}

func (h *AdminSettingHandler) CreateSetting(w http.ResponseWriter, r *http.Request) {
	var payload SettingWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeCreateAccepted(w)
}

func (h *AdminSettingHandler) UpdateSetting(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "setting_id"); !ok {
		return
	}
	var payload SettingWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeWriteAccepted(w)
}

func (h *AdminSettingHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "setting_id"); !ok {
		return
	}
	writeWriteAccepted(w)
}
