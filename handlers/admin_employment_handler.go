package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/repository"
)

// AdminEmploymentHandler serves the authenticated work-history endpoints.
type AdminEmploymentHandler struct {
	Repo repository.EmploymentRepositoryInterface
}

func NewAdminEmploymentHandler(repo repository.EmploymentRepositoryInterface) *AdminEmploymentHandler {
	return &AdminEmploymentHandler{Repo: repo}
}

type EmploymentWritePayload struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	StartDate        string   `json:"start_date"`
	EndDate          *string  `json:"end_date"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
	DisplayOrder     int      `json:"display_order"`
}

func (p *EmploymentWritePayload) validate(w http.ResponseWriter) bool {
	if strings.TrimSpace(p.Company) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: company")
		return false
	}
	if strings.TrimSpace(p.Title) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: title")
		return false
	}
	return true
}

func (h *AdminEmploymentHandler) ListEmployment(w http.ResponseWriter, r *http.Request) {
	var (
		entries []models.Employment
		err     error
	)
	if r.URL.Query().Get("include_deleted") == "true" {
		entries, err = h.Repo.ListAllIncludingDeleted(r.Context())
	} else {
		entries, err = h.Repo.ListAll(r.Context())
	}
	if err != nil {
		log.Printf("Error listing employment for admin: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve employment history")
		return
	}
	writeJSON(w, http.StatusOK, toEmploymentListDTO(entries))
}

func (h *AdminEmploymentHandler) GetEmployment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "employment_id")
	if !ok {
		return
	}

	entry, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Employment entry not found")
		} else {
			log.Printf("Error getting employment entry %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve employment entry")
		}
		return
	}
	writeJSON(w, http.StatusOK, toEmploymentDTO(entry))
}

func (h *AdminEmploymentHandler) CreateEmployment(w http.ResponseWriter, r *http.Request) {
	var payload EmploymentWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeCreateAccepted(w)
}

func (h *AdminEmploymentHandler) UpdateEmployment(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "employment_id"); !ok {
		return
	}
	var payload EmploymentWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeWriteAccepted(w)
}

func (h *AdminEmploymentHandler) DeleteEmployment(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "employment_id"); !ok {
		return
	}
	writeWriteAccepted(w)
}
