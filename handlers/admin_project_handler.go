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

// Content writes are accepted and validated but not persisted: the site runs
// off the seeded catalog. Creates report this placeholder identifier, updates
// and deletes report success.
// TODO: wire content writes to the repositories once the admin dashboard ships
const placeholderCreateID = 1

func writeCreateAccepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusCreated, map[string]int{"id": placeholderCreateID})
}

func writeWriteAccepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// AdminProjectHandler serves the authenticated project endpoints: all
// statuses are visible, soft-deleted rows still are not.
type AdminProjectHandler struct {
	Repo repository.ProjectRepositoryInterface
}

func NewAdminProjectHandler(repo repository.ProjectRepositoryInterface) *AdminProjectHandler {
	return &AdminProjectHandler{Repo: repo}
}

type ProjectWritePayload struct {
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Technologies     []string `json:"technologies"`
	GithubURL        string   `json:"github_url"`
	DemoURL          string   `json:"demo_url"`
	DisplayOrder     int      `json:"display_order"`
	Status           int      `json:"status"`
}

func (p *ProjectWritePayload) validate(w http.ResponseWriter) bool {
	if strings.TrimSpace(p.Title) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: title")
		return false
	}
	if strings.TrimSpace(p.ShortDescription) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: short_description")
		return false
	}
	return true
}

func (h *AdminProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	var (
		projects []models.Project
		err      error
	)
	// ?include_deleted=true ignores the soft-delete filter for diagnostics
	if r.URL.Query().Get("include_deleted") == "true" {
		projects, err = h.Repo.ListAllIncludingDeleted(r.Context())
	} else {
		projects, err = h.Repo.ListAllAdmin(r.Context())
	}
	if err != nil {
		log.Printf("Error listing projects for admin: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}
	writeJSON(w, http.StatusOK, toProjectListDTO(projects))
}

func (h *AdminProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "project_id")
	if !ok {
		return
	}

	project, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
		} else {
			log.Printf("Error getting project %d for admin: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve project")
		}
		return
	}
	writeJSON(w, http.StatusOK, toProjectDetailDTO(project))
}

func (h *AdminProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var payload ProjectWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeCreateAccepted(w)
}

func (h *AdminProjectHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "project_id"); !ok {
		return
	}
	var payload ProjectWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeWriteAccepted(w)
}

func (h *AdminProjectHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "project_id"); !ok {
		return
	}
	writeWriteAccepted(w)
}
