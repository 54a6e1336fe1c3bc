package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/repository"
)

// ProjectHandler serves the public project endpoints: published, non-deleted
// rows only.
type ProjectHandler struct {
	Repo repository.ProjectRepositoryInterface
}

func NewProjectHandler(repo repository.ProjectRepositoryInterface) *ProjectHandler {
	return &ProjectHandler{Repo: repo}
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Repo.ListPublished(r.Context())
	if err != nil {
		log.Printf("Error listing published projects: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve projects")
		return
	}
	writeJSON(w, http.StatusOK, toProjectListDTO(projects))
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "project_id")
	if !ok {
		return
	}

	project, err := h.Repo.GetPublishedByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
		} else {
			log.Printf("Error getting project %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve project")
		}
		return
	}
	writeJSON(w, http.StatusOK, toProjectDetailDTO(project))
}

// parseIDParam reads a positive integer URL parameter, writing a 400 on
// malformed input.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		writeError(w, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
