package handlers

import (
	"log"
	"net/http"

	"github.com/mwhart/portfoliobackend/repository"
)

// EmploymentHandler serves the public work-history endpoint.
type EmploymentHandler struct {
	Repo repository.EmploymentRepositoryInterface
}

func NewEmploymentHandler(repo repository.EmploymentRepositoryInterface) *EmploymentHandler {
	return &EmploymentHandler{Repo: repo}
}

func (h *EmploymentHandler) ListEmployment(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Repo.ListAll(r.Context())
	if err != nil {
		log.Printf("Error listing employment: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve employment history")
		return
	}
	writeJSON(w, http.StatusOK, toEmploymentListDTO(entries))
}
