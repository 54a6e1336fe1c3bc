package handlers

import (
	"log"
	"net/http"

	"github.com/mwhart/portfoliobackend/repository"
)

// AdminContactHandler lists received contact submissions. Mark-read and
// delete are accepted but not persisted, matching the other content writes.
type AdminContactHandler struct {
	Repo repository.ContactRepositoryInterface
}

func NewAdminContactHandler(repo repository.ContactRepositoryInterface) *AdminContactHandler {
	return &AdminContactHandler{Repo: repo}
}

func (h *AdminContactHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.Repo.ListAll(r.Context())
	if err != nil {
		log.Printf("Error listing contact submissions: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve submissions")
		return
	}
	writeJSON(w, http.StatusOK, toContactSubmissionListDTO(submissions))
}

func (h *AdminContactHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "submission_id"); !ok {
		return
	}
	writeWriteAccepted(w)
}

func (h *AdminContactHandler) DeleteSubmission(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "submission_id"); !ok {
		return
	}
	writeWriteAccepted(w)
}
