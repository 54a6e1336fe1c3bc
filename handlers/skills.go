package handlers

import (
	"log"
	"net/http"

	"github.com/mwhart/portfoliobackend/repository"
)

// SkillHandler serves the public skills endpoint.
type SkillHandler struct {
	Repo repository.SkillRepositoryInterface
}

func NewSkillHandler(repo repository.SkillRepositoryInterface) *SkillHandler {
	return &SkillHandler{Repo: repo}
}

func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Repo.ListAll(r.Context())
	if err != nil {
		log.Printf("Error listing skills: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve skills")
		return
	}
	writeJSON(w, http.StatusOK, toSkillListDTO(skills))
}
