package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/repository"
)

// AdminSkillHandler serves the authenticated skill endpoints.
type AdminSkillHandler struct {
	Repo repository.SkillRepositoryInterface
}

func NewAdminSkillHandler(repo repository.SkillRepositoryInterface) *AdminSkillHandler {
	return &AdminSkillHandler{Repo: repo}
}

type SkillWritePayload struct {
	Name         string `json:"name"`
	Category     int    `json:"category"`
	Proficiency  int    `json:"proficiency"`
	DisplayOrder int    `json:"display_order"`
	IconURL      string `json:"icon_url"`
}

func (p *SkillWritePayload) validate(w http.ResponseWriter) bool {
	if strings.TrimSpace(p.Name) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: name")
		return false
	}
	return true
}

func (h *AdminSkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Repo.ListAll(r.Context())
	if err != nil {
		log.Printf("Error listing skills for admin: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve skills")
		return
	}
	writeJSON(w, http.StatusOK, toSkillListDTO(skills))
}

func (h *AdminSkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r, "skill_id")
	if !ok {
		return
	}

	skill, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Skill not found")
		} else {
			log.Printf("Error getting skill %d: %v", id, err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve skill")
		}
		return
	}
	writeJSON(w, http.StatusOK, toSkillDTO(skill))
}

func (h *AdminSkillHandler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var payload SkillWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeCreateAccepted(w)
}

func (h *AdminSkillHandler) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "skill_id"); !ok {
		return
	}
	var payload SkillWritePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if !payload.validate(w) {
		return
	}
	writeWriteAccepted(w)
}

func (h *AdminSkillHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseIDParam(w, r, "skill_id"); !ok {
		return
	}
	writeWriteAccepted(w)
}
