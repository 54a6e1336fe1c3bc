package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/repository"
)

const maxContactMessageLength = 5000

// ContactHandler accepts public contact-form submissions.
type ContactHandler struct {
	Repo repository.ContactRepositoryInterface
}

func NewContactHandler(repo repository.ContactRepositoryInterface) *ContactHandler {
	return &ContactHandler{Repo: repo}
}

type ContactPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var payload ContactPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: name")
		return
	}
	if strings.TrimSpace(payload.Email) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: email")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: message")
		return
	}
	if len(payload.Message) > maxContactMessageLength {
		writeError(w, http.StatusBadRequest, "Field too long: message")
		return
	}

	submission := models.ContactSubmission{
		Name:    strings.TrimSpace(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Subject: strings.TrimSpace(payload.Subject),
		Message: payload.Message,
	}

	if err := h.Repo.Create(r.Context(), &submission); err != nil {
		log.Printf("Error creating contact submission from %s: %v", submission.Email, err)
		writeError(w, http.StatusInternalServerError, "Failed to submit message")
		return
	}

	writeJSON(w, http.StatusCreated, toContactSubmissionDTO(&submission))
}
