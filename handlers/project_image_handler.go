package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/config"
	"github.com/mwhart/portfoliobackend/media"
	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/repository"
)

const maxUploadBytes = 20 << 20 // 20 MiB

// ProjectImageHandler accepts project image uploads on the admin surface,
// stores the file, renders a thumbnail and records the image row.
type ProjectImageHandler struct {
	Repo  repository.ProjectRepositoryInterface
	Store media.Store
	Cfg   config.Config
}

func NewProjectImageHandler(repo repository.ProjectRepositoryInterface, store media.Store, cfg config.Config) *ProjectImageHandler {
	return &ProjectImageHandler{Repo: repo, Store: store, Cfg: cfg}
}

func (h *ProjectImageHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseIDParam(w, r, "project_id")
	if !ok {
		return
	}

	project, err := h.Repo.GetByID(r.Context(), projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Project not found")
		} else {
			log.Printf("Error loading project %d for image upload: %v", projectID, err)
			writeError(w, http.StatusInternalServerError, "Failed to load project")
		}
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing required file field: image")
		return
	}
	defer file.Close()

	if !media.IsRasterImage(header.Filename) {
		writeError(w, http.StatusBadRequest, "Unsupported image type")
		return
	}

	storedName := media.StoredFilename(header.Filename)
	relPath, err := h.Store.Save(media.AssetTypeImage, storedName, file)
	if err != nil {
		log.Printf("Error storing image for project %d: %v", projectID, err)
		writeError(w, http.StatusInternalServerError, "Failed to store image")
		return
	}

	thumbPath := ""
	if fullPath, pathErr := h.Store.GetFullPath(relPath); pathErr == nil {
		generated, thumbErr := media.GenerateThumbnail(h.Store, fullPath, h.Cfg.ThumbnailMaxSize)
		if thumbErr != nil {
			// the original is stored; a missing thumbnail only degrades the list view
			log.Printf("Error generating thumbnail for %s: %v", relPath, thumbErr)
		} else {
			thumbPath = generated
		}
	}

	isThumbnail := r.FormValue("is_thumbnail") == "true"
	displayOrder := 0
	if raw := r.FormValue("display_order"); raw != "" {
		if parsed, parseErr := strconv.Atoi(raw); parseErr == nil {
			displayOrder = parsed
		}
	}

	image := models.ProjectImage{
		ProjectID:    project.ID,
		Path:         relPath,
		ThumbPath:    thumbPath,
		AltText:      r.FormValue("alt_text"),
		DisplayOrder: displayOrder,
		IsThumbnail:  isThumbnail,
	}

	if err := h.Repo.AddImage(r.Context(), &image); err != nil {
		log.Printf("Error saving image record for project %d: %v", projectID, err)
		if delErr := h.Store.Delete(relPath); delErr != nil {
			log.Printf("Error removing orphaned upload %s: %v", relPath, delErr)
		}
		if thumbPath != "" {
			if delErr := h.Store.Delete(thumbPath); delErr != nil {
				log.Printf("Error removing orphaned thumbnail %s: %v", thumbPath, delErr)
			}
		}
		writeError(w, http.StatusInternalServerError, "Failed to save image")
		return
	}

	writeJSON(w, http.StatusCreated, toProjectImageDTO(&image))
}
