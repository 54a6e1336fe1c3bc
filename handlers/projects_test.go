package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/repository"
)

func projectsRouter(h *ProjectHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/projects", h.ListProjects)
	r.Get("/api/projects/{project_id}", h.GetProject)
	return r
}

func seedPublicProjects(t *testing.T, db *gorm.DB) []models.Project {
	t.Helper()
	projects := []models.Project{
		{Title: "Live", ShortDescription: "s", DisplayOrder: 1, Status: models.ProjectStatusPublished,
			Images: []models.ProjectImage{{Path: "images/t.png", IsThumbnail: true}}},
		{Title: "Draft", ShortDescription: "s", DisplayOrder: 2, Status: models.ProjectStatusDraft},
		{Title: "Hidden", ShortDescription: "s", DisplayOrder: 3, Status: models.ProjectStatusPublished, IsDeleted: true},
	}
	require.NoError(t, db.Create(&projects).Error)
	return projects
}

func TestPublicListProjects(t *testing.T) {
	db := newTestDB(t)
	seedPublicProjects(t, db)

	router := projectsRouter(NewProjectHandler(repository.NewProjectRepository(db)))
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []ProjectListItemDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1, "drafts and soft-deleted rows stay off the public site")
	assert.Equal(t, "Live", got[0].Title)
	assert.Equal(t, "images/t.png", got[0].ThumbnailPath)
}

func TestPublicGetProject(t *testing.T) {
	db := newTestDB(t)
	projects := seedPublicProjects(t, db)

	router := projectsRouter(NewProjectHandler(repository.NewProjectRepository(db)))

	t.Run("published project is returned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/"+itoa(projects[0].ID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("draft project is a 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/"+itoa(projects[1].ID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/projects/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
