package handlers

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhart/portfoliobackend/config"
	"github.com/mwhart/portfoliobackend/media"
	"github.com/mwhart/portfoliobackend/models"
	"github.com/mwhart/portfoliobackend/repository"
)

func newUploadTestFixture(t *testing.T) (*ProjectImageHandler, *repository.ProjectRepository, media.Store) {
	t.Helper()

	db := newTestDB(t)
	repo := repository.NewProjectRepository(db)

	store, err := media.NewLocalStorage(t.TempDir(), map[media.AssetType]string{
		media.AssetTypeImage:     "images",
		media.AssetTypeThumbnail: "thumbnails",
	})
	require.NoError(t, err)

	cfg := config.Config{ThumbnailMaxSize: 64}
	return NewProjectImageHandler(repo, store, cfg), repo, store
}

func uploadRouter(h *ProjectImageHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/api/admin/projects/{project_id}/images", h.UploadImage)
	return r
}

func pngUploadBody(t *testing.T, fieldValues map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 200, 120))
	for x := 0; x < 200; x++ {
		for y := 0; y < 120; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 40, A: 255})
		}
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "screenshot.png")
	require.NoError(t, err)
	require.NoError(t, png.Encode(part, img))
	for key, value := range fieldValues {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUploadImageStoresThumbnail(t *testing.T) {
	handler, repo, store := newUploadTestFixture(t)

	project := models.Project{Title: "Portfolio Website", ShortDescription: "Site", Status: models.ProjectStatusPublished}
	require.NoError(t, repo.DB.Create(&project).Error)

	body, contentType := pngUploadBody(t, map[string]string{
		"alt_text":     "homepage",
		"is_thumbnail": "true",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/1/images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	uploadRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var dto ProjectImageDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.True(t, strings.HasPrefix(dto.Path, "images/"), "path: %s", dto.Path)
	require.True(t, strings.HasPrefix(dto.ThumbPath, "thumbnails/"), "thumb_path: %s", dto.ThumbPath)
	assert.Equal(t, "homepage", dto.AltText)
	assert.True(t, dto.IsThumbnail)

	// both files exist on disk and the row carries the thumbnail path
	for _, rel := range []string{dto.Path, dto.ThumbPath} {
		full, err := store.GetFullPath(rel)
		require.NoError(t, err)
		_, err = os.Stat(full)
		assert.NoError(t, err, "missing stored file %s", rel)
	}

	var row models.ProjectImage
	require.NoError(t, repo.DB.First(&row, dto.ID).Error)
	assert.Equal(t, dto.ThumbPath, row.ThumbPath)
	assert.Equal(t, project.ID, row.ProjectID)
}

func TestUploadImageCleansUpFilesWhenInsertFails(t *testing.T) {
	handler, repo, store := newUploadTestFixture(t)

	project := models.Project{Title: "Portfolio Website", ShortDescription: "Site", Status: models.ProjectStatusPublished}
	require.NoError(t, repo.DB.Create(&project).Error)

	// dropping the table makes the row insert fail after both files are written
	require.NoError(t, repo.DB.Migrator().DropTable(&models.ProjectImage{}))

	body, contentType := pngUploadBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/1/images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	uploadRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	imagesDir, err := store.GetFullPath("images")
	require.NoError(t, err)
	thumbsDir, err := store.GetFullPath("thumbnails")
	require.NoError(t, err)
	for _, dir := range []string{imagesDir, thumbsDir} {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries, "orphaned files left in %s", filepath.Base(dir))
	}
}

func TestUploadImageUnknownProject(t *testing.T) {
	handler, _, _ := newUploadTestFixture(t)

	body, contentType := pngUploadBody(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/999/images", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	uploadRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUploadImageRejectsUnsupportedType(t *testing.T) {
	handler, repo, _ := newUploadTestFixture(t)

	project := models.Project{Title: "Portfolio Website", ShortDescription: "Site", Status: models.ProjectStatusPublished}
	require.NoError(t, repo.DB.Create(&project).Error)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("image", "notes.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("not an image"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/projects/1/images", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	uploadRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
