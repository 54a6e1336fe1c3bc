package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AssetServer creates a handler serving stored files from a subdirectory of
// the media storage root. routePrefix is the full mount path the handler is
// registered under, e.g.
//
//	r.Get("/api/images/*", AssetServer("/api/images/", cfg.MediaStoragePath, "images"))
func AssetServer(routePrefix, baseStoragePath, subDir string) http.HandlerFunc {
	cleanedBase := filepath.Clean(baseStoragePath)
	fullAssetDirPath := filepath.Clean(filepath.Join(cleanedBase, subDir))

	// prefix checks here and below include the separator so sibling
	// directories sharing a name prefix are rejected
	if !strings.HasPrefix(fullAssetDirPath, cleanedBase+string(os.PathSeparator)) {
		log.Fatalf("FATAL: Asset subdirectory '%s' resolved outside base storage path '%s'", subDir, baseStoragePath)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		relativePath := strings.TrimPrefix(r.URL.Path, routePrefix)

		if relativePath == r.URL.Path || relativePath == "" || strings.Contains(relativePath, "..") {
			writeError(w, http.StatusBadRequest, "Invalid asset path")
			return
		}

		cleanedAssetPath := filepath.Clean(filepath.Join(fullAssetDirPath, relativePath))
		if !strings.HasPrefix(cleanedAssetPath, fullAssetDirPath+string(os.PathSeparator)) {
			writeError(w, http.StatusForbidden, "Forbidden")
			log.Printf("SECURITY: attempted asset access outside %s: request='%s' resolved='%s'",
				fullAssetDirPath, r.URL.Path, cleanedAssetPath)
			return
		}

		if _, err := os.Stat(cleanedAssetPath); os.IsNotExist(err) {
			writeError(w, http.StatusNotFound, "Asset not found")
			return
		} else if err != nil {
			log.Printf("Error stating asset file %s: %v", cleanedAssetPath, err)
			writeError(w, http.StatusInternalServerError, "Failed to serve asset")
			return
		}

		cacheDuration := 24 * time.Hour
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cacheDuration.Seconds())))
		w.Header().Set("Expires", time.Now().Add(cacheDuration).Format(http.TimeFormat))

		http.ServeFile(w, r, cleanedAssetPath)
	}
}
