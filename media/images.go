package media

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var supportedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// IsRasterImage checks if the filename has a supported image extension
func IsRasterImage(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return supportedImageExtensions[ext]
}

// StoredFilename generates a collision-free name for an upload, keeping the
// original extension.
func StoredFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return uuid.NewString() + ext
}

// GenerateThumbnail renders a JPEG thumbnail of the stored image, bounded by
// maxSize on the longest side, and saves it to the store. It returns the
// thumbnail's relative path.
func GenerateThumbnail(store Store, originalFullPath string, maxSize int) (string, error) {
	img, err := imaging.Open(originalFullPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", originalFullPath, err)
	}

	thumb := imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail for %s: %w", originalFullPath, err)
	}

	thumbFilename := uuid.NewString() + ".jpg"
	relPath, err := store.Save(AssetTypeThumbnail, thumbFilename, &buf)
	if err != nil {
		return "", fmt.Errorf("failed to save thumbnail for %s: %w", originalFullPath, err)
	}
	return relPath, nil
}
