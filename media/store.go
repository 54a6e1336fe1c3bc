package media

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// AssetType names a class of stored files, each mapped to its own
// subdirectory under the storage root.
type AssetType string

const (
	AssetTypeImage     AssetType = "images"
	AssetTypeThumbnail AssetType = "thumbnails"
)

// Store defines the interface for saving and deleting uploaded assets
type Store interface {
	// Save stores data under the asset type's directory and returns the
	// relative path (subdir/filename) the asset is served from
	Save(assetType AssetType, filename string, data io.Reader) (string, error)
	// Delete removes an asset by its relative path
	Delete(relativePath string) error
	// GetFullPath returns the absolute filesystem path for a relative asset path
	GetFullPath(relativePath string) (string, error)
}

// LocalStorage implements the Store interface using the local filesystem
type LocalStorage struct {
	basePath  string               // absolute path to the MEDIA_STORAGE_PATH
	subDirMap map[AssetType]string // maps AssetType to subdirectory name
}

// NewLocalStorage creates a new local filesystem store
func NewLocalStorage(basePath string, subDirs map[AssetType]string) (*LocalStorage, error) {
	absBasePath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("invalid base storage path '%s': %w", basePath, err)
	}

	if err := os.MkdirAll(absBasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base storage directory '%s': %w", absBasePath, err)
	}

	for assetType, subDir := range subDirs {
		fullPath := filepath.Join(absBasePath, subDir)
		// prefix check must include the separator so a sibling directory
		// sharing a name prefix (base2 next to base) is not accepted
		if !strings.HasPrefix(filepath.Clean(fullPath), absBasePath+string(os.PathSeparator)) {
			return nil, fmt.Errorf("invalid subdirectory configuration: '%s' resolves outside base path '%s'", subDir, absBasePath)
		}
		if err := os.MkdirAll(fullPath, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for asset type '%s': %w", assetType, err)
		}
	}

	log.Printf("media.store: initialized local storage at %s", absBasePath)
	return &LocalStorage{
		basePath:  absBasePath,
		subDirMap: subDirs,
	}, nil
}

func (ls *LocalStorage) assetTypeDir(assetType AssetType) (string, error) {
	subDir, ok := ls.subDirMap[assetType]
	if !ok {
		return "", fmt.Errorf("asset type '%s' is not configured", assetType)
	}
	return filepath.Join(ls.basePath, subDir), nil
}

// Save writes data into the asset type's directory under the given filename
func (ls *LocalStorage) Save(assetType AssetType, filename string, data io.Reader) (string, error) {
	dir, err := ls.assetTypeDir(assetType)
	if err != nil {
		return "", err
	}

	if filename == "" || strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return "", fmt.Errorf("invalid asset filename '%s'", filename)
	}

	targetPath := filepath.Join(dir, filename)
	out, err := os.Create(targetPath)
	if err != nil {
		return "", fmt.Errorf("failed to create asset file '%s': %w", targetPath, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, data); err != nil {
		os.Remove(targetPath)
		return "", fmt.Errorf("failed to write asset file '%s': %w", targetPath, err)
	}

	return filepath.ToSlash(filepath.Join(ls.subDirMap[assetType], filename)), nil
}

// Delete removes a stored asset. A missing file is not an error.
func (ls *LocalStorage) Delete(relativePath string) error {
	fullPath, err := ls.GetFullPath(relativePath)
	if err != nil {
		return err
	}
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete asset '%s': %w", relativePath, err)
	}
	return nil
}

// GetFullPath resolves a relative asset path against the storage root,
// rejecting traversal outside it
func (ls *LocalStorage) GetFullPath(relativePath string) (string, error) {
	fullPath := filepath.Clean(filepath.Join(ls.basePath, relativePath))
	if fullPath != ls.basePath && !strings.HasPrefix(fullPath, ls.basePath+string(os.PathSeparator)) {
		return "", fmt.Errorf("asset path '%s' resolves outside storage root", relativePath)
	}
	return fullPath, nil
}
