package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()

	base := filepath.Join(t.TempDir(), "storage")
	ls, err := NewLocalStorage(base, map[AssetType]string{
		AssetTypeImage:     "images",
		AssetTypeThumbnail: "thumbnails",
	})
	require.NoError(t, err)
	return ls, base
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	ls, base := newTestStorage(t)

	rel, err := ls.Save(AssetTypeImage, "a.png", strings.NewReader("pixels"))
	require.NoError(t, err)
	assert.Equal(t, "images/a.png", rel)

	full, err := ls.GetFullPath(rel)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "images", "a.png"), full)
	_, err = os.Stat(full)
	require.NoError(t, err)

	require.NoError(t, ls.Delete(rel))
	_, err = os.Stat(full)
	assert.True(t, os.IsNotExist(err))

	// deleting a missing asset is not an error
	assert.NoError(t, ls.Delete(rel))
}

func TestLocalStorageSaveRejectsBadFilenames(t *testing.T) {
	ls, _ := newTestStorage(t)

	for _, name := range []string{"", "../escape.png", "nested/a.png", `nested\a.png`} {
		_, err := ls.Save(AssetTypeImage, name, strings.NewReader("x"))
		assert.Error(t, err, "filename %q", name)
	}
}

func TestLocalStorageGetFullPathContainment(t *testing.T) {
	ls, base := newTestStorage(t)

	// a sibling directory sharing the root's name prefix must not pass the check
	sibling := base + "2"
	require.NoError(t, os.MkdirAll(sibling, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sibling, "secret.txt"), []byte("s"), 0644))

	for _, rel := range []string{
		"../storage2/secret.txt",
		"../../../etc/passwd",
	} {
		_, err := ls.GetFullPath(rel)
		assert.Error(t, err, "path %q", rel)
	}

	full, err := ls.GetFullPath("thumbnails/t.jpg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "thumbnails", "t.jpg"), full)
}

func TestNewLocalStorageRejectsEscapingSubdir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "storage")
	require.NoError(t, os.MkdirAll(base, 0755))

	_, err := NewLocalStorage(base, map[AssetType]string{
		AssetTypeImage: "../storage2",
	})
	assert.Error(t, err)
}
