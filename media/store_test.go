package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSaveAndRemove(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads/")

	url, err := store.Save("summer tee.png", strings.NewReader("imagedata"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"), url)
	assert.True(t, strings.HasSuffix(url, "_summer_tee.png"), url)

	path := filepath.Join(store.Root, filepath.Base(url))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "imagedata", string(data))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreSameNameDoesNotClobber(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads")

	first, err := store.Save("banner.jpg", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := store.Save("banner.jpg", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestDiskStoreRemoveForeignURL(t *testing.T) {
	store := NewDiskStore(t.TempDir(), "/uploads")
	assert.NoError(t, store.Remove("/somewhere/else.png"))
	assert.NoError(t, store.Remove("/uploads/never-existed.png"))
}

func TestCleanFilename(t *testing.T) {
	assert.Equal(t, "a_b.png", cleanFilename("a b.png"))
	assert.Equal(t, "b.png", cleanFilename("../../a/b.png"))
	assert.Equal(t, "upload", cleanFilename(""))
}
