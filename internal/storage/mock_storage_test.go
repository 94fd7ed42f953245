package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockStorageService(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewMockStorageService("http://localhost:8080", dir)
	assert.NoError(t, err)

	ctx := context.Background()

	t.Run("Upload returns public URL and writes file", func(t *testing.T) {
		url, err := svc.UploadImage(ctx, "listings/1_dress.jpg", "image/jpeg", strings.NewReader("fake-bytes"))
		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/listings/1_dress.jpg", url)

		data, err := os.ReadFile(filepath.Join(dir, "listings", "1_dress.jpg"))
		assert.NoError(t, err)
		assert.Equal(t, "fake-bytes", string(data))
	})

	t.Run("Delete removes file", func(t *testing.T) {
		_, err := svc.UploadImage(ctx, "gone.jpg", "image/jpeg", strings.NewReader("x"))
		assert.NoError(t, err)
		assert.NoError(t, svc.DeleteImage(ctx, "gone.jpg"))
		_, err = os.Stat(filepath.Join(dir, "gone.jpg"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("Delete of missing file is not an error", func(t *testing.T) {
		assert.NoError(t, svc.DeleteImage(ctx, "never-there.jpg"))
	})
}
