package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// MockStorageService implements image storage on the local filesystem.
// This is for development and tests without an S3 bucket.
type MockStorageService struct {
	baseURL   string // server URL used to build public image links
	uploadDir string
}

func NewMockStorageService(baseURL, uploadDir string) (*MockStorageService, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &MockStorageService{baseURL: baseURL, uploadDir: uploadDir}, nil
}

func (m *MockStorageService) UploadImage(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	fullPath := filepath.Join(m.uploadDir, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directories: %w", err)
	}

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s", m.baseURL, key), nil
}

// UploadDir returns the local directory backing the mock store, so the
// HTTP layer can serve uploaded files from it.
func (m *MockStorageService) UploadDir() string {
	return m.uploadDir
}

func (m *MockStorageService) DeleteImage(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(m.uploadDir, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
