package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SallahBoussettah/portfolio-api/internal/config"
	"github.com/SallahBoussettah/portfolio-api/internal/constants"
	"github.com/SallahBoussettah/portfolio-api/internal/utils"
)

var (
	ErrInvalidFileType       = errors.New("only image uploads are accepted")
	ErrFileTooLarge          = errors.New("file exceeds the maximum upload size")
	ErrInvalidUploadCategory = errors.New("invalid upload category")
	ErrUploadNotFound        = errors.New("uploaded file not found")
)

// UploadService stores image uploads on local disk under category-specific
// directories and builds public URLs for them.
type UploadService struct {
	baseDir string
	baseURL string
}

// NewUploadService creates a new UploadService
func NewUploadService(cfg *config.Config) *UploadService {
	return &UploadService{
		baseDir: cfg.UploadDir,
		baseURL: strings.TrimRight(cfg.UploadBaseURL, "/"),
	}
}

// SaveImage validates and writes a multipart image upload, returning its
// public URL. Filenames combine a timestamp with a random suffix so
// collisions are not a practical concern.
func (s *UploadService) SaveImage(file *multipart.FileHeader, category string) (string, error) {
	if !utils.IsValidSlug(category) {
		return "", ErrInvalidUploadCategory
	}
	if file.Size > constants.MaxUploadSizeBytes {
		return "", ErrFileTooLarge
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrInvalidFileType
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	filename := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.NewString()[:8], ext)

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(dir, filename)
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	log.Info().Str("category", category).Str("file", filename).Int64("size", file.Size).Msg("Image uploaded")

	return fmt.Sprintf("%s%s/%s/%s", s.baseURL, constants.UploadURLPrefix, category, filename), nil
}

// Delete removes a previously uploaded file given its URL path
// (/uploads/<category>/<filename>). Paths that escape the upload directory
// are rejected.
func (s *UploadService) Delete(urlPath string) error {
	rel := strings.TrimPrefix(urlPath, constants.UploadURLPrefix+"/")
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return ErrUploadNotFound
	}

	path := filepath.Join(s.baseDir, rel)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrUploadNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	log.Info().Str("file", rel).Msg("Uploaded file deleted")
	return nil
}
