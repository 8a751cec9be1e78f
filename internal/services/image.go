package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

// ImageStore persists a base64-encoded upload and returns the relative path
// stored on the recipe row. Re-encoding and resizing are out of scope; the
// payload is decoded and written as-is.
type ImageStore interface {
	Save(encoded string) (string, error)
}

type imageStore struct {
	log      *logger.Logger
	mediaDir string
}

func NewImageStore(log *logger.Logger, mediaDir string) ImageStore {
	return &imageStore{log: log.With("service", "ImageStore"), mediaDir: mediaDir}
}

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Save accepts either a bare base64 string or a data URI
// ("data:image/png;base64,...").
func (is *imageStore) Save(encoded string) (string, error) {
	ext := ".png"
	payload := encoded
	if strings.HasPrefix(encoded, "data:") {
		mime, rest, ok := splitDataURI(encoded)
		if !ok {
			return "", fmt.Errorf("malformed data URI")
		}
		if mapped, known := imageExtensions[mime]; known {
			ext = mapped
		}
		payload = rest
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	dir := filepath.Join(is.mediaDir, "recipes", "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}
	name := uuid.NewString() + ext
	fullPath := filepath.Join(dir, name)
	if err := os.WriteFile(fullPath, raw, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	relPath := filepath.ToSlash(filepath.Join("recipes", "images", name))
	is.log.Debug("stored image", "path", relPath, "bytes", len(raw))
	return relPath, nil
}

func splitDataURI(uri string) (mime, payload string, ok bool) {
	rest, found := strings.CutPrefix(uri, "data:")
	if !found {
		return "", "", false
	}
	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return "", "", false
	}
	mime, _, _ = strings.Cut(meta, ";")
	return mime, payload, true
}
