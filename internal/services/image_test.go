package services

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/recipebox/recipebox-backend/internal/pkg/logger"
)

func TestImageStore_SaveDecodesDataURI(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(logger.Nop(), dir)

	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	encoded := "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw)

	relPath, err := store.Save(encoded)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(relPath, "recipes/images/") || !strings.HasSuffix(relPath, ".png") {
		t.Fatalf("unexpected path %q", relPath)
	}

	written, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(relPath)))
	if err != nil {
		t.Fatalf("read written file: %v", err)
	}
	if string(written) != string(raw) {
		t.Fatalf("payload mismatch: %v", written)
	}
}

func TestImageStore_SaveAcceptsBareBase64(t *testing.T) {
	store := NewImageStore(logger.Nop(), t.TempDir())

	relPath, err := store.Save(base64.StdEncoding.EncodeToString([]byte("jpegdata")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(relPath, ".png") {
		t.Fatalf("expected default extension, got %q", relPath)
	}
}

func TestImageStore_SaveRejectsGarbage(t *testing.T) {
	store := NewImageStore(logger.Nop(), t.TempDir())

	if _, err := store.Save("%%% not base64 %%%"); err == nil {
		t.Fatal("expected decode error")
	}
	if _, err := store.Save("data:image/png;base64"); err == nil {
		t.Fatal("expected malformed data URI error")
	}
}
