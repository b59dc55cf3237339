package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trannghia/learnhub/config"
)

var (
	videoExts    = map[string]bool{".mp4": true, ".mkv": true, ".webm": true}
	materialExts = map[string]bool{
		".pdf": true, ".docx": true, ".pptx": true, ".ppt": true,
		".zip": true, ".txt": true, ".jpg": true, ".jpeg": true, ".png": true,
	}
	photoExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
)

// FileStore writes uploads to local disk under the configured roots. Files
// are renamed to a uuid to avoid collisions and path tricks; only the stored
// filename is persisted alongside the database row.
type FileStore struct {
	cfg *config.Config
}

func NewFileStore(cfg *config.Config) *FileStore {
	return &FileStore{cfg: cfg}
}

func (s *FileStore) SaveVideo(fh *multipart.FileHeader) (string, error) {
	return s.save(s.cfg.Uploads.VideoDir, fh, videoExts)
}

func (s *FileStore) SaveMaterial(fh *multipart.FileHeader) (string, error) {
	return s.save(s.cfg.Uploads.MaterialDir, fh, materialExts)
}

func (s *FileStore) SavePhoto(fh *multipart.FileHeader) (string, error) {
	return s.save(s.cfg.Uploads.PhotoDir, fh, photoExts)
}

func (s *FileStore) save(dir string, fh *multipart.FileHeader, allowed map[string]bool) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowed[ext] {
		return "", fmt.Errorf("file type %q is not allowed", ext)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}

	name := uuid.NewString() + ext
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return name, nil
}

func (s *FileStore) RemoveVideo(filename string)    { s.remove(s.cfg.Uploads.VideoDir, filename) }
func (s *FileStore) RemoveMaterial(filename string) { s.remove(s.cfg.Uploads.MaterialDir, filename) }

// remove ignores missing files: the row is the source of truth and a
// dangling filename should not block the delete.
func (s *FileStore) remove(dir, filename string) {
	if filename == "" {
		return
	}
	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove uploaded file")
	}
}
