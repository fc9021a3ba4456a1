package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

// Store keeps the catalog as one JSON document on the local file system.
type Store struct {
	path string
}

func New(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("filestore: path is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("filestore: create data directory: %w", err)
	}

	return &Store{path: cfg.Path}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Load(ctx context.Context) ([]model.MediaItem, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Info("catalog file not found, initializing", "path", s.path)

		return []model.MediaItem{}, s.Save(ctx, nil)
	}
	if err != nil {
		return nil, err
	}

	items, err := model.DecodeCatalog(data)
	if err != nil {
		logger.Warn("catalog file is unreadable, treating as empty",
			"path", s.path, "detected", mimetype.Detect(data).String(), "err", err)

		return []model.MediaItem{}, nil
	}

	return items, nil
}

func (s *Store) Save(_ context.Context, items []model.MediaItem) error {
	data, err := model.EncodeCatalog(items)
	if err != nil {
		return err
	}

	return writeFileAtomic(s.path, data)
}

// seqPath is the sidecar holding the highest id ever assigned. The catalog
// file itself stays a plain JSON array.
func (s *Store) seqPath() string {
	return s.path + ".seq"
}

func (s *Store) LastID(_ context.Context) (int64, error) {
	data, err := os.ReadFile(s.seqPath())
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		logger.Warn("id sequence file is unreadable, falling back to catalog ids", "path", s.seqPath(), "err", err)

		return 0, nil
	}

	return id, nil
}

func (s *Store) SetLastID(_ context.Context, id int64) error {
	return writeFileAtomic(s.seqPath(), []byte(strconv.FormatInt(id, 10)+"\n"))
}

// writeFileAtomic writes to a sibling temp file and renames it over dest, so
// readers see either the old or the new document.
func writeFileAtomic(dest string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(dest), fmt.Sprintf(".%s.%s.tmp", filepath.Base(dest), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)

		return err
	}

	return nil
}
