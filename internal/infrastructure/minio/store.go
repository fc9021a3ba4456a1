package minio

import (
	"bytes"
	"context"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

const (
	DefaultObject = "media.json"

	lastIDMetaKey = "last-id"
)

// Store keeps the catalog as a single object in a bucket. The highest id ever
// assigned travels with the object as user metadata, so it is written in the
// same PUT as the items.
type Store struct {
	minioClient *minio.Client
	cfg         *StoreConfig

	mu     sync.Mutex
	lastID int64
}

func NewStore(minioClient *minio.Client, cfg *StoreConfig) *Store {
	if cfg.Object == "" {
		cfg.Object = DefaultObject
	}

	return &Store{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (s *Store) Load(ctx context.Context) ([]model.MediaItem, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	obj, err := s.minioClient.GetObject(ctx, s.cfg.Bucket, s.cfg.Object, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			logger.Info("catalog object not found, initializing", "bucket", s.cfg.Bucket, "object", s.cfg.Object)

			return []model.MediaItem{}, s.put(ctx, nil)
		}

		return nil, err
	}

	if info, err := obj.Stat(); err == nil {
		s.observeLastID(info.Metadata.Get("X-Amz-Meta-" + lastIDMetaKey))
	}

	items, err := model.DecodeCatalog(data)
	if err != nil {
		logger.Warn("catalog object is unreadable, treating as empty",
			"bucket", s.cfg.Bucket, "object", s.cfg.Object, "detected", mimetype.Detect(data).String(), "err", err)

		return []model.MediaItem{}, nil
	}

	return items, nil
}

// Save overwrites the object. A PUT replaces the object as a whole, so
// readers never observe a partially written catalog.
func (s *Store) Save(ctx context.Context, items []model.MediaItem) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	return s.put(ctx, items)
}

// LastID returns the mark read by the latest Load or staged by SetLastID.
func (s *Store) LastID(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastID, nil
}

// SetLastID stages the mark; the next Save persists it.
func (s *Store) SetLastID(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastID = max(s.lastID, id)

	return nil
}

func (s *Store) observeLastID(raw string) {
	if raw == "" {
		return
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Warn("ignoring unreadable id mark on catalog object", "object", s.cfg.Object, "value", raw)

		return
	}

	s.mu.Lock()
	s.lastID = max(s.lastID, id)
	s.mu.Unlock()
}

func (s *Store) put(ctx context.Context, items []model.MediaItem) error {
	data, err := model.EncodeCatalog(items)
	if err != nil {
		return err
	}

	last, _ := s.LastID(ctx)

	_, err = s.minioClient.PutObject(ctx, s.cfg.Bucket, s.cfg.Object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  mimetype.Detect(data).String(),
			UserMetadata: map[string]string{lastIDMetaKey: strconv.FormatInt(last, 10)},
		})
	if err != nil {
		logger.Error("failed to put catalog object", "bucket", s.cfg.Bucket, "err", err)

		return err
	}

	return nil
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.Timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, time.Duration(s.cfg.Timeout)*time.Millisecond)
}
