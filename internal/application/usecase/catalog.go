package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/internal/domain/repository/broker"
	"github.com/jxjxx71718/mediaGallery/internal/domain/repository/store"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

// Catalog owns the media collection. Every mutation runs load, mutate and
// save while holding the write lock, so concurrent requests never lose
// each other's changes.
type Catalog struct {
	loader    store.Loader
	saver     store.Saver
	sequence  store.Sequence
	publisher broker.Publisher
	now       func() time.Time

	mu     sync.RWMutex
	lastID int64
}

// NewCatalog creates a new Catalog usecase. publisher may be nil, in which
// case no change events are emitted. When saver also implements
// store.Sequence the highest assigned id survives restarts; otherwise it is
// only tracked for the lifetime of the process.
func NewCatalog(loader store.Loader, saver store.Saver, publisher broker.Publisher) *Catalog {
	c := &Catalog{
		loader:    loader,
		saver:     saver,
		publisher: publisher,
		now:       time.Now,
	}

	if seq, ok := saver.(store.Sequence); ok {
		c.sequence = seq
	}

	return c
}

func (c *Catalog) load(ctx context.Context) ([]model.MediaItem, error) {
	items, err := c.loader.Load(ctx)
	if err != nil {
		logger.Error("failed to load media catalog", "err", err)

		return nil, &model.StorageError{Op: "load", Err: err}
	}

	if items == nil {
		items = []model.MediaItem{}
	}

	return items, nil
}

func (c *Catalog) save(ctx context.Context, items []model.MediaItem) error {
	if err := c.saver.Save(ctx, items); err != nil {
		logger.Error("failed to save media catalog", "err", err)

		return &model.StorageError{Op: "save", Err: err}
	}

	return nil
}

// publish runs after the change is durable, so a broker failure is only logged.
func (c *Catalog) publish(ctx context.Context, action string, id int64) {
	if c.publisher == nil {
		return
	}

	msg, err := json.Marshal(dto.CatalogEvent{
		Action: action,
		ID:     id,
		At:     c.now().UTC(),
	})
	if err != nil {
		logger.Error("failed to encode catalog event", "err", err)

		return
	}

	if err := c.publisher.Publish(ctx, string(msg)); err != nil {
		logger.Error("failed to publish catalog event", "action", action, "id", id, "err", err)
	}
}

func indexOf(items []model.MediaItem, id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}

	return -1
}

// reserveID returns one more than the highest id ever assigned, which is
// max+1 unless the newest items were deleted. The mark is recorded before
// the catalog is saved; a failed save only leaves a gap.
func (c *Catalog) reserveID(ctx context.Context, items []model.MediaItem) (int64, error) {
	last := c.lastID
	for i := range items {
		last = max(last, items[i].ID)
	}

	if c.sequence != nil {
		stored, err := c.sequence.LastID(ctx)
		if err != nil {
			logger.Error("failed to read id sequence", "err", err)

			return 0, &model.StorageError{Op: "load", Err: err}
		}
		last = max(last, stored)
	}

	id := last + 1
	if c.sequence != nil {
		if err := c.sequence.SetLastID(ctx, id); err != nil {
			logger.Error("failed to record id sequence", "id", id, "err", err)

			return 0, &model.StorageError{Op: "save", Err: err}
		}
	}
	c.lastID = id

	return id, nil
}
