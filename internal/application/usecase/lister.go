package usecase

import (
	"context"
	"net/http"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// List returns the whole catalog in stored order.
func (c *Catalog) List(ctx context.Context) ([]model.MediaItem, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	return items, http.StatusOK, nil
}

// ListPublished returns only the items visible in the public gallery.
func (c *Catalog) ListPublished(ctx context.Context) ([]model.MediaItem, int, error) {
	items, status, err := c.List(ctx)
	if err != nil {
		return nil, status, err
	}

	return PublishedOnly(items), http.StatusOK, nil
}

func PublishedOnly(items []model.MediaItem) []model.MediaItem {
	out := make([]model.MediaItem, 0, len(items))
	for i := range items {
		if items[i].Status.IsPublished() {
			out = append(out, items[i])
		}
	}

	return out
}
