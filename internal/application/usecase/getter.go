package usecase

import (
	"context"
	"net/http"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// Get retrieves a media item by id.
func (c *Catalog) Get(ctx context.Context, id int64) (*model.MediaItem, int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return nil, http.StatusNotFound, model.ErrNotFound
	}

	return &items[idx], http.StatusOK, nil
}
