package usecase

import (
	"context"
	"net/http"
	"slices"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

// Delete removes the item with the given id and returns it.
func (c *Catalog) Delete(ctx context.Context, id int64) (*model.MediaItem, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	idx := indexOf(items, id)
	if idx < 0 {
		return nil, http.StatusNotFound, model.ErrNotFound
	}

	removed := items[idx]
	if err := c.save(ctx, slices.Delete(items, idx, idx+1)); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	logger.Info("media item deleted", "id", id)
	c.publish(ctx, dto.ActionDeleted, id)

	return &removed, http.StatusOK, nil
}
