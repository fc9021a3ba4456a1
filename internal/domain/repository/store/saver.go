package store

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// Saver replaces the whole catalog with items.
type Saver interface {
	Save(ctx context.Context, items []model.MediaItem) error
}
