package store

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// Loader reads the whole catalog. A missing document is an empty catalog.
type Loader interface {
	Load(ctx context.Context) ([]model.MediaItem, error)
}
