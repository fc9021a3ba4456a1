package abstraction

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// Deleter defines the interface for removing a media item.
type Deleter interface {
	Delete(ctx context.Context, id int64) (*model.MediaItem, int, error)
}
