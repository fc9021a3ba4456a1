package abstraction

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// Getter defines the interface for retrieving a single media item.
type Getter interface {
	Get(ctx context.Context, id int64) (*model.MediaItem, int, error)
}
