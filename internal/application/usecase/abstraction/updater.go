package abstraction

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

// Updater defines the interface for partially updating a media item.
type Updater interface {
	Update(ctx context.Context, id int64, payload dto.MediaPayload) (*model.MediaItem, int, error)
}
