package abstraction

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

type Lister interface {
	List(ctx context.Context) ([]model.MediaItem, int, error)
	ListPublished(ctx context.Context) ([]model.MediaItem, int, error)
}
