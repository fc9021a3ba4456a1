package abstraction

import (
	"context"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

type Creator interface {
	Create(ctx context.Context, payload dto.MediaPayload) (*model.MediaItem, int, error)
}
