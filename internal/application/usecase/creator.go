package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
	"github.com/jxjxx71718/mediaGallery/pkg/utils"
)

// Create validates payload, normalizes it into a new item and appends it to
// the catalog.
func (c *Catalog) Create(ctx context.Context, payload dto.MediaPayload) (*model.MediaItem, int, error) {
	if err := Validate(payload); err != nil {
		return nil, http.StatusBadRequest, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	id, err := c.reserveID(ctx, items)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	now := c.now().UTC()
	item := model.MediaItem{
		ID:           id,
		Type:         model.MediaType(strings.ToLower(payload.String(dto.FieldType))),
		Title:        strings.TrimSpace(payload.String(dto.FieldTitle)),
		Description:  payload.String(dto.FieldDescription),
		Status:       model.StatusDraft,
		Tags:         utils.WrapScalar(payload.Value(dto.FieldTags)),
		Media:        createMedia(payload),
		ThumbnailURL: payload.String(dto.FieldThumbnailURL),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if payload.Has(dto.FieldStatus) {
		item.Status = model.Status(payload.String(dto.FieldStatus))
	}

	if meta, ok := metaList(payload.Value(dto.FieldMediaMeta)); ok {
		item.MediaMeta = meta
	} else {
		item.MediaMeta = emptyMeta(len(item.Media.URLs()))
	}

	if err := c.save(ctx, append(items, item)); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	logger.Info("media item created", "id", item.ID, "type", string(item.Type))
	c.publish(ctx, dto.ActionCreated, item.ID)

	return &item, http.StatusCreated, nil
}
