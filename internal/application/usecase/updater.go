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

// Update applies the fields present in payload to the item with the given id.
// The merged result is validated before anything is written.
func (c *Catalog) Update(ctx context.Context, id int64, payload dto.MediaPayload) (*model.MediaItem, int, error) {
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

	if err := Validate(mergeCandidate(items[idx], payload)); err != nil {
		return nil, http.StatusBadRequest, err
	}

	updated := applyUpdate(items[idx], payload)
	updated.UpdatedAt = c.now().UTC()
	items[idx] = updated

	if err := c.save(ctx, items); err != nil {
		return nil, http.StatusInternalServerError, err
	}

	logger.Info("media item updated", "id", id)
	c.publish(ctx, dto.ActionUpdated, id)

	return &updated, http.StatusOK, nil
}

func applyUpdate(item model.MediaItem, payload dto.MediaPayload) model.MediaItem {
	if payload.Has(dto.FieldTitle) {
		item.Title = strings.TrimSpace(payload.String(dto.FieldTitle))
	}

	if payload.Has(dto.FieldType) {
		item.Type = model.MediaType(strings.ToLower(payload.String(dto.FieldType)))
	}

	if payload.Has(dto.FieldDescription) {
		item.Description = payload.String(dto.FieldDescription)
	}

	if payload.Has(dto.FieldStatus) {
		item.Status = model.Status(payload.String(dto.FieldStatus))
	}

	if payload.Has(dto.FieldTags) {
		item.Tags = utils.WrapScalar(payload.Value(dto.FieldTags))
	}

	if payload.Has(dto.FieldThumbnailURL) {
		item.ThumbnailURL = payload.String(dto.FieldThumbnailURL)
	}

	item.Media = updateMedia(item.Media, payload)

	if meta, ok := metaList(payload.Value(dto.FieldMediaMeta)); ok {
		item.MediaMeta = meta
	} else {
		item.MediaMeta = reconcileMeta(item.MediaMeta, len(item.Media.URLs()))
	}

	return item
}
