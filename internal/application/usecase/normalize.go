package usecase

import (
	"strings"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
	"github.com/jxjxx71718/mediaGallery/pkg/logger"
	"github.com/jxjxx71718/mediaGallery/pkg/utils"
)

// metaList returns the caller supplied mediaMeta when it is an array. The
// array length and order are kept, but entries that are not objects are
// stored as empty objects rather than as sent.
func metaList(v any) ([]model.Meta, bool) {
	raw, ok := v.([]any)
	if !ok {
		return nil, false
	}

	out := make([]model.Meta, 0, len(raw))
	for _, entry := range raw {
		obj, isObj := entry.(map[string]any)
		if !isObj {
			out = append(out, model.Meta{})

			continue
		}
		out = append(out, model.Meta(obj))
	}

	return out, true
}

func emptyMeta(n int) []model.Meta {
	out := make([]model.Meta, n)
	for i := range out {
		out[i] = model.Meta{}
	}

	return out
}

// reconcileMeta resizes meta to n entries, keeping existing entries by
// position and padding with empty objects.
func reconcileMeta(meta []model.Meta, n int) []model.Meta {
	if len(meta) == n {
		return meta
	}

	out := make([]model.Meta, n)
	for i := range out {
		if i < len(meta) && meta[i] != nil {
			out[i] = meta[i]

			continue
		}
		out[i] = model.Meta{}
	}

	return out
}

// createMedia picks the media form for a new item. mediaUrl is stored with
// surrounding whitespace trimmed.
func createMedia(payload dto.MediaPayload) model.MediaRef {
	if urls, ok := payload.Value(dto.FieldMediaURLs).([]any); ok && len(urls) > 0 {
		return model.MultipleMedia(utils.StringList(urls))
	}

	return model.SingleMedia(strings.TrimSpace(payload.String(dto.FieldMediaURL)))
}

// updateMedia applies mediaUrls and mediaUrl from an update payload. A
// non-empty URL list stays authoritative and a mediaUrl sent alongside it is
// dropped. Emptying the list falls back to the payload mediaUrl, or to the
// item's current single URL. An item that is already multiple has no single
// URL left, so emptying its list without a mediaUrl fails validation.
// mediaUrl is stored with surrounding whitespace trimmed.
func updateMedia(current model.MediaRef, payload dto.MediaPayload) model.MediaRef {
	urls := current.MultipleURLs()
	single := current.SingleURL()

	if payload.Has(dto.FieldMediaURLs) {
		urls = utils.ToList(payload.Value(dto.FieldMediaURLs))
	}

	if payload.Has(dto.FieldMediaURL) {
		single = strings.TrimSpace(payload.String(dto.FieldMediaURL))
	}

	if len(urls) > 0 {
		if payload.Has(dto.FieldMediaURL) {
			logger.Debug("mediaUrl ignored while mediaUrls is non-empty", "media_url", single)
		}

		return model.MultipleMedia(urls)
	}

	return model.SingleMedia(single)
}

// toPayload flattens an item into the payload shape it would be created from.
func toPayload(item model.MediaItem) dto.MediaPayload {
	p := dto.MediaPayload{
		dto.FieldTitle:       item.Title,
		dto.FieldType:        string(item.Type),
		dto.FieldDescription: item.Description,
		dto.FieldStatus:      string(item.Status),
		dto.FieldTags:        utils.AnyList(item.Tags),
	}

	if item.Media.IsMultiple() {
		p[dto.FieldMediaURLs] = utils.AnyList(item.Media.URLs())
	} else if url := item.Media.SingleURL(); url != "" {
		p[dto.FieldMediaURL] = url
	}

	if item.ThumbnailURL != "" {
		p[dto.FieldThumbnailURL] = item.ThumbnailURL
	}

	return p
}

// mergeCandidate writes the payload over the flattened item. Comma separated
// mediaUrls are split first so they validate like an array.
func mergeCandidate(item model.MediaItem, payload dto.MediaPayload) dto.MediaPayload {
	candidate := toPayload(item)
	for key, value := range payload {
		if value == nil {
			continue
		}
		candidate[key] = value
	}

	if payload.Has(dto.FieldMediaURLs) {
		candidate[dto.FieldMediaURLs] = utils.AnyList(utils.ToList(payload.Value(dto.FieldMediaURLs)))
	}

	return candidate
}
