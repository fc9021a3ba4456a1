package dto

import "github.com/jxjxx71718/mediaGallery/pkg/utils"

const (
	FieldTitle        = "title"
	FieldType         = "type"
	FieldDescription  = "description"
	FieldStatus       = "status"
	FieldTags         = "tags"
	FieldMediaURL     = "mediaUrl"
	FieldMediaURLs    = "mediaUrls"
	FieldThumbnailURL = "thumbnailUrl"
	FieldMediaMeta    = "mediaMeta"
)

// MediaPayload is a decoded JSON request body. Values keep their JSON
// decoded types (string, float64, bool, []any, map[string]any).
type MediaPayload map[string]any

func (p MediaPayload) Value(key string) any {
	if p == nil {
		return nil
	}

	return p[key]
}

// Has reports whether key was sent with a non-null value.
func (p MediaPayload) Has(key string) bool {
	v, ok := p[key]

	return ok && v != nil
}

func (p MediaPayload) String(key string) string {
	return utils.String(p.Value(key))
}
