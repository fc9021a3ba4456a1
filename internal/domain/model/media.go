package model

import (
	"encoding/json"
	"strings"
	"time"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// IsPublished compares case-insensitively, so records written by hand as
// "Published" still show up in the gallery.
func (s Status) IsPublished() bool {
	return strings.EqualFold(string(s), string(StatusPublished))
}

// Meta is free-form per-URL metadata (alt text, captions, dimensions...).
type Meta map[string]any

type MediaItem struct {
	ID           int64
	Type         MediaType
	Title        string
	Description  string
	Status       Status
	Tags         []string
	Media        MediaRef
	ThumbnailURL string
	MediaMeta    []Meta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Record is the flat, persisted and wire shape of a MediaItem.
type Record struct {
	ID           int64     `json:"id"                     bson:"_id"`
	Type         MediaType `json:"type"                   bson:"type"`
	Title        string    `json:"title"                  bson:"title"`
	Description  string    `json:"description"            bson:"description"`
	Status       Status    `json:"status"                 bson:"status"`
	Tags         []string  `json:"tags"                   bson:"tags"`
	MediaURLs    []string  `json:"mediaUrls,omitempty"    bson:"media_urls,omitempty"`
	MediaURL     string    `json:"mediaUrl,omitempty"     bson:"media_url,omitempty"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty" bson:"thumbnail_url,omitempty"`
	MediaMeta    []Meta    `json:"mediaMeta"              bson:"media_meta"`
	CreatedAt    time.Time `json:"createdAt"              bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt"              bson:"updated_at"`
}

func (m MediaItem) Record() Record {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	meta := make([]Meta, len(m.MediaMeta))
	for i, entry := range m.MediaMeta {
		if entry == nil {
			entry = Meta{}
		}
		meta[i] = entry
	}

	return Record{
		ID:           m.ID,
		Type:         m.Type,
		Title:        m.Title,
		Description:  m.Description,
		Status:       m.Status,
		Tags:         tags,
		MediaURLs:    m.Media.MultipleURLs(),
		MediaURL:     m.Media.SingleURL(),
		ThumbnailURL: m.ThumbnailURL,
		MediaMeta:    meta,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Item converts a stored record. When both URL forms are present the list
// wins, mirroring what the gallery renders.
func (r Record) Item() MediaItem {
	media := SingleMedia(r.MediaURL)
	if len(r.MediaURLs) > 0 {
		media = MultipleMedia(r.MediaURLs)
	}

	return MediaItem{
		ID:           r.ID,
		Type:         r.Type,
		Title:        r.Title,
		Description:  r.Description,
		Status:       r.Status,
		Tags:         r.Tags,
		Media:        media,
		ThumbnailURL: r.ThumbnailURL,
		MediaMeta:    r.MediaMeta,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (m MediaItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Record())
}

func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}

	*m = r.Item()

	return nil
}
