package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxjxx71718/mediaGallery/internal/domain/dto"
	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		payload   dto.MediaPayload
		wantField string
		wantMsg   string
	}{
		{
			name:      "nil payload",
			payload:   nil,
			wantField: "payload",
		},
		{
			name:      "missing title",
			payload:   dto.MediaPayload{"type": "image", "mediaUrl": "u"},
			wantField: "title",
			wantMsg:   "title",
		},
		{
			name:      "blank title",
			payload:   dto.MediaPayload{"title": "   ", "type": "image", "mediaUrl": "u"},
			wantField: "title",
			wantMsg:   "title",
		},
		{
			name:      "title checked before type",
			payload:   dto.MediaPayload{"type": "audio"},
			wantField: "title",
		},
		{
			name:      "bad type",
			payload:   dto.MediaPayload{"title": "a", "type": "audio", "mediaUrl": "u"},
			wantField: "type",
			wantMsg:   "type",
		},
		{
			name:      "missing type",
			payload:   dto.MediaPayload{"title": "a", "mediaUrl": "u"},
			wantField: "type",
		},
		{
			name:    "type is case insensitive",
			payload: dto.MediaPayload{"title": "a", "type": "VIDEO", "mediaUrl": "u"},
		},
		{
			name:      "no media",
			payload:   dto.MediaPayload{"title": "a", "type": "image"},
			wantField: "mediaUrl",
			wantMsg:   "mediaUrls",
		},
		{
			name:      "blank media url and empty list",
			payload:   dto.MediaPayload{"title": "a", "type": "image", "mediaUrl": "  ", "mediaUrls": []any{}},
			wantField: "mediaUrl",
		},
		{
			name:      "media urls as string is not a list",
			payload:   dto.MediaPayload{"title": "a", "type": "image", "mediaUrls": "x,y"},
			wantField: "mediaUrl",
		},
		{
			name:    "media list only",
			payload: dto.MediaPayload{"title": "a", "type": "image", "mediaUrls": []any{"x"}},
		},
		{
			name:      "bad status",
			payload:   dto.MediaPayload{"title": "a", "type": "image", "mediaUrl": "u", "status": "archived"},
			wantField: "status",
			wantMsg:   "status",
		},
		{
			name:      "status is case sensitive",
			payload:   dto.MediaPayload{"title": "a", "type": "image", "mediaUrl": "u", "status": "Published"},
			wantField: "status",
		},
		{
			name:      "empty status",
			payload:   dto.MediaPayload{"title": "a", "type": "image", "mediaUrl": "u", "status": ""},
			wantField: "status",
		},
		{
			name:    "published",
			payload: dto.MediaPayload{"title": "a", "type": "image", "mediaUrl": "u", "status": "published"},
		},
		{
			name:    "null status counts as absent",
			payload: dto.MediaPayload{"title": "a", "type": "image", "mediaUrl": "u", "status": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.payload)
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			var vErr *model.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			if tt.wantMsg != "" {
				assert.Contains(t, vErr.Error(), tt.wantMsg)
			}
		})
	}
}
