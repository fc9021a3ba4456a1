package filestore

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

func newStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(Config{Path: filepath.Join(t.TempDir(), "data", "media.json")})
	require.NoError(t, err)

	return s
}

func TestNewRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	assert.Error(t, err)
}

func TestLoadMissingFileInitializes(t *testing.T) {
	t.Parallel()

	s := newStore(t)

	items, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestLoadCorruptFileIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{ definitely not json"},
		{"object instead of array", `{"id": 1}`},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			items, err := s.Load(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, items)
			assert.Empty(t, items)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	items := []model.MediaItem{
		{
			ID: 1, Type: model.MediaTypeImage, Title: "one", Status: model.StatusDraft, Tags: []string{"a"},
			Media: model.SingleMedia("u1"), MediaMeta: []model.Meta{{}}, CreatedAt: ts, UpdatedAt: ts,
		},
		{
			ID: 2, Type: model.MediaTypeVideo, Title: "two", Status: model.StatusPublished, Tags: []string{},
			Media:     model.MultipleMedia([]string{"v1", "v2"}),
			MediaMeta: []model.Meta{{"alt": "first"}, {}}, CreatedAt: ts, UpdatedAt: ts,
		},
	}

	require.NoError(t, s.Save(context.Background(), items))

	loaded, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, items, loaded)

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestConcurrentSavesNeverExposePartialDocument(t *testing.T) {
	t.Parallel()

	s := newStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, nil))

	var wg sync.WaitGroup
	for i := 1; i <= 10; i++ {
		wg.Add(2)

		go func(n int) {
			defer wg.Done()

			items := make([]model.MediaItem, n)
			for j := range items {
				items[j] = model.MediaItem{ID: int64(j + 1), Title: "x", Media: model.SingleMedia("u")}
			}
			assert.NoError(t, s.Save(ctx, items))
		}(i)

		go func() {
			defer wg.Done()

			data, err := os.ReadFile(s.Path())
			if assert.NoError(t, err) {
				_, decodeErr := model.DecodeCatalog(data)
				assert.NoError(t, decodeErr)
			}
		}()
	}
	wg.Wait()
}

func TestSequence(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newStore(t)

	last, err := s.LastID(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)

	require.NoError(t, s.SetLastID(ctx, 42))

	reopened, err := New(Config{Path: s.Path()})
	require.NoError(t, err)

	last, err = reopened.LastID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), last)

	require.NoError(t, os.WriteFile(s.Path()+".seq", []byte("garbage"), 0o644))
	last, err = reopened.LastID(ctx)
	require.NoError(t, err)
	assert.Zero(t, last)
}
