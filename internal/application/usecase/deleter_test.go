package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jxjxx71718/mediaGallery/internal/domain/model"
)

func TestDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         int64
		wantStatus int
		wantIDs    []int64
	}{
		{"middle item", 2, http.StatusOK, []int64{1, 3}},
		{"first item", 1, http.StatusOK, []int64{2, 3}},
		{"unknown item", 42, http.StatusNotFound, []int64{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, s := newTestCatalog(
				seedItem(1, model.StatusDraft, model.SingleMedia("a"), model.Meta{}),
				seedItem(2, model.StatusPublished, model.SingleMedia("b"), model.Meta{}),
				seedItem(3, model.StatusDraft, model.SingleMedia("c"), model.Meta{}),
			)

			removed, status, err := c.Delete(context.Background(), tt.id)
			assert.Equal(t, tt.wantStatus, status)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, tt.id, removed.ID)
			} else {
				assert.True(t, errors.Is(err, model.ErrNotFound))
				assert.Zero(t, s.saves)
			}

			ids := make([]int64, 0, len(tt.wantIDs))
			for _, item := range s.snapshot() {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
