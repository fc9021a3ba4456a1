package store

import "context"

// Sequence remembers the highest id ever assigned, so ids of deleted items
// are not handed out again after a restart.
type Sequence interface {
	LastID(ctx context.Context) (int64, error)
	SetLastID(ctx context.Context, id int64) error
}
