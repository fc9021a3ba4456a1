package broker

import "context"

// Publisher delivers catalog change notifications.
type Publisher interface {
	Publish(ctx context.Context, message string) error
}
