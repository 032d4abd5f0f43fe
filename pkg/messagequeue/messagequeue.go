package messagequeue

import "context"

// Publisher delivers messages to a single, preconfigured queue.
type Publisher interface {
	Publish(ctx context.Context, body []byte) error
	Close() error
}
