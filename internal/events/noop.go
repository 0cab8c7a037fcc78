package events

import "context"

// NoopPublisher discards all events. Used when no broker is configured
// and as the default in tests.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
