package queue

import "context"

type Publisher interface {
	Publish(ctx context.Context, key string, event any, reqID string) error
	Close() error
}

// NoopPub is used when no broker is configured (local dev, tests).
type NoopPub struct{}

func NewNoop() Publisher { return NoopPub{} }

func (NoopPub) Publish(ctx context.Context, key string, event any, reqID string) error {
	return nil
}
func (NoopPub) Close() error { return nil }
