package repository

import "context"

// CacheRepository stores computed schedules keyed by their parameters.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
