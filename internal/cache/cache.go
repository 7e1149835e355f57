// Package cache backs the conversation store's read path. The memory
// backend is the default; Redis is available for deployments that want the
// cache to survive a process restart.
package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
