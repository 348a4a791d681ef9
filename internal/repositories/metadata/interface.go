// Package metadata is the SDK's local key-value store: device ID, session
// timestamps, counters and dismissed flags live here.
package metadata

import "context"

// Repository is a synchronous scalar store. Getters report absence through
// the boolean rather than an error, so "never written" and "failed to read"
// stay distinguishable.
type Repository interface {
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error

	GetInt64(ctx context.Context, key string) (int64, bool, error)
	SetInt64(ctx context.Context, key string, value int64) error

	GetFloat64(ctx context.Context, key string) (float64, bool, error)
	SetFloat64(ctx context.Context, key string, value float64) error

	GetBool(ctx context.Context, key string) (bool, bool, error)
	SetBool(ctx context.Context, key string, value bool) error

	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
