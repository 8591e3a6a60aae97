// Package kv holds the key-value substrates the workout snapshot is persisted to.
package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrValueTooLarge = errors.New("value too large")
)

// Store is a minimal key-value store. Get returns ErrNotFound for absent keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
