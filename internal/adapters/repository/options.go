// Package repository holds the in-memory quiz session and handoff stores.
package repository

import "time"

const (
	defaultCapacity = 10000
	defaultTTL      = 30 * time.Minute
)

type settings struct {
	capacity int
	ttl      time.Duration
}

func newSettings(opts []Option) settings {
	s := settings{
		capacity: defaultCapacity,
		ttl:      defaultTTL,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option applies a configuration option to a store.
type Option func(*settings)

// WithCapacity bounds the number of entries. When full, the least recently
// touched entry is evicted.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithTTL sets how long an untouched entry lives.
func WithTTL(ttl time.Duration) Option {
	return func(s *settings) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}
