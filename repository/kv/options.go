package kv

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// Option customizes a repository.
type Option func(*options)

// WithLogger sets the logger that receives swallowed storage errors.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock overrides the source of creation and update timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIDGenerator overrides identifier generation.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: zap.NewNop(),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  NewID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewID returns a time-ordered identifier with a random component (UUIDv7).
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// uniqueID draws identifiers until one is not already taken.
func uniqueID(gen func() string, taken func(string) bool) string {
	id := gen()
	for attempt := 0; attempt < 8 && taken(id); attempt++ {
		id = gen()
	}
	if taken(id) {
		return NewID()
	}
	return id
}
