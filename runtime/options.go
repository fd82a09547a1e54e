package runtime

import (
	"go.uber.org/zap"

	valueruntime "github.com/wippyai/value-runtime"
	"github.com/wippyai/value-runtime/action"
	"github.com/wippyai/value-runtime/config"
)

type options struct {
	alloc     valueruntime.Allocator
	logger    *zap.Logger
	table     []action.Entry
	libraries []config.Library
	maxName   int
	strict    bool
}

// Option configures a Runtime.
type Option func(*options)

// WithAllocator sets the allocator string values reserve storage from.
func WithAllocator(a valueruntime.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithLogger sets the runtime logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMaxActionName bounds the names accepted by action lookup.
func WithMaxActionName(n int) Option {
	return func(o *options) {
		o.maxName = n
	}
}

// WithStrictIndex makes action naming fail instead of answering with the
// illegal action when the procedure index is unavailable.
func WithStrictIndex() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithTable replaces the primitive table. Entries must be sorted by name.
func WithTable(table []action.Entry) Option {
	return func(o *options) {
		o.table = table
	}
}

// FromConfig applies a loaded configuration.
func FromConfig(cfg *config.Config) Option {
	return func(o *options) {
		if cfg.MemoryLimit > 0 {
			o.alloc = valueruntime.NewLimitedAllocator(cfg.MemoryLimit)
		}
		if cfg.MaxActionName > 0 {
			o.maxName = cfg.MaxActionName
		}
		o.strict = o.strict || cfg.StrictIndex
		o.libraries = append(o.libraries, cfg.Libraries...)
	}
}
