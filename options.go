package arena

import "log/slog"

// Option configures an Arena at construction.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	observer MetricsObserver
	name     string
	mmap     bool
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.DiscardHandler),
		observer: NoopMetricsObserver{},
	}
}

// WithLogger sets the logger used for construction, release and
// out-of-memory records. A nil logger keeps the default, which discards.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetricsObserver sets the observer notified of allocation events.
func WithMetricsObserver(obs MetricsObserver) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// WithName labels the arena in log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithMmap backs the arena with an anonymous private mapping instead of the
// Go heap. The memory is returned to the OS by Release, after which every
// block issued by the arena is invalid.
func WithMmap() Option {
	return func(o *options) {
		o.mmap = true
	}
}
