package slidego

import (
	"time"

	"github.com/hupe1980/slidego/internal/visited"
)

// DefaultProgressInterval is the minimum time between progress log lines.
const DefaultProgressInterval = 5 * time.Second

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	memoryLimit      int64
	tableSize        int
	softDepth        int
	softCount        int
	heap             bool
	progressInterval time.Duration
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		tableSize:        visited.DefaultTableSize,
		softDepth:        visited.DefaultSoftDepth,
		softCount:        visited.DefaultSoftCount,
		progressInterval: DefaultProgressInterval,
	}
}

// Option configures a Session.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed, metrics are discarded.
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metricsCollector = c
	}
}

// WithMemoryLimit caps the bytes the visited set may hold.
// Zero (the default) means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithTableSize sets the number of buckets per table (default 65536).
func WithTableSize(buckets int) Option {
	return func(o *options) {
		o.tableSize = buckets
	}
}

// WithSoftThresholds sets the per-bucket overflow depth (default 20) and the
// number of full buckets a table tolerates before new keys move on to the next
// table (default 40).
func WithSoftThresholds(depth, count int) Option {
	return func(o *options) {
		o.softDepth = depth
		o.softCount = count
	}
}

// WithHeapStorage keeps bucket arrays on the Go heap instead of anonymous
// memory mappings.
func WithHeapStorage() Option {
	return func(o *options) {
		o.heap = true
	}
}

// WithProgressInterval sets the minimum time between progress log lines.
// Zero or negative disables progress logging.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}
