package slidego

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInsert is called after each insert.
	// err is non-nil only for AllocationFailure.
	RecordInsert(result InsertResult, duration time.Duration, err error)

	// RecordFind is called after each lookup.
	RecordFind(found bool, duration time.Duration)

	// RecordTableLinked is called when the table chain grows to tables entries.
	RecordTableLinked(tables int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(InsertResult, time.Duration, error) {}
func (NoopMetricsCollector) RecordFind(bool, time.Duration)                  {}
func (NoopMetricsCollector) RecordTableLinked(int)                           {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertDuplicates atomic.Int64
	InsertErrors     atomic.Int64
	InsertTotalNanos atomic.Int64
	FindCount        atomic.Int64
	FindMisses       atomic.Int64
	FindTotalNanos   atomic.Int64
	Tables           atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(result InsertResult, duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if result == AlreadyPresent {
		b.InsertDuplicates.Add(1)
	}
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordFind implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFind(found bool, duration time.Duration) {
	b.FindCount.Add(1)
	b.FindTotalNanos.Add(duration.Nanoseconds())
	if !found {
		b.FindMisses.Add(1)
	}
}

// RecordTableLinked implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTableLinked(tables int) {
	b.Tables.Store(int64(tables))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertDuplicates: b.InsertDuplicates.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		InsertAvgNanos:   avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		FindCount:        b.FindCount.Load(),
		FindMisses:       b.FindMisses.Load(),
		FindAvgNanos:     avg(b.FindTotalNanos.Load(), b.FindCount.Load()),
		Tables:           b.Tables.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertDuplicates int64
	InsertErrors     int64
	InsertAvgNanos   int64
	FindCount        int64
	FindMisses       int64
	FindAvgNanos     int64
	Tables           int64
}
