package resource

import (
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is returned when a charge would exceed the limit.
var ErrBudgetExceeded = errors.New("memory budget exceeded")

// Kind identifies what a charge pays for.
type Kind int

const (
	// Tables is bucket-array memory, charged once per table.
	Tables Kind = iota
	// Overflow is per-bucket overflow storage, charged as it grows.
	Overflow

	numKinds
)

func (k Kind) String() string {
	switch k {
	case Tables:
		return "tables"
	case Overflow:
		return "overflow"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Budget tracks and limits the bytes held by visited-set storage.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted // nil if unlimited

	used  [numKinds]atomic.Int64
	total atomic.Int64
	peak  atomic.Int64
}

// NewBudget creates a budget of limit bytes. A limit <= 0 only tracks usage.
func NewBudget(limit int64) *Budget {
	b := &Budget{limit: max(limit, 0)}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

// Charge reserves bytes for kind. It never blocks: when the limit would be
// exceeded it fails with ErrBudgetExceeded and nothing is reserved.
func (b *Budget) Charge(kind Kind, bytes int64) error {
	if b == nil || bytes <= 0 {
		return nil
	}

	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return fmt.Errorf("%w: %s needs %d bytes, %d of %d in use",
			ErrBudgetExceeded, kind, bytes, b.total.Load(), b.limit)
	}

	b.used[kind].Add(bytes)
	total := b.total.Add(bytes)
	for {
		peak := b.peak.Load()
		if total <= peak || b.peak.CompareAndSwap(peak, total) {
			return nil
		}
	}
}

// Refund returns bytes previously charged for kind.
func (b *Budget) Refund(kind Kind, bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}

	b.used[kind].Add(-bytes)
	b.total.Add(-bytes)
	if b.sem != nil {
		b.sem.Release(bytes)
	}
}

// Used returns the bytes currently charged.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.total.Load()
}

// UsedBy returns the bytes currently charged for kind.
func (b *Budget) UsedBy(kind Kind) int64 {
	if b == nil {
		return 0
	}
	return b.used[kind].Load()
}

// Peak returns the highest Used value observed.
func (b *Budget) Peak() int64 {
	if b == nil {
		return 0
	}
	return b.peak.Load()
}

// Limit returns the configured limit in bytes, 0 if unlimited.
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}
