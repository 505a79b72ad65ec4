package visited

import (
	"errors"
	"fmt"

	"github.com/hupe1980/slidego/internal/resource"
)

var (
	// ErrAllocationFailed is returned alongside AllocationFailure.
	ErrAllocationFailed = errors.New("visited: allocation failed")
	// ErrClosed is returned by operations on a closed Set.
	ErrClosed = errors.New("visited: set is closed")
)

// Result is the outcome of Insert.
type Result uint8

const (
	// Inserted means the key was new and is now recorded with its parent.
	Inserted Result = iota
	// AlreadyPresent means the key was recorded earlier; its parent is unchanged.
	AlreadyPresent
	// AllocationFailure means storage for the key could not be obtained.
	AllocationFailure
)

func (r Result) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case AlreadyPresent:
		return "already present"
	case AllocationFailure:
		return "allocation failure"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// TableStats describes one table of the chain.
type TableStats struct {
	Index           int
	Entries         int
	Buckets         int // buckets holding at least one entry
	OverflowEntries int
	BusyBuckets     int
	LoadTooHigh     bool
	Bytes           int64
}

// Set records visited keys and the parent that first reached each of them.
type Set struct {
	opts   Options
	tables []*table // arena; table.next indexes into it
	closed bool
}

// New creates a Set with its head table allocated.
func New(optFns ...func(o *Options)) (*Set, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	s := &Set{opts: opts}
	if _, err := s.appendTable(); err != nil {
		return nil, err
	}
	return s, nil
}

// Bucket returns the bucket index of key in every table.
func (s *Set) Bucket(key uint64) uint32 {
	key &= s.opts.KeyMask
	return uint32(s.opts.Hash(key) % uint64(s.opts.TableSize))
}

// Insert records key with parent unless key is already present. The first
// parent recorded for a key is never replaced.
func (s *Set) Insert(key, parent uint64) (Result, error) {
	if s.closed {
		return AllocationFailure, ErrClosed
	}
	key &= s.opts.KeyMask
	b := s.Bucket(key)

	ti := 0
	for {
		t := s.tables[ti]

		if t.empty(b) {
			t.slots[b] = entry{key: key | occupied, parent: parent}
			t.entries++
			t.buckets++
			return Inserted, nil
		}
		if _, ok := t.lookup(b, key); ok {
			return AlreadyPresent, nil
		}

		if len(t.overflow[b]) < s.opts.SoftDepth && t.busyBuckets() < s.opts.SoftCount {
			if err := s.appendOverflow(t, b, entry{key: key, parent: parent}); err != nil {
				return AllocationFailure, err
			}
			return Inserted, nil
		}

		t.loadTooHigh = true
		if t.next < 0 {
			next, err := s.appendTable()
			if err != nil {
				return AllocationFailure, err
			}
			t.next = next
			if s.opts.OnTableLinked != nil {
				s.opts.OnTableLinked(next)
			}
		}
		ti = t.next
	}
}

// Find returns the parent recorded for key.
func (s *Set) Find(key uint64) (uint64, bool) {
	if s.closed {
		return 0, false
	}
	key &= s.opts.KeyMask
	b := s.Bucket(key)

	for ti := 0; ti >= 0; {
		t := s.tables[ti]
		if t.empty(b) {
			return 0, false
		}
		if parent, ok := t.lookup(b, key); ok {
			return parent, true
		}
		ti = t.next
	}
	return 0, false
}

// Len returns the number of keys held across the chain.
func (s *Set) Len() int {
	n := 0
	for _, t := range s.tables {
		n += t.entries
	}
	return n
}

// Tables returns the length of the table chain.
func (s *Set) Tables() int {
	return len(s.tables)
}

// MemoryUsage returns the bytes this set has charged to its budget.
func (s *Set) MemoryUsage() int64 {
	var n int64
	for _, t := range s.tables {
		n += t.bytes
	}
	return n
}

// Stats returns one entry per table, head first.
func (s *Set) Stats() []TableStats {
	out := make([]TableStats, 0, len(s.tables))
	for i, t := range s.tables {
		out = append(out, TableStats{
			Index:           i,
			Entries:         t.entries,
			Buckets:         t.buckets,
			OverflowEntries: t.overflowEntries,
			BusyBuckets:     t.busyBuckets(),
			LoadTooHigh:     t.loadTooHigh,
			Bytes:           t.bytes,
		})
	}
	return out
}

// Close releases every table and returns their memory to the budget.
// Close is idempotent.
func (s *Set) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	for _, t := range s.tables {
		if err := t.release(); err != nil {
			errs = append(errs, err)
		}
		s.opts.Memory.Refund(resource.Tables, t.bytes-t.overflowBytes)
		s.opts.Memory.Refund(resource.Overflow, t.overflowBytes)
	}
	s.tables = nil
	return errors.Join(errs...)
}

func (s *Set) appendTable() (int, error) {
	idx := len(s.tables)
	bytes := int64(s.opts.TableSize) * entrySize

	if err := s.opts.Memory.Charge(resource.Tables, bytes); err != nil {
		return -1, fmt.Errorf("%w: table %d: %w", ErrAllocationFailed, idx, err)
	}
	t, err := newTable(s.opts.TableSize, s.opts.Heap)
	if err != nil {
		s.opts.Memory.Refund(resource.Tables, bytes)
		return -1, fmt.Errorf("%w: table %d: %w", ErrAllocationFailed, idx, err)
	}

	s.tables = append(s.tables, t)
	return idx, nil
}

// appendOverflow adds e to bucket b, growing the slice under the budget.
func (s *Set) appendOverflow(t *table, b uint32, e entry) error {
	ov := t.overflow[b]
	if len(ov) == cap(ov) {
		newCap := min(max(4, 2*cap(ov)), s.opts.SoftDepth)
		grow := int64(newCap-cap(ov)) * entrySize
		if err := s.opts.Memory.Charge(resource.Overflow, grow); err != nil {
			return fmt.Errorf("%w: overflow of bucket %d: %w", ErrAllocationFailed, b, err)
		}
		t.bytes += grow
		t.overflowBytes += grow

		grown := make([]entry, len(ov), newCap)
		copy(grown, ov)
		ov = grown
	}

	ov = append(ov, e)
	t.overflow[b] = ov
	t.entries++
	t.overflowEntries++
	if len(ov) == s.opts.SoftDepth {
		t.busy.Add(b)
	}
	return nil
}
