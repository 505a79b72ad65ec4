package slidego

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/slidego/internal/resource"
	"github.com/hupe1980/slidego/internal/visited"
	"github.com/hupe1980/slidego/puzzle"
)

// InsertResult is the outcome of Session.Insert.
type InsertResult = visited.Result

const (
	// Inserted means the state was new and is now recorded with its parent.
	Inserted = visited.Inserted
	// AlreadyPresent means the state was recorded earlier; its parent is unchanged.
	AlreadyPresent = visited.AlreadyPresent
	// AllocationFailure means storage for the state could not be obtained.
	AllocationFailure = visited.AllocationFailure
)

// TableStats describes one table of the visited set.
type TableStats = visited.TableStats

// Session owns a visited-state set together with its memory budget, logger
// and metrics.
//
// A Session is not safe for concurrent use.
type Session struct {
	set      *visited.Set
	memory   *resource.Budget
	logger   *Logger
	metrics  MetricsCollector
	progress *rate.Sometimes
	closed   bool
}

// New creates a Session with an empty visited set.
func New(optFns ...Option) (*Session, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	s := &Session{
		memory:  resource.NewBudget(opts.memoryLimit),
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
	if opts.progressInterval > 0 {
		s.progress = &rate.Sometimes{Interval: opts.progressInterval}
	}

	set, err := visited.New(func(o *visited.Options) {
		o.TableSize = opts.tableSize
		o.SoftDepth = opts.softDepth
		o.SoftCount = opts.softCount
		o.Heap = opts.heap
		o.Memory = s.memory
		o.OnTableLinked = s.tableLinked
	})
	if err != nil {
		return nil, translateError(err)
	}
	s.set = set

	return s, nil
}

func (s *Session) tableLinked(index int) {
	tables := index + 1
	s.metrics.RecordTableLinked(tables)
	s.logger.LogTableLinked(context.Background(), tables, s.set.Len(), s.memory.Used())
}

// Insert records key with parent unless key is already present.
// Only the key bits of both ordinals are stored.
func (s *Session) Insert(key, parent puzzle.Ordinal) (InsertResult, error) {
	start := time.Now()
	res, err := s.set.Insert(uint64(key.Key()), uint64(parent.Key()))
	s.metrics.RecordInsert(res, time.Since(start), err)

	if err != nil {
		s.logger.LogInsertFailure(context.Background(), key, s.set.Len(), err)
		return res, translateError(err)
	}

	if s.progress != nil && res == Inserted {
		s.progress.Do(func() {
			s.logger.LogProgress(context.Background(), s.set.Len(), s.set.Tables(), s.memory.Used())
		})
	}

	return res, nil
}

// Find returns the parent recorded for key.
func (s *Session) Find(key puzzle.Ordinal) (puzzle.Ordinal, bool) {
	start := time.Now()
	parent, ok := s.set.Find(uint64(key))
	s.metrics.RecordFind(ok, time.Since(start))

	return puzzle.Ordinal(parent), ok
}

// Contains reports whether key has been recorded.
func (s *Session) Contains(key puzzle.Ordinal) bool {
	_, ok := s.Find(key)
	return ok
}

// Len returns the number of recorded states.
func (s *Session) Len() int { return s.set.Len() }

// Tables returns the length of the table chain.
func (s *Session) Tables() int { return s.set.Tables() }

// Stats returns per-table statistics in chain order.
func (s *Session) Stats() []TableStats { return s.set.Stats() }

// MemoryUsage returns the bytes currently charged to the memory budget.
func (s *Session) MemoryUsage() int64 { return s.memory.Used() }

// PeakMemoryUsage returns the highest MemoryUsage observed.
func (s *Session) PeakMemoryUsage() int64 { return s.memory.Peak() }

// Seed records start as a root state. A root is its own parent, which is
// where Path stops.
func (s *Session) Seed(start puzzle.Arrangement) (puzzle.Ordinal, error) {
	o, err := puzzle.EncodeStrict(start)
	if err != nil {
		return 0, translateError(err)
	}

	if _, err := s.Insert(o, o); err != nil {
		return 0, err
	}

	return o, nil
}

// Expand records every single-step successor of a with a as parent and
// returns the successors that had not been seen before, in move order.
//
// On AllocationFailure the successors recorded so far are returned together
// with an error wrapping ErrAllocationFailed.
func (s *Session) Expand(a puzzle.Arrangement) ([]puzzle.Successor, error) {
	return s.expand(a, puzzle.Moves)
}

// ExpandSlides is Expand for multi-tile moves (see puzzle.Slides).
func (s *Session) ExpandSlides(a puzzle.Arrangement) ([]puzzle.Successor, error) {
	return s.expand(a, puzzle.Slides)
}

func (s *Session) expand(a puzzle.Arrangement, gen func(puzzle.Arrangement) ([]puzzle.Successor, error)) ([]puzzle.Successor, error) {
	succ, err := gen(a)
	if err != nil {
		return nil, translateError(err)
	}

	parent, _ := puzzle.Encode(a)

	fresh := succ[:0]
	for _, m := range succ {
		res, err := s.Insert(m.Ordinal, parent)
		if err != nil {
			return fresh, err
		}
		if res == Inserted {
			fresh = append(fresh, m)
		}
	}

	return fresh, nil
}

// Path walks parent links from goal back to a root recorded with Seed and
// returns the ordinals from the root to goal. A root yields a path of length 1.
func (s *Session) Path(goal puzzle.Ordinal) ([]puzzle.Ordinal, error) {
	key := goal.Key()
	path := []puzzle.Ordinal{key}
	limit := s.set.Len() + 1

	for {
		parent, ok := s.Find(key)
		if !ok {
			return nil, fmt.Errorf("%w: %#x", ErrNotFound, uint64(key))
		}
		if parent == key {
			break
		}
		if len(path) >= limit {
			return nil, &ErrPathTooLong{Goal: goal.Key(), Steps: len(path), cause: ErrCorruptPath}
		}

		path = append(path, parent)
		key = parent
	}

	slices.Reverse(path)

	return path, nil
}

// Close releases all tables. It is safe to call Close more than once.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	states, tables := s.set.Len(), s.set.Tables()
	err := s.set.Close()
	s.logger.LogClose(context.Background(), states, tables, err)

	return translateError(err)
}
