package visited

import (
	"unsafe"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/slidego/internal/mmap"
)

// occupied marks an inline slot as holding an entry. Keys never use bit 63.
const occupied = uint64(1) << 63

// entry is one (key, parent) pair. Inline slots carry the occupied flag in key.
type entry struct {
	key    uint64
	parent uint64
}

const entrySize = int64(unsafe.Sizeof(entry{}))

type table struct {
	slots    []entry
	mapped   *mmap.Array[entry] // nil for heap storage
	overflow map[uint32][]entry
	busy     *roaring.Bitmap
	next     int // arena index of the linked table, -1 if none

	entries         int
	buckets         int
	overflowEntries int
	loadTooHigh     bool
	bytes           int64 // charged to the memory budget
	overflowBytes   int64 // part of bytes held by overflow slices
}

func newTable(size int, heap bool) (*table, error) {
	t := &table{
		overflow: make(map[uint32][]entry),
		busy:     roaring.New(),
		next:     -1,
		bytes:    int64(size) * entrySize,
	}

	if heap {
		t.slots = make([]entry, size)
		return t, nil
	}

	arr, err := mmap.Alloc[entry](size)
	if err != nil {
		return nil, err
	}
	// Advisory only.
	_ = arr.Advise(mmap.AdviceRandom)

	t.mapped = arr
	t.slots = arr.Items()
	return t, nil
}

// lookup scans bucket b for key.
func (t *table) lookup(b uint32, key uint64) (uint64, bool) {
	if s := &t.slots[b]; s.key == key|occupied {
		return s.parent, true
	}
	for _, e := range t.overflow[b] {
		if e.key == key {
			return e.parent, true
		}
	}
	return 0, false
}

func (t *table) empty(b uint32) bool {
	return t.slots[b].key&occupied == 0
}

func (t *table) busyBuckets() int {
	return int(t.busy.GetCardinality())
}

func (t *table) release() error {
	t.overflow = nil
	t.busy = nil
	t.slots = nil
	if t.mapped != nil {
		return t.mapped.Close()
	}
	return nil
}
