package visited

import (
	"fmt"

	"github.com/hupe1980/slidego/internal/conv"
	"github.com/hupe1980/slidego/internal/resource"
)

const (
	// DefaultTableSize is the number of buckets per table.
	DefaultTableSize = 64 * 1024
	// DefaultSoftDepth is the overflow length at which a bucket becomes busy.
	DefaultSoftDepth = 20
	// DefaultSoftCount is the number of busy buckets after which a table
	// stops accepting overflow entries.
	DefaultSoftCount = 40
	// DefaultKeyMask keeps the 49 permutation bits of a puzzle ordinal.
	DefaultKeyMask = 1<<49 - 1
)

// Options configures a Set.
type Options struct {
	// TableSize is the number of buckets in every table of the chain.
	TableSize int
	// SoftDepth bounds the overflow slice of a single bucket.
	SoftDepth int
	// SoftCount bounds the number of busy buckets per table.
	SoftCount int
	// KeyMask is applied to every key before hashing or comparison.
	// Bit 63 is reserved and must be clear.
	KeyMask uint64
	// Hash mixes keys. Defaults to Hash.
	Hash HashFunc
	// Heap stores bucket arrays on the Go heap instead of anonymous mappings.
	Heap bool
	// Memory is charged for every table and overflow growth. Nil means unlimited.
	Memory *resource.Budget
	// OnTableLinked is called after a table is appended to the chain.
	OnTableLinked func(index int)
}

// DefaultOptions returns the reference configuration.
var DefaultOptions = Options{
	TableSize: DefaultTableSize,
	SoftDepth: DefaultSoftDepth,
	SoftCount: DefaultSoftCount,
	KeyMask:   DefaultKeyMask,
	Hash:      Hash,
}

func (o *Options) validate() error {
	if _, err := conv.IntToUint32(o.TableSize - 1); o.TableSize <= 0 || err != nil {
		return fmt.Errorf("visited: invalid table size %d", o.TableSize)
	}
	if o.SoftDepth <= 0 {
		return fmt.Errorf("visited: invalid soft depth %d", o.SoftDepth)
	}
	if o.SoftCount <= 0 {
		return fmt.Errorf("visited: invalid soft count %d", o.SoftCount)
	}
	if o.KeyMask == 0 || o.KeyMask&occupied != 0 {
		return fmt.Errorf("visited: invalid key mask %#x", o.KeyMask)
	}
	if o.Hash == nil {
		o.Hash = Hash
	}
	return nil
}
