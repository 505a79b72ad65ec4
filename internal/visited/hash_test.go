package visited

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_KnownBuckets(t *testing.T) {
	s := &Set{opts: DefaultOptions}

	assert.Equal(t, uint32(24267), s.Bucket(0))
	assert.Equal(t, uint32(24267), s.Bucket(1))
	assert.Equal(t, uint32(30336), s.Bucket(1<<48))
	assert.Equal(t, uint32(24379), s.Bucket(12345))
}

func TestHash_Deterministic(t *testing.T) {
	for k := uint64(0); k < 1000; k++ {
		assert.Equal(t, Hash(k*7919), Hash(k*7919))
	}
}

func TestHash_IgnoresAnnotationBits(t *testing.T) {
	s := &Set{opts: DefaultOptions}
	for _, k := range []uint64{0, 1, 12345, 1<<48 | 77} {
		assert.Equal(t, s.Bucket(k), s.Bucket(k|0x1f<<49))
	}
}
