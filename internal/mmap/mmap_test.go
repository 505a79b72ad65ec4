package mmap

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	a, b uint64
}

func TestAlloc(t *testing.T) {
	arr, err := Alloc[pair](4096)
	require.NoError(t, err)

	items := arr.Items()
	require.Len(t, items, 4096)
	assert.Equal(t, 4096, arr.Len())
	assert.Equal(t, int64(4096*16), arr.Size())

	for _, p := range items[:128] {
		require.Zero(t, p)
	}
	items[0] = pair{1, 2}
	items[4095] = pair{3, 4}
	assert.Equal(t, pair{1, 2}, arr.Items()[0])
	assert.Equal(t, pair{3, 4}, arr.Items()[4095])

	require.NoError(t, arr.Advise(AdviceRandom))
	require.NoError(t, arr.Advise(AdviceNormal))

	require.NoError(t, arr.Close())
	require.NoError(t, arr.Close(), "close is idempotent")
	assert.Nil(t, arr.Items())
	assert.ErrorIs(t, arr.Advise(AdviceRandom), ErrClosed)
}

func TestAllocEmpty(t *testing.T) {
	arr, err := Alloc[uint64](0)
	require.NoError(t, err)
	assert.Equal(t, 0, arr.Len())
	assert.NoError(t, arr.Advise(AdviceFree))
	assert.NoError(t, arr.Close())

	_, err = Alloc[uint64](-1)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestAdviceFreeZeroesPages(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("MADV_DONTNEED zeroes private pages only on linux")
	}

	arr, err := Alloc[uint64](1 << 12)
	require.NoError(t, err)
	defer arr.Close()

	arr.Items()[10] = 42
	require.NoError(t, arr.Advise(AdviceFree))
	assert.Zero(t, arr.Items()[10])
}
