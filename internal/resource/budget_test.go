package resource

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudget(t *testing.T) {
	b := NewBudget(100)

	require.NoError(t, b.Charge(Tables, 64))
	require.NoError(t, b.Charge(Overflow, 32))
	assert.Equal(t, int64(96), b.Used())
	assert.Equal(t, int64(64), b.UsedBy(Tables))
	assert.Equal(t, int64(32), b.UsedBy(Overflow))

	err := b.Charge(Overflow, 8)
	require.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Contains(t, err.Error(), "overflow needs 8 bytes, 96 of 100 in use")
	assert.Equal(t, int64(96), b.Used())

	b.Refund(Tables, 64)
	assert.Equal(t, int64(32), b.Used())
	assert.Zero(t, b.UsedBy(Tables))

	require.NoError(t, b.Charge(Overflow, 8))
	assert.Equal(t, int64(40), b.UsedBy(Overflow))
	assert.Equal(t, int64(96), b.Peak())
	assert.Equal(t, int64(100), b.Limit())
}

func TestBudget_Unlimited(t *testing.T) {
	b := NewBudget(0)

	require.NoError(t, b.Charge(Tables, 1<<40))
	assert.Equal(t, int64(1<<40), b.Used())

	b.Refund(Tables, 1<<39)
	assert.Equal(t, int64(1<<39), b.Used())
	assert.Zero(t, b.Limit())
	assert.Zero(t, NewBudget(-1).Limit())
}

func TestBudget_Nil(t *testing.T) {
	var b *Budget
	assert.NoError(t, b.Charge(Tables, 10))
	b.Refund(Tables, 10)
	assert.Zero(t, b.Used())
	assert.Zero(t, b.UsedBy(Overflow))
	assert.Zero(t, b.Peak())
	assert.Zero(t, b.Limit())
}

func TestBudget_IgnoresNonPositive(t *testing.T) {
	b := NewBudget(10)
	require.NoError(t, b.Charge(Tables, 0))
	require.NoError(t, b.Charge(Tables, -5))
	b.Refund(Tables, -5)
	assert.Zero(t, b.Used())
}

func TestBudget_Shared(t *testing.T) {
	const workers, charges = 8, 1000
	b := NewBudget(workers * charges)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range charges {
				assert.NoError(t, b.Charge(Overflow, 1))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers*charges), b.Used())
	assert.ErrorIs(t, b.Charge(Tables, 1), ErrBudgetExceeded)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "tables", Tables.String())
	assert.Equal(t, "overflow", Overflow.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
