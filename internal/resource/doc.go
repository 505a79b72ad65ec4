// Package resource implements the memory budget shared by the visited-set tables.
//
// Every byte a visited set holds is charged to a Budget under a Kind (bucket
// arrays or overflow storage). The hard limit is a weighted semaphore and
// Charge is non-blocking: a refused charge returns ErrBudgetExceeded at once,
// which the set reports as an allocation failure.
//
//	b := resource.NewBudget(1 << 30)
//
//	if err := b.Charge(resource.Tables, 1<<20); err != nil {
//	    // ErrBudgetExceeded
//	}
//	defer b.Refund(resource.Tables, 1<<20)
//
// All methods are safe for concurrent use, so one budget can be shared by
// several sets. A nil *Budget is valid and tracks nothing.
package resource
