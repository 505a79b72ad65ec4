// Package visited implements the visited-state set used by puzzle searches.
//
// The set maps a state key to the parent key that discovered it. It is tuned
// for tens of millions of write-once entries: one insert per newly discovered
// state, many lookups during deduplication and path reconstruction.
//
// # Architecture
//
//	 head table (arena index 0)          linked table (index 1)
//	┌──────────────────────────────┐    ┌──────────────────────────────┐
//	│ bucket 0  [key|parent]       │    │ bucket 0  [key|parent]       │
//	│ bucket 1  [key|parent] + ov  │ ─▶ │ bucket 1  ...                │ ─▶ ...
//	│ ...                          │    │ ...                          │
//	│ busy: roaring bitmap         │    │ busy: roaring bitmap         │
//	└──────────────────────────────┘    └──────────────────────────────┘
//
// Every table has the same number of buckets and the same hash, so a key maps
// to the same bucket index in every table of the chain. A bucket holds one
// inline entry and, once that is taken, up to SoftDepth entries in an owned
// overflow slice. A bucket whose overflow reaches SoftDepth becomes busy.
// When a bucket is full, or the table already has SoftCount busy buckets, the
// table is flagged load-too-high and the insert continues in the next table,
// which is created on demand. Tables are never merged, shrunk or rebalanced.
//
// Buckets never become empty again, so an empty bucket ends a lookup: no later
// table can hold the key.
//
// # Memory
//
// Bucket arrays are pointer-free and live in anonymous mappings by default,
// outside the Go heap. Every table and every overflow growth is charged to a
// resource.Budget; a refused charge is reported as AllocationFailure.
// Close releases everything in one pass.
//
// # Concurrency
//
// A Set is not safe for concurrent use. Lookups return parents by value, so
// no caller ever holds a reference into storage that may move.
package visited
