// Package mmap provides typed arrays backed by anonymous memory mappings.
//
// Large, pointer-free arrays (such as the bucket arrays of the visited set)
// are kept outside the Go heap so the garbage collector never scans them.
// A failed mapping is reported as an error, which callers surface as an
// allocation failure instead of crashing the process.
//
// # Usage
//
//	arr, err := mmap.Alloc[slot](1 << 16)
//	if err != nil { ... }
//	defer arr.Close()
//
//	slots := arr.Items() // zero-filled, read-write
//	arr.Advise(mmap.AdviceRandom)
//
// # Platform Support
//
//   - Unix: mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT, MEM_RESET for AdviceFree
//
// # Safety
//
// The slice returned by Items is valid until Close. An Array is not safe for
// concurrent Close.
package mmap
