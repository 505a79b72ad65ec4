//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// VirtualAlloc commits on demand like an anonymous mmap, so it does not need
// paging-file space up front.
func mapAnon(size int) ([]byte, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), size), nil
}

func unmap(b []byte) error {
	return windows.VirtualFree(uintptr(unsafe.Pointer(&b[0])), 0, windows.MEM_RELEASE)
}

func advise(b []byte, advice Advice) error {
	if advice != AdviceFree {
		return nil
	}
	// MEM_RESET keeps the range committed but lets the system discard it.
	_, err := windows.VirtualAlloc(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b)),
		windows.MEM_RESET, windows.PAGE_READWRITE)
	return err
}
