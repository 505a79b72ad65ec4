//go:build unix

package mmap

import (
	"errors"

	"golang.org/x/sys/unix"
)

func mapAnon(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

func unmap(b []byte) error {
	return unix.Munmap(b)
}

func advise(b []byte, advice Advice) error {
	flag := unix.MADV_NORMAL
	switch advice {
	case AdviceRandom:
		flag = unix.MADV_RANDOM
	case AdviceFree:
		flag = unix.MADV_DONTNEED
	}

	// Some kernels reject advice they do not implement; hints are optional.
	if err := unix.Madvise(b, flag); err != nil && !errors.Is(err, unix.EINVAL) {
		return err
	}
	return nil
}
