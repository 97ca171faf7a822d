//go:build !unix && !windows

// Package mmap acquires read-only views of an open descriptor's contents.
package mmap

import (
	"fmt"
	"syscall"
)

// Map reads the descriptor's full contents when mmap is not available.
// The descriptor's file position is saved and restored around the read.
// An empty file yields (nil, nil).
func Map(fd int) ([]byte, error) {
	pos, err := syscall.Seek(fd, 0, 1) // SEEK_CUR
	if err != nil {
		return nil, fmt.Errorf("mmap: seek: %w", err)
	}
	size, err := syscall.Seek(fd, 0, 2) // SEEK_END
	if err != nil {
		return nil, fmt.Errorf("mmap: seek: %w", err)
	}
	if _, err := syscall.Seek(fd, 0, 0); err != nil {
		return nil, fmt.Errorf("mmap: seek: %w", err)
	}
	defer syscall.Seek(fd, pos, 0)

	if size == 0 {
		return nil, nil
	}
	data := make([]byte, size)
	read := 0
	for read < len(data) {
		n, err := syscall.Read(fd, data[read:])
		if err != nil {
			return nil, fmt.Errorf("mmap: read: %w", err)
		}
		if n == 0 {
			break
		}
		read += n
	}
	return data[:read], nil
}

// Unmap is a no-op: views here are heap copies.
func Unmap(data []byte) error {
	return nil
}
