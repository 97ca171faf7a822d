//go:build unix

package mmap

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Map acquires the full contents of fd as a private snapshot. The
// descriptor is memory-mapped only for the bulk copy and unmapped before
// returning: a long-lived MAP_PRIVATE view would still observe later
// writes to pages it has not copied yet, so the snapshot is taken eagerly.
// An empty file yields (nil, nil); callers decide whether that is fatal.
func Map(fd int) ([]byte, error) {
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		return nil, fmt.Errorf("mmap: fstat: %w", err)
	}
	size := st.Size
	if size == 0 {
		return nil, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmap: file too large to map (%d bytes)", size)
	}
	data, err := unix.Mmap(fd, 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}
	view := make([]byte, len(data))
	copy(view, data)
	if err := unix.Munmap(data); err != nil {
		return nil, fmt.Errorf("mmap: munmap: %w", err)
	}
	return view, nil
}

// Unmap releases a view returned by Map. Views are private snapshots on
// every platform, so release is a no-op; it exists to keep acquire and
// release paired at the call sites.
func Unmap(data []byte) error {
	return nil
}
