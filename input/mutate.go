package input

import (
	"fmt"
	"os"

	"github.com/yangkit/yangkit/internal/mmap"
	"github.com/yangkit/yangkit/ylog"
)

// remapFd maps fd and swaps the handle's view to it, rewinding the cursor.
// On any failure the handle is left completely untouched. All
// descriptor-backed mutators funnel through here so mapping teardown and
// setup live in one place.
func (in *Input) remapFd(fd int) error {
	view, err := mmap.Map(fd)
	if err != nil {
		ylog.Errorf(in.path, "failed to map input descriptor %d (%v)", fd, err)
		return fmt.Errorf("input: map descriptor %d: %w", fd, err)
	}
	if len(view) == 0 {
		ylog.Errorf(in.path, "empty input file")
		return ErrEmptyInput
	}
	if err := mmap.Unmap(in.data); err != nil {
		// The new view is already established; losing the old one is not
		// worth failing the caller over.
		ylog.Warnf(in.path, "failed to release previous input view (%v)", err)
	}
	in.data = view
	in.off = 0
	return nil
}

// Fd returns the handle's descriptor and, when fd is non-negative,
// replaces it: the new descriptor is mapped, the old view released, and
// the previous descriptor returned. The caller decides the previous
// descriptor's fate; the handle never closes a resource it is merely told
// to stop using. On failure the handle is unmodified.
//
// Calling Fd with a negative fd is a pure accessor.
func (in *Input) Fd(fd int) (int, error) {
	if in == nil || in.kind != KindFd {
		return -1, fmt.Errorf("%w: not a descriptor input", ErrInvalidArgument)
	}
	prev := in.fd
	if fd < 0 {
		return prev, nil
	}
	if err := in.remapFd(fd); err != nil {
		return -1, err
	}
	in.fd = fd
	return prev, nil
}

// File returns the handle's *os.File and, when f is non-nil, replaces it
// under the same contract as Fd: the previous file is returned for the
// caller to close, and on failure the handle is unmodified.
//
// Calling File with a nil f is a pure accessor.
func (in *Input) File(f *os.File) (*os.File, error) {
	if in == nil || in.kind != KindFile {
		return nil, fmt.Errorf("%w: not a file input", ErrInvalidArgument)
	}
	prev := in.file
	if f == nil {
		return prev, nil
	}
	if err := in.remapFd(int(f.Fd())); err != nil {
		return nil, err
	}
	in.file = f
	return prev, nil
}

// Filepath returns the handle's path and, when path is non-empty, opens
// and maps the new file, returning the previous path. Unlike Fd and File,
// the previous descriptor is the handle's own private resource and is
// closed here. On failure the newly opened file is closed and the handle
// left fully unmodified.
//
// Calling Filepath with an empty path is a pure accessor.
func (in *Input) Filepath(path string) (string, error) {
	if in == nil || in.kind != KindFilepath {
		return "", fmt.Errorf("%w: not a filepath input", ErrInvalidArgument)
	}
	if path == "" {
		return in.path, nil
	}
	f, err := os.Open(path)
	if err != nil {
		ylog.Errorf("", "failed to open file %q (%v)", path, err)
		return "", fmt.Errorf("input: open %q: %w", path, err)
	}
	if err := in.remapFd(int(f.Fd())); err != nil {
		_ = f.Close()
		return "", err
	}
	prev := in.path
	if err := in.file.Close(); err != nil {
		ylog.Warnf("", "failed to close previous file %q (%v)", prev, err)
	}
	in.file = f
	in.path = path
	return prev, nil
}

// Memory returns the bytes remaining from the cursor and, when data is
// non-nil, re-points the handle at data and rewinds the cursor. The
// previous buffer stays caller-owned.
//
// Calling Memory with a nil data is a pure accessor.
func (in *Input) Memory(data []byte) ([]byte, error) {
	if in == nil || in.kind != KindMemory {
		return nil, fmt.Errorf("%w: not a memory input", ErrInvalidArgument)
	}
	remaining := in.data[in.off:]
	if data != nil {
		in.data = data
		in.off = 0
	}
	return remaining, nil
}
