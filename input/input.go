package input

import (
	"errors"
	"fmt"
	"os"

	"github.com/yangkit/yangkit/internal/mmap"
	"github.com/yangkit/yangkit/ylog"
)

// Kind identifies the backing medium of an Input.
type Kind int

const (
	// KindInvalid is the zero value. No live handle carries it; a freed
	// handle is marked KindInvalid so reuse is detected.
	KindInvalid Kind = iota
	// KindFd reads from a mapped view of a raw file descriptor.
	KindFd
	// KindFile reads from a mapped view of an *os.File's descriptor.
	KindFile
	// KindFilepath reads from a mapped view of a privately opened file.
	KindFilepath
	// KindMemory aliases a caller-owned buffer.
	KindMemory
)

func (k Kind) String() string {
	switch k {
	case KindFd:
		return "descriptor"
	case KindFile:
		return "file"
	case KindFilepath:
		return "filepath"
	case KindMemory:
		return "memory"
	default:
		return "invalid"
	}
}

var (
	// ErrInvalidArgument reports a nil handle, a nil or negative resource,
	// or a mutator applied to the wrong medium.
	ErrInvalidArgument = errors.New("input: invalid argument")
	// ErrEmptyInput reports a file medium that mapped to zero bytes.
	// Empty input is rejected, not treated as valid empty content.
	ErrEmptyInput = errors.New("input: empty input file")
	// ErrClosed reports use of a handle that was already freed.
	ErrClosed = errors.New("input: handle already freed")
)

// Input is a byte source for the parsers. See the package documentation
// for the medium and ownership model.
type Input struct {
	kind Kind
	fd   int      // KindFd payload; -1 otherwise
	file *os.File // KindFile payload, or KindFilepath's private handle
	path string   // KindFilepath payload
	data []byte   // mapped view, or the caller's buffer for KindMemory
	off  int      // cursor, 0 <= off <= len(data)
}

// NewFd creates a handle over an open readable descriptor. The
// descriptor's full contents are mapped; the descriptor itself stays
// caller-owned unless Free is later called with destroy set.
func NewFd(fd int) (*Input, error) {
	if fd < 0 {
		return nil, fmt.Errorf("%w: negative descriptor", ErrInvalidArgument)
	}
	view, err := mmap.Map(fd)
	if err != nil {
		ylog.Errorf("", "failed to map input descriptor %d (%v)", fd, err)
		return nil, fmt.Errorf("input: map descriptor %d: %w", fd, err)
	}
	if len(view) == 0 {
		ylog.Errorf("", "empty input file")
		return nil, ErrEmptyInput
	}
	return &Input{kind: KindFd, fd: fd, data: view}, nil
}

// NewFile creates a handle over an open *os.File, mapping its descriptor.
// The file stays caller-owned unless Free is later called with destroy set.
func NewFile(f *os.File) (*Input, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil file", ErrInvalidArgument)
	}
	in, err := NewFd(int(f.Fd()))
	if err != nil {
		return nil, err
	}
	in.kind = KindFile
	in.fd = -1
	in.file = f
	return in, nil
}

// NewFilepath opens path read-only and creates a handle over it. The
// descriptor is private to the handle and is closed by Free regardless of
// the destroy flag.
func NewFilepath(path string) (*Input, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidArgument)
	}
	f, err := os.Open(path)
	if err != nil {
		ylog.Errorf("", "failed to open file %q (%v)", path, err)
		return nil, fmt.Errorf("input: open %q: %w", path, err)
	}
	in, err := NewFd(int(f.Fd()))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	in.kind = KindFilepath
	in.fd = -1
	in.file = f
	in.path = path
	return in, nil
}

// NewMemory creates a handle that aliases data without copying. The
// caller retains ownership; data must outlive the handle. Reads stop at
// the end of the buffer or at an embedded NUL byte, whichever comes first.
func NewMemory(data []byte) (*Input, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	return &Input{kind: KindMemory, fd: -1, data: data}, nil
}

// Kind returns the handle's backing medium.
func (in *Input) Kind() Kind {
	if in == nil {
		return KindInvalid
	}
	return in.kind
}

// Len returns the length of the active view: the mapped size for file
// media, the buffer length for memory.
func (in *Input) Len() int {
	if in == nil {
		return 0
	}
	return len(in.data)
}

// Free releases the handle. The mapped view is always released for file
// media. With destroy set, the underlying resource is released too: the
// descriptor is closed for KindFd, the *os.File for KindFile, and a
// KindMemory alias is dropped for the garbage collector. With destroy
// clear, Fd and File resources stay open for the caller. A Filepath
// handle's private descriptor is closed in both cases.
//
// Freeing a nil handle is a no-op. Freeing a handle twice is a usage
// error: it is logged and ErrClosed returned, with no other effect.
func (in *Input) Free(destroy bool) error {
	if in == nil {
		return nil
	}
	if in.kind == KindInvalid {
		ylog.Errorf("", "free of an already freed input handle")
		return ErrClosed
	}

	var errs []error
	switch in.kind {
	case KindMemory:
		// Nothing mapped, nothing to close. Dropping the alias below is
		// all that "destroying" a borrowed buffer means here.
	case KindFd:
		if err := mmap.Unmap(in.data); err != nil {
			errs = append(errs, err)
		}
		if destroy {
			if err := closeFd(in.fd); err != nil {
				errs = append(errs, fmt.Errorf("input: close descriptor %d: %w", in.fd, err))
			}
		}
	case KindFile:
		if err := mmap.Unmap(in.data); err != nil {
			errs = append(errs, err)
		}
		if destroy {
			if err := in.file.Close(); err != nil {
				errs = append(errs, fmt.Errorf("input: close file: %w", err))
			}
		}
	case KindFilepath:
		if err := mmap.Unmap(in.data); err != nil {
			errs = append(errs, err)
		}
		// The descriptor was opened by the handle and is never
		// caller-visible, so it is closed regardless of destroy.
		if err := in.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("input: close %q: %w", in.path, err))
		}
	default:
		ylog.Errorf("", "unhandled input medium %d", in.kind)
		errs = append(errs, fmt.Errorf("%w: unhandled medium %d", ErrInvalidArgument, in.kind))
	}

	in.kind = KindInvalid
	in.fd = -1
	in.file = nil
	in.path = ""
	in.data = nil
	in.off = 0
	return errors.Join(errs...)
}
