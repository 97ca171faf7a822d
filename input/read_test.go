package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const twoLines = "testline1\ntestline2\n" // 20 bytes

// runReadSequence drives the full forward/reset/backward script against a
// handle over twoLines. The same behavior must hold for every medium.
func runReadSequence(t *testing.T, in *Input) {
	t.Helper()
	buf := make([]byte, 20)

	n, err := in.Read(nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	n, err = in.Read(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "testline1\n", string(buf[:n]))

	n, err = in.Read(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "testline2\n", string(buf[:n]))

	require.NoError(t, in.Reset())
	n, err = in.Read(buf, 20)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	require.Equal(t, twoLines, string(buf[:n]))

	// At end of input a forward read yields nothing.
	n, err = in.Read(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	// Backward reads return the traversed span in original order.
	n, err = in.Read(buf, -10)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "testline2\n", string(buf[:n]))

	n, err = in.Read(buf, -10)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "testline1\n", string(buf[:n]))

	// The cursor is back at the start; further backtracking clamps.
	n, err = in.Read(buf, -10)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	// A nil buffer seeks without copying.
	n, err = in.Read(nil, 10)
	require.NoError(t, err)
	require.Equal(t, 10, n)

	// Asking for more than remains stops at the end of the view.
	n, err = in.Read(buf, 15)
	require.NoError(t, err)
	require.Equal(t, 10, n)
	require.Equal(t, "testline2\n", string(buf[:n]))
}

func TestReadMemory(t *testing.T) {
	var nilIn *Input
	_, err := nilIn.Read(nil, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	in, err := NewMemory([]byte(twoLines))
	require.NoError(t, err)
	defer in.Free(false)
	require.Equal(t, len(twoLines), in.Len())

	runReadSequence(t, in)
}

func TestReadFilepath(t *testing.T) {
	in, err := NewFilepath(writeTemp(t, twoLines))
	require.NoError(t, err)
	defer in.Free(false)
	require.Equal(t, len(twoLines), in.Len())

	runReadSequence(t, in)
}

func TestReadFd(t *testing.T) {
	f := openTemp(t, twoLines)
	in, err := NewFd(int(f.Fd()))
	require.NoError(t, err)
	defer in.Free(false)

	runReadSequence(t, in)
}

func TestReadStopsAtNul(t *testing.T) {
	// An embedded NUL bounds reads: this layer's input is NUL-terminated
	// text by contract, for memory buffers and mapped files alike.
	in, err := NewMemory([]byte("abc\x00def"))
	require.NoError(t, err)
	defer in.Free(false)

	buf := make([]byte, 10)
	n, err := in.Read(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "abc", string(buf[:n]))

	// Stuck at the terminator, forward progress stops...
	n, err = in.Read(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	// ...for pure seeks too.
	require.NoError(t, in.Reset())
	n, err = in.Read(nil, 10)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestReadClampsToBuffer(t *testing.T) {
	in, err := NewMemory([]byte(twoLines))
	require.NoError(t, err)
	defer in.Free(false)

	buf := make([]byte, 4)
	n, err := in.Read(buf, 10)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "test", string(buf))

	n, err = in.Read(buf, -10)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.Equal(t, "test", string(buf))
}

func TestBackwardClampsAtStart(t *testing.T) {
	in, err := NewMemory([]byte(twoLines))
	require.NoError(t, err)
	defer in.Free(false)

	_, err = in.Read(nil, 5)
	require.NoError(t, err)

	buf := make([]byte, 10)
	n, err := in.Read(buf, -10)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, "testl", string(buf[:n]))
}

func TestResetIdempotent(t *testing.T) {
	in, err := NewMemory([]byte(twoLines))
	require.NoError(t, err)
	defer in.Free(false)

	_, err = in.Read(nil, 10)
	require.NoError(t, err)

	require.NoError(t, in.Reset())
	require.NoError(t, in.Reset())

	buf := make([]byte, 20)
	n, err := in.Read(buf, 20)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	require.Equal(t, twoLines, string(buf))

	var nilIn *Input
	require.ErrorIs(t, nilIn.Reset(), ErrInvalidArgument)
}

func TestReadAfterFree(t *testing.T) {
	in, err := NewMemory([]byte("x"))
	require.NoError(t, err)
	require.NoError(t, in.Free(false))

	_, err = in.Read(nil, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
