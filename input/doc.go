// Package input provides the byte sources consumed by the yangkit parsers.
//
// # Overview
//
// Schema text and data instances can arrive as an already-open descriptor,
// an *os.File, a path on disk, or an in-process buffer. Input wraps all
// four behind one handle so the parsers only ever deal with a cursor over
// a contiguous, read-only view of the bytes.
//
// File-backed media (Fd, File, Filepath) are snapshotted in full when the
// handle is created or re-pointed: the bytes are acquired through a
// transient memory mapping on Unix and a plain read elsewhere, and the
// view never tracks later writes to the file. Memory handles alias the
// caller's buffer without copying; the buffer must outlive the handle.
//
// # Ownership
//
// A handle always owns its mapped view. Whether it owns the underlying
// resource depends on the medium and on how it is torn down:
//
//   - Fd and File resources are caller-owned unless Free is called with
//     destroy set.
//   - Filepath opens its descriptor privately; it is never caller-visible
//     and is always closed by Free.
//   - Memory buffers are always caller-owned; Free(true) merely drops the
//     alias so the garbage collector can reclaim them.
//
// The get-or-replace mutators (Fd, File, Filepath, Memory) follow the same
// rule: a replaced Fd or File resource is handed back to the caller, never
// closed by the handle.
//
// # Reading
//
// Read is deliberately bidirectional: a negative count backtracks over
// bytes already traversed, which lets parsers re-scan resident input
// instead of maintaining a pushback buffer. Reads are bounded by the end
// of the view and by the first NUL byte; see Read for the exact contract.
//
// Handles are not safe for concurrent use.
package input
