package input

// Read transfers up to count bytes between the input and buf and moves the
// cursor. It is the one primitive serving forward reads, look-ahead and
// backtracking:
//
//   - count > 0 reads forward. The transfer stops early at the end of the
//     view or at a NUL byte; mapped files and memory buffers are both
//     NUL-bounded, so binary-safe input must not contain NUL.
//   - count < 0 moves backward over |count| bytes, clamped at the start of
//     the view. The traversed span is still delivered in increasing-address
//     order, not reversed.
//   - count == 0 is a no-op.
//
// A nil buf seeks without copying. A non-nil buf additionally bounds the
// transfer at len(buf), so Read never writes out of range.
//
// Read returns the number of bytes traversed. A short result is a normal
// boundary condition, not an error; the only error is an invalid handle.
func (in *Input) Read(buf []byte, count int) (int, error) {
	if in == nil || in.kind == KindInvalid {
		return 0, ErrInvalidArgument
	}
	if count == 0 {
		return 0, nil
	}

	limit := count
	forward := true
	if count < 0 {
		forward = false
		limit = -count
	}
	if buf != nil && limit > len(buf) {
		limit = len(buf)
	}

	i := 0
	if forward {
		for i < limit && in.off+i < len(in.data) && in.data[in.off+i] != 0 {
			i++
		}
		if buf != nil {
			copy(buf, in.data[in.off:in.off+i])
		}
		in.off += i
	} else {
		for i < limit && in.off-i > 0 {
			i++
		}
		in.off -= i
		if buf != nil {
			copy(buf, in.data[in.off:in.off+i])
		}
	}
	return i, nil
}

// Reset rewinds the cursor to the start of the view. It never touches the
// OS-level position of an underlying descriptor or file; only the handle's
// logical cursor moves, which is meaningful because the view is a stable
// snapshot.
func (in *Input) Reset() error {
	if in == nil || in.kind == KindInvalid {
		return ErrInvalidArgument
	}
	in.off = 0
	return nil
}
