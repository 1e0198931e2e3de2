// Package cursor provides forward-only byte and bit readers over an
// in-memory buffer, plus the ULEB128 varint codec both VROMFS and BLK
// parsing build on.
package cursor

import "errors"

// ErrUnexpectedEOF is returned when a read runs past the end of the buffer.
var ErrUnexpectedEOF = errors.New("cursor: unexpected eof")

// ErrOverflow is returned when a ULEB128 varint does not terminate within
// 64 bits.
var ErrOverflow = errors.New("cursor: uleb128 overflow")
