package binary

import (
	"encoding/binary"

	"github.com/wippyai/gif-demux/errors"
)

// Cursor is a bounds-checked reader over an immutable byte buffer.
// It holds no position: every read names its absolute offset and the
// caller decides where to read next.
type Cursor struct {
	buf []byte
}

// NewCursor creates a Cursor over buf. The buffer is not copied and must not
// be modified while the Cursor is in use.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Len returns the buffer length.
func (c *Cursor) Len() int {
	return len(c.buf)
}

// Peek returns the byte at off.
func (c *Cursor) Peek(off int) (byte, error) {
	if err := c.check(off, 1); err != nil {
		return 0, err
	}
	return c.buf[off], nil
}

// ReadUint8 reads a single byte at off.
func (c *Cursor) ReadUint8(off int) (uint8, error) {
	return c.Peek(off)
}

// ReadUint16LE reads a little-endian uint16 at off.
func (c *Cursor) ReadUint16LE(off int) (uint16, error) {
	if err := c.check(off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(c.buf[off:]), nil
}

// ReadFixed returns the n bytes starting at off. The result aliases the
// underlying buffer.
func (c *Cursor) ReadFixed(off, n int) ([]byte, error) {
	if err := c.check(off, n); err != nil {
		return nil, err
	}
	return c.buf[off : off+n : off+n], nil
}

// check validates that [off, off+n) lies inside the buffer.
func (c *Cursor) check(off, n int) error {
	if off < 0 || n < 0 || n > len(c.buf) || off > len(c.buf)-n {
		return errors.Truncated(off, n, len(c.buf))
	}
	return nil
}

// Stream tracks the dispatcher's read position over a Cursor.
type Stream struct {
	*Cursor
	pos int
}

// NewStream creates a Stream positioned at pos.
func NewStream(c *Cursor, pos int) *Stream {
	return &Stream{Cursor: c, pos: pos}
}

// Position returns the current byte position.
func (s *Stream) Position() int {
	return s.pos
}

// Advance moves the position forward by n bytes.
func (s *Stream) Advance(n int) {
	s.pos += n
}

// Remaining returns the number of bytes after the current position.
func (s *Stream) Remaining() int {
	if s.pos >= s.Len() {
		return 0
	}
	return s.Len() - s.pos
}

// Done reports whether the position has reached the end of the buffer.
func (s *Stream) Done() bool {
	return s.pos >= s.Len()
}

// ReadSubBlocks decodes a data sub-block chain starting at the length byte at
// off. It returns the concatenated payloads and the number of bytes consumed,
// terminator included. A zero length byte is the only terminator.
//
// The chain is walked twice: once to validate every length byte and total the
// payload, then again to copy into a buffer of exactly that size.
func (c *Cursor) ReadSubBlocks(off int) ([]byte, int, error) {
	total := 0
	pos := off
	for {
		size, err := c.Peek(pos)
		if err != nil {
			return nil, 0, err
		}
		if size == 0 {
			break
		}
		if err := c.check(pos+1, int(size)); err != nil {
			return nil, 0, err
		}
		total += int(size)
		pos += 1 + int(size)
	}

	payload := make([]byte, 0, total)
	for p := off; p < pos; {
		size := int(c.buf[p])
		payload = append(payload, c.buf[p+1:p+1+size]...)
		p += 1 + size
	}
	return payload, pos + 1 - off, nil
}
