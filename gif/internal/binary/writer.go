package binary

import (
	"bytes"
	"encoding/binary"
)

// MaxSubBlock is the largest payload a single data sub-block can carry.
const MaxSubBlock = 255

// Writer provides buffered writing utilities for GIF encoding.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) {
	w.buf.WriteByte(b)
}

// WriteBytes writes a byte slice.
func (w *Writer) WriteBytes(data []byte) {
	w.buf.Write(data)
}

// WriteString writes s without a length prefix.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// WriteU16LE writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16LE(v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.buf.Write(buf[:])
}

// WriteSubBlocks writes data as a chain of data sub-blocks of at most
// MaxSubBlock bytes each, followed by the zero-length terminator.
func (w *Writer) WriteSubBlocks(data []byte) {
	for len(data) > 0 {
		n := min(len(data), MaxSubBlock)
		w.buf.WriteByte(byte(n))
		w.buf.Write(data[:n])
		data = data[n:]
	}
	w.buf.WriteByte(0)
}
