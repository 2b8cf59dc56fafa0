// cursor.go implements the forward-only view over the source buffer that
// the stream reader consumes bytes through.

package tnef

import "encoding/binary"

// cursor is a forward-only cursor over the caller's buffer. Every take
// returns a subslice of the original buffer; nothing is copied and consumed
// bytes are never revisited.
type cursor struct {
	buf []byte
}

// remaining reports how many unconsumed bytes are left.
func (c *cursor) remaining() int {
	return len(c.buf)
}

// take consumes and returns the next n bytes. It fails with
// ErrUnexpectedEOF when fewer than n bytes remain, leaving the cursor
// unchanged.
func (c *cursor) take(n int) ([]byte, error) {
	if n < 0 || len(c.buf) < n {
		return nil, ErrUnexpectedEOF
	}
	b := c.buf[:n:n]
	c.buf = c.buf[n:]
	return b, nil
}

// takeByte consumes a single byte.
func (c *cursor) takeByte() (byte, error) {
	b, err := c.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// takeUint16 consumes a little-endian uint16.
func (c *cursor) takeUint16() (uint16, error) {
	b, err := c.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// takeUint32 consumes a little-endian uint32.
func (c *cursor) takeUint32() (uint32, error) {
	b, err := c.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}
