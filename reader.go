// reader.go implements the attribute stream reader: preamble validation
// on construction followed by a lazy, checksum-verified walk of the
// attribute records.

package tnef

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/newpavlov/tnef/codepage"
)

// Attribute levels. Every record starts with one of these bytes.
const (
	lvlMessage    = 0x01
	lvlAttachment = 0x02
)

// Wire ids of the two mandatory preamble records.
const (
	idTnefVersion  = 0x00089006
	idOemCodepage  = 0x00069007
	tnefVersionLen = 4
	oemCodepageLen = 8
)

// tnefVersion is the only attTnefVersion payload this package accepts
// (version 1.0).
var tnefVersion = []byte{0x00, 0x00, 0x01, 0x00}

// Reader reads the attributes of a TNEF stream one record at a time.
//
// A stream carries message-level attributes first and attachment-level
// attributes after; the switch happens at the first level-2 record and is
// one-way. Reader enforces that ordering and verifies the checksum of
// every record before handing it out.
//
// Reader is not safe for concurrent use.
type Reader struct {
	cur      cursor
	codePage uint32
	section  Section
	done     bool
}

// NewReader validates the TNEF preamble (signature, attTnefVersion record,
// attOemCodepage record) and returns a reader positioned at the first
// attribute.
//
// The reader borrows data: every Attribute.Data it yields is a subslice of
// it, so the buffer must stay unmodified while the reader or any yielded
// attribute is in use.
func NewReader(data []byte) (*Reader, error) {
	r := &Reader{cur: cursor{buf: data}, section: MessageSection}
	if err := r.readHeader(); err != nil {
		return nil, err
	}
	if err := r.readVersion(); err != nil {
		return nil, err
	}
	cp, err := r.readOemCodePage()
	if err != nil {
		return nil, err
	}
	r.codePage = cp
	return r, nil
}

// CodePage returns the primary OEM code page declared by the stream. It
// selects the text encoding of every string-valued attribute.
func (r *Reader) CodePage() uint32 {
	return r.codePage
}

// Next returns the next attribute of the stream, or io.EOF once the stream
// is exhausted. Any other error is terminal: the reader stays permanently
// exhausted and every later call returns io.EOF.
//
//	for {
//	    attr, err := r.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use attr
//	}
func (r *Reader) Next() (Attribute, error) {
	if r.done {
		return Attribute{}, io.EOF
	}
	attr, err := r.readAttribute()
	if err != nil {
		r.done = true
		return Attribute{}, err
	}
	return attr, nil
}

// readAttribute parses one level-prefixed record: level byte, id, declared
// length, payload, trailing checksum.
func (r *Reader) readAttribute() (Attribute, error) {
	if r.cur.remaining() == 0 {
		return Attribute{}, io.EOF
	}
	level, err := r.cur.takeByte()
	if err != nil {
		return Attribute{}, err
	}
	switch {
	case level == lvlMessage && r.section == MessageSection:
	case level == lvlAttachment && r.section == AttachmentSection:
	case level == lvlMessage && r.section == AttachmentSection:
		return Attribute{}, ErrUnexpectedMessageAttribute
	case level == lvlAttachment && r.section == MessageSection:
		r.section = AttachmentSection
	default:
		return Attribute{}, fmt.Errorf("%w: 0x%02X", ErrInvalidAttributeLevel, level)
	}

	rawID, err := r.cur.takeUint32()
	if err != nil {
		return Attribute{}, err
	}
	id, err := resolveAttributeID(r.section, rawID)
	if err != nil {
		return Attribute{}, err
	}
	length, err := r.cur.takeUint32()
	if err != nil {
		return Attribute{}, err
	}
	payload, err := r.cur.take(int(length))
	if err != nil {
		return Attribute{}, err
	}
	if err := r.verifyChecksum(payload); err != nil {
		return Attribute{}, err
	}
	return Attribute{ID: id, Data: payload}, nil
}

// verifyChecksum consumes the trailing 16-bit checksum of a record and
// compares it against the computed sum of the payload.
func (r *Reader) verifyChecksum(payload []byte) error {
	want, err := r.cur.takeUint16()
	if err != nil {
		return err
	}
	if checksum(payload) != want {
		return ErrChecksumMismatch
	}
	return nil
}

// checksum computes the TNEF record checksum: the sum of all payload
// bytes, wrapping in a 16-bit accumulator.
func checksum(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}

// readHeader checks the stream signature and consumes the two-byte legacy
// key, whose value carries no information worth validating.
func (r *Reader) readHeader() error {
	sig, err := r.cur.takeUint32()
	if err != nil {
		return err
	}
	if sig != Signature {
		return fmt.Errorf("%w: signature 0x%08X", ErrInvalidHeader, sig)
	}
	_, err = r.cur.takeUint16()
	return err
}

// readVersion consumes the mandatory attTnefVersion record, which must be
// the first record of every stream.
func (r *Reader) readVersion() error {
	level, err := r.cur.takeByte()
	if err != nil {
		return err
	}
	id, err := r.cur.takeUint32()
	if err != nil {
		return err
	}
	length, err := r.cur.takeUint32()
	if err != nil {
		return err
	}
	if level != lvlMessage || id != idTnefVersion || length != tnefVersionLen {
		return ErrInvalidVersion
	}
	payload, err := r.cur.take(tnefVersionLen)
	if err != nil {
		return err
	}
	if !bytes.Equal(payload, tnefVersion) {
		return ErrInvalidVersion
	}
	return r.verifyChecksum(payload)
}

// readOemCodePage consumes the mandatory attOemCodepage record, which must
// follow the version record, and returns the primary code page.
func (r *Reader) readOemCodePage() (uint32, error) {
	level, err := r.cur.takeByte()
	if err != nil {
		return 0, err
	}
	id, err := r.cur.takeUint32()
	if err != nil {
		return 0, err
	}
	length, err := r.cur.takeUint32()
	if err != nil {
		return 0, err
	}
	if level != lvlMessage || id != idOemCodepage || length != oemCodepageLen {
		return 0, ErrInvalidCodePage
	}
	payload, err := r.cur.take(oemCodepageLen)
	if err != nil {
		return 0, err
	}
	if err := r.verifyChecksum(payload); err != nil {
		return 0, err
	}
	primary := binary.LittleEndian.Uint32(payload[0:4])
	secondary := binary.LittleEndian.Uint32(payload[4:8])
	if secondary != 0 {
		return 0, fmt.Errorf("%w: secondary code page %d", ErrInvalidCodePage, secondary)
	}
	if _, ok := codepage.Lookup(primary); !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedCodePage, primary)
	}
	return primary, nil
}
