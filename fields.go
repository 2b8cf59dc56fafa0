// fields.go implements the decoders for the fixed-layout and string-valued
// attribute payloads of the attachment section.

package tnef

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/newpavlov/tnef/codepage"
)

// parseDateTime decodes the 14-byte date/time layout used by the
// attAttachCreateDate and attAttachModifyDate records: six little-endian
// uint16 fields (year, month, day, hour, minute, second) followed by a
// day-of-week field, which is redundant and ignored. The result is in UTC;
// the format carries no zone information.
func parseDateTime(data []byte) (time.Time, error) {
	if len(data) != 14 {
		return time.Time{}, fmt.Errorf("%w: %d bytes", ErrInvalidDateTime, len(data))
	}
	year := int(binary.LittleEndian.Uint16(data[0:2]))
	month := int(binary.LittleEndian.Uint16(data[2:4]))
	day := int(binary.LittleEndian.Uint16(data[4:6]))
	hour := int(binary.LittleEndian.Uint16(data[6:8]))
	min := int(binary.LittleEndian.Uint16(data[8:10]))
	sec := int(binary.LittleEndian.Uint16(data[10:12]))

	// time.Date normalizes out-of-range components (month 13 rolls into
	// January of the next year), so round-trip the fields to reject values
	// that are not a real calendar moment.
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day ||
		t.Hour() != hour || t.Minute() != min || t.Second() != sec {
		return time.Time{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d:%02d",
			ErrInvalidDateTime, year, month, day, hour, min, sec)
	}
	return t, nil
}

// parseRendData decodes the 14-byte attAttachRendData payload. The
// attachment type and data flags fields each have exactly two valid
// encodings; anything else fails.
func parseRendData(data []byte) (RendData, error) {
	if len(data) != 14 {
		return RendData{}, fmt.Errorf("%w: %d bytes", ErrInvalidRendData, len(data))
	}
	var rd RendData
	switch t := AttachType(binary.LittleEndian.Uint16(data[0:2])); t {
	case AttachTypeFile, AttachTypeOLE:
		rd.Type = t
	default:
		return RendData{}, fmt.Errorf("%w: attach type 0x%04X", ErrInvalidRendData, uint16(t))
	}
	rd.Position = binary.LittleEndian.Uint32(data[2:6])
	rd.Width = binary.LittleEndian.Uint16(data[6:8])
	rd.Height = binary.LittleEndian.Uint16(data[8:10])
	switch f := AttachDataFlags(binary.LittleEndian.Uint32(data[10:14])); f {
	case FileDataDefault, FileDataMacBinary:
		rd.Flags = f
	default:
		return RendData{}, fmt.Errorf("%w: data flags 0x%08X", ErrInvalidRendData, uint32(f))
	}
	return rd, nil
}

// parseString decodes a NUL-terminated string payload using the stream's
// code page. The payload must be non-empty and end with the terminator; a
// leading byte-order mark is stripped and malformed byte sequences fail.
func parseString(data []byte, cp uint32) (string, error) {
	n := len(data)
	if n == 0 || data[n-1] != 0x00 {
		return "", fmt.Errorf("%w: missing NUL terminator", ErrInvalidString)
	}
	s, err := codepage.Decode(cp, data[:n-1])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidString, err)
	}
	return s, nil
}
