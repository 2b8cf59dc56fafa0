// Package mapi decodes the MAPI property streams carried inside TNEF
// attributes (attMsgProps, attRecipTable rows, and the attAttachment
// record behind Attachment.Props).
//
// Decoding is deliberately lenient: property streams produced in the wild
// are frequently truncated or padded oddly, so Decode returns every
// property it could read and stops quietly at the first one it cannot.
// This package is a diagnostic side-layer; nothing in the strict stream
// decoder depends on it.
package mapi

import (
	"encoding/binary"
	"strings"
)

// Property is a single decoded MAPI property.
type Property struct {
	Type int    // property type, e.g. TypeString8 or TypeBinary
	ID   int    // property id, e.g. PropAttachLongFilename
	Data []byte // raw value bytes, concatenated for multi-valued properties
}

// Name returns the symbolic PR_* name of the property id, or "" for ids
// outside the table.
func (p Property) Name() string {
	return PropertyName(p.ID)
}

// Decode parses a raw MAPI property stream into a slice of properties.
// Fixed-size, variable-length, multi-valued, and named properties are all
// understood; malformed trailing data ends the decode without error.
func Decode(data []byte) []Property {
	if len(data) < 4 {
		return nil
	}
	count := int(binary.LittleEndian.Uint32(data[0:4]))
	off := 4

	// Cap pre-allocation so a crafted count cannot balloon memory. Each
	// property needs at least 8 bytes.
	maxProps := len(data) / 8
	if count > maxProps {
		count = maxProps
	}
	props := make([]Property, 0, count)

	for i := 0; i < count && off+4 <= len(data); i++ {
		pt := int(binary.LittleEndian.Uint16(data[off : off+2]))
		pid := int(binary.LittleEndian.Uint16(data[off+2 : off+4]))
		off += 4

		mv := (pt & 0x1000) != 0
		bt := pt & 0xEFFF
		fs := fixedSize(bt)
		if fs < 0 {
			mv = true
		}

		// Named properties carry an extra GUID + kind header before the
		// value.
		if pid >= 0x8000 && pid <= 0xFFFE {
			if off+16 > len(data) {
				break
			}
			off += 16
			if off+4 > len(data) {
				break
			}
			kind := int(binary.LittleEndian.Uint32(data[off : off+4]))
			off += 4
			if kind == 0 {
				if off+4 > len(data) {
					break
				}
				off += 4
			} else {
				if off+4 > len(data) {
					break
				}
				nl := int(binary.LittleEndian.Uint32(data[off : off+4]))
				off += 4 + nl + pad4(nl)
			}
		}

		vc := 1
		if mv {
			if off+4 > len(data) {
				break
			}
			vc = int(binary.LittleEndian.Uint32(data[off : off+4]))
			off += 4
		}
		if vc < 0 || vc > 4096 {
			break
		}

		var value []byte
		ok := true
		for v := 0; v < vc; v++ {
			l := fs
			if fs < 0 {
				if off+4 > len(data) {
					ok = false
					break
				}
				l = int(binary.LittleEndian.Uint32(data[off : off+4]))
				off += 4
			}
			if l < 0 || off+l > len(data) {
				ok = false
				break
			}
			value = append(value, data[off:off+l]...)
			off += l + pad4(l)
		}
		if !ok {
			break
		}
		props = append(props, Property{Type: bt, ID: pid, Data: value})
	}
	return props
}

// Find returns the first property with the given id, or nil.
func Find(props []Property, id int) *Property {
	for i := range props {
		if props[i].ID == id {
			return &props[i]
		}
	}
	return nil
}

// FindString returns the cleaned string value of the first property with
// the given id, or "" when absent.
func FindString(props []Property, id int) string {
	if p := Find(props, id); p != nil {
		return CleanString(p.Data)
	}
	return ""
}

// CleanString renders raw property bytes as text, stripping NUL bytes and
// surrounding whitespace. For TypeUnicode values this flattens the UTF-16
// bytes, which is good enough for the ASCII-dominated names and tags these
// properties hold.
func CleanString(data []byte) string {
	return strings.TrimSpace(strings.ReplaceAll(string(data), "\x00", ""))
}

// fixedSize returns the byte size of a fixed-width property type, or -1
// for variable-length types that carry an explicit length prefix.
func fixedSize(pt int) int {
	switch pt {
	case TypeShort, TypeBoolean:
		return 4
	case TypeLong, TypeFloat, TypeError:
		return 4
	case TypeCurrency, TypeAppTime, TypeDouble, TypeInt64, TypeSystime:
		return 8
	case TypeCLSID:
		return 16
	case TypeString8, TypeUnicode, TypeObject, TypeBinary:
		return -1
	default:
		return 4
	}
}

// pad4 returns the padding needed to align n to a 4-byte boundary.
func pad4(n int) int {
	return (4 - n%4) % 4
}
