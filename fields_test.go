package tnef

import (
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

func TestParseDateTime(t *testing.T) {
	got, err := parseDateTime(dateTimePayload(2011, 5, 12, 10, 8, 3))
	if err != nil {
		t.Fatalf("parseDateTime: %v", err)
	}
	want := time.Date(2011, time.May, 12, 10, 8, 3, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDateTime = %v, want %v", got, want)
	}

	// The day-of-week field is never validated against the date.
	payload := dateTimePayload(2011, 5, 12, 10, 8, 3)
	binary.LittleEndian.PutUint16(payload[12:], 6)
	if _, err := parseDateTime(payload); err != nil {
		t.Errorf("parseDateTime with stale day-of-week: %v", err)
	}

	if _, err := parseDateTime(dateTimePayload(2012, 2, 29, 0, 0, 0)); err != nil {
		t.Errorf("parseDateTime on leap day: %v", err)
	}
}

func TestParseDateTimeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", dateTimePayload(2011, 5, 12, 10, 8, 3)[:13]},
		{"long", append(dateTimePayload(2011, 5, 12, 10, 8, 3), 0)},
		{"month 13", dateTimePayload(2011, 13, 1, 0, 0, 0)},
		{"month 0", dateTimePayload(2011, 0, 1, 0, 0, 0)},
		{"day 32", dateTimePayload(2011, 1, 32, 0, 0, 0)},
		{"day 0", dateTimePayload(2011, 1, 0, 0, 0, 0)},
		{"hour 25", dateTimePayload(2011, 1, 1, 25, 0, 0)},
		{"minute 61", dateTimePayload(2011, 1, 1, 0, 61, 0)},
		{"second 61", dateTimePayload(2011, 1, 1, 0, 0, 61)},
		{"feb 29 off leap year", dateTimePayload(2011, 2, 29, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseDateTime(tt.data); !errors.Is(err, ErrInvalidDateTime) {
				t.Errorf("parseDateTime = %v, want ErrInvalidDateTime", err)
			}
		})
	}
}

func TestParseRendData(t *testing.T) {
	buf := binary.LittleEndian.AppendUint16(nil, uint16(AttachTypeOLE))
	buf = binary.LittleEndian.AppendUint32(buf, 7)
	buf = binary.LittleEndian.AppendUint16(buf, 13)
	buf = binary.LittleEndian.AppendUint16(buf, 21)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(FileDataMacBinary))

	got, err := parseRendData(buf)
	if err != nil {
		t.Fatalf("parseRendData: %v", err)
	}
	want := RendData{
		Type:     AttachTypeOLE,
		Position: 7,
		Width:    13,
		Height:   21,
		Flags:    FileDataMacBinary,
	}
	if got != want {
		t.Errorf("parseRendData = %+v, want %+v", got, want)
	}
}

func TestParseRendDataInvalid(t *testing.T) {
	tests := []struct {
		name  string
		kind  uint16
		flags uint32
	}{
		{"zero kind", 0x0000, 0},
		{"unknown kind", 0x0003, 0},
		{"unknown flags", 0x0001, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := binary.LittleEndian.AppendUint16(nil, tt.kind)
			buf = binary.LittleEndian.AppendUint32(buf, 0)
			buf = binary.LittleEndian.AppendUint16(buf, 0)
			buf = binary.LittleEndian.AppendUint16(buf, 0)
			buf = binary.LittleEndian.AppendUint32(buf, tt.flags)
			if _, err := parseRendData(buf); !errors.Is(err, ErrInvalidRendData) {
				t.Errorf("parseRendData = %v, want ErrInvalidRendData", err)
			}
		})
	}

	for _, n := range []int{0, 13, 15} {
		if _, err := parseRendData(make([]byte, n)); !errors.Is(err, ErrInvalidRendData) {
			t.Errorf("parseRendData(%d bytes) = %v, want ErrInvalidRendData", n, err)
		}
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name string
		cp   uint32
		data []byte
		want string
	}{
		{"windows-1252", 1252, []byte("caf\xE9\x00"), "café"},
		{"plain ascii", 1252, []byte("a.txt\x00"), "a.txt"},
		{"lone terminator", 1252, []byte{0x00}, ""},
		{"utf-8", 65001, append([]byte("héllo"), 0x00), "héllo"},
		{"utf-8 bom stripped", 65001, []byte{0xEF, 0xBB, 0xBF, 'h', 'i', 0x00}, "hi"},
		{"shift-jis", 932, []byte{0x82, 0xA0, 0x00}, "あ"},
		// The terminator is one byte even for two-byte encodings; producers
		// pad UTF-16 values that way.
		{"utf-16le", 1200, []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, 0x00}, "hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseString(tt.data, tt.cp)
			if err != nil {
				t.Fatalf("parseString: %v", err)
			}
			if got != tt.want {
				t.Errorf("parseString = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStringInvalid(t *testing.T) {
	tests := []struct {
		name string
		cp   uint32
		data []byte
	}{
		{"empty", 1252, nil},
		{"missing terminator", 1252, []byte("a.txt")},
		{"invalid utf-8", 65001, []byte{0xFF, 0x00}},
		{"lone shift-jis lead byte", 932, []byte{0x82, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseString(tt.data, tt.cp); !errors.Is(err, ErrInvalidString) {
				t.Errorf("parseString = %v, want ErrInvalidString", err)
			}
		})
	}
}
