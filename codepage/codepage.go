// Package codepage maps Windows and OEM code page numbers, as carried by
// the TNEF attOemCodepage record, to text encodings from golang.org/x/text,
// and decodes byte spans under them.
package codepage

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Errors reported by Decode.
var (
	// ErrUnsupported is returned for a code page with no known encoding.
	ErrUnsupported = errors.New("unsupported code page")

	// ErrMalformed is returned when a byte span is not well-formed under
	// the code page's encoding.
	ErrMalformed = errors.New("malformed byte sequence")
)

// Unicode pseudo-pages, the only entries of the table with a byte-order
// mark concept.
const (
	cpUTF16LE = 1200
	cpUTF16BE = 1201
	cpUTF8    = 65001
)

// encodings is keyed by the numeric code page identifiers Windows assigns.
// The table covers the single-byte OEM and ANSI pages, the common East
// Asian multi-byte pages, and the Unicode pseudo-pages 1200/1201/65001.
var encodings = map[uint32]encoding.Encoding{
	// OEM / DOS pages.
	437: charmap.CodePage437,
	850: charmap.CodePage850,
	852: charmap.CodePage852,
	855: charmap.CodePage855,
	858: charmap.CodePage858,
	860: charmap.CodePage860,
	862: charmap.CodePage862,
	863: charmap.CodePage863,
	865: charmap.CodePage865,
	866: charmap.CodePage866,

	// Windows ANSI pages.
	874:  charmap.Windows874,
	1250: charmap.Windows1250,
	1251: charmap.Windows1251,
	1252: charmap.Windows1252,
	1253: charmap.Windows1253,
	1254: charmap.Windows1254,
	1255: charmap.Windows1255,
	1256: charmap.Windows1256,
	1257: charmap.Windows1257,
	1258: charmap.Windows1258,

	// East Asian multi-byte pages.
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	20932: japanese.EUCJP,
	51932: japanese.EUCJP,
	50220: japanese.ISO2022JP,
	50221: japanese.ISO2022JP,
	50222: japanese.ISO2022JP,
	54936: simplifiedchinese.GB18030,

	// Macintosh pages.
	10000: charmap.Macintosh,
	10007: charmap.MacintoshCyrillic,

	// KOI8 pages.
	20866: charmap.KOI8R,
	21866: charmap.KOI8U,

	// ISO 8859 pages.
	28591: charmap.ISO8859_1,
	28592: charmap.ISO8859_2,
	28593: charmap.ISO8859_3,
	28594: charmap.ISO8859_4,
	28595: charmap.ISO8859_5,
	28596: charmap.ISO8859_6,
	28597: charmap.ISO8859_7,
	28598: charmap.ISO8859_8,
	28599: charmap.ISO8859_9,
	28600: charmap.ISO8859_10,
	28603: charmap.ISO8859_13,
	28604: charmap.ISO8859_14,
	28605: charmap.ISO8859_15,
	28606: charmap.ISO8859_16,

	// Unicode pseudo-pages.
	cpUTF16LE: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	cpUTF16BE: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	cpUTF8:    unicode.UTF8,
}

// boms holds the byte-order mark each Unicode page strips on decode. Byte
// oriented pages have no BOM concept.
var boms = map[uint32][]byte{
	cpUTF16LE: {0xFF, 0xFE},
	cpUTF16BE: {0xFE, 0xFF},
	cpUTF8:    {0xEF, 0xBB, 0xBF},
}

// Lookup returns the text encoding for a numeric code page. The second
// result is false when the code page is not supported.
func Lookup(cp uint32) (encoding.Encoding, bool) {
	enc, ok := encodings[cp]
	return enc, ok
}

// Decode converts data from the given code page into a UTF-8 string. A
// leading byte-order mark matching the code page is stripped. Byte spans
// that are malformed under the encoding fail with ErrMalformed; unknown
// code pages fail with ErrUnsupported.
func Decode(cp uint32, data []byte) (string, error) {
	enc, ok := encodings[cp]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnsupported, cp)
	}
	if bom := boms[cp]; bom != nil && bytes.HasPrefix(data, bom) {
		data = data[len(bom):]
	}
	if cp == cpUTF8 {
		// No transform needed; validate exactly.
		if !utf8.Valid(data) {
			return "", ErrMalformed
		}
		return string(data), nil
	}
	s, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// x/text decoders substitute U+FFFD for undecodable input instead of
	// returning an error, so a replacement rune in the output marks the
	// span malformed.
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", ErrMalformed
	}
	return s, nil
}
