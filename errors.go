// errors.go defines the error values reported by the decoder. Every error
// is terminal for the decode call that produced it: the stream becomes
// permanently exhausted and no partial results are returned.

package tnef

import "errors"

// Preamble and encoding errors.
var (
	// ErrInvalidHeader is returned when the stream does not start with the
	// TNEF signature.
	ErrInvalidHeader = errors.New("invalid TNEF header")

	// ErrInvalidVersion is returned when the mandatory attTnefVersion
	// record is missing, malformed, or carries an unknown version.
	ErrInvalidVersion = errors.New("invalid TNEF version record")

	// ErrInvalidCodePage is returned when the mandatory attOemCodepage
	// record is malformed or its secondary code page is non-zero.
	ErrInvalidCodePage = errors.New("invalid OEM code page record")

	// ErrUnsupportedCodePage is returned when the primary code page does
	// not map to a known text encoding.
	ErrUnsupportedCodePage = errors.New("unsupported OEM code page")
)

// Stream structure errors.
var (
	// ErrInvalidAttributeLevel is returned for a level byte other than
	// lvlMessage (0x01) or lvlAttachment (0x02).
	ErrInvalidAttributeLevel = errors.New("invalid attribute level")

	// ErrUnexpectedMessageAttribute is returned when a message-level
	// attribute appears after the stream has switched to the attachment
	// section. The transition is one-way.
	ErrUnexpectedMessageAttribute = errors.New("message attribute after attachment section")

	// ErrUnknownAttribute is returned when an attribute id is not in the
	// table for the current section.
	ErrUnknownAttribute = errors.New("unknown attribute id")

	// ErrChecksumMismatch is returned when an attribute payload does not
	// sum to its trailing checksum.
	ErrChecksumMismatch = errors.New("attribute checksum mismatch")

	// ErrUnexpectedEOF is returned when the buffer ends before a declared
	// length is satisfied.
	ErrUnexpectedEOF = errors.New("unexpected end of TNEF data")
)

// Field decoding errors.
var (
	// ErrInvalidDateTime is returned for a date/time payload with a wrong
	// size or an impossible calendar value.
	ErrInvalidDateTime = errors.New("invalid date/time value")

	// ErrInvalidRendData is returned for a malformed attachment rendering
	// descriptor.
	ErrInvalidRendData = errors.New("invalid attachment rendering data")

	// ErrInvalidString is returned for a string payload without a trailing
	// NUL terminator or with bytes that are malformed under the stream's
	// code page.
	ErrInvalidString = errors.New("invalid string value")
)

// Attachment assembly errors.
var (
	// ErrAttachmentOrder is returned when an attachment group does not
	// start with attAttachRendData.
	ErrAttachmentOrder = errors.New("attachment group must start with rendering data")

	// ErrDuplicateAttribute is returned when an attachment field is set
	// twice within one group.
	ErrDuplicateAttribute = errors.New("duplicate attachment attribute")
)
