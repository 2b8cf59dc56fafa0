// Package tnef decodes Microsoft TNEF (Transport Neutral Encapsulation
// Format) streams, commonly found as winmail.dat email attachments.
//
// A TNEF stream is a flat sequence of tagged, length-prefixed, checksummed
// records called attributes: message-level attributes first, attachment
// attributes after. Reader walks the records one at a time, validating the
// preamble and every checksum along the way; ReadAttachments folds the
// attachment-level records into complete Attachment values.
//
// Message-level attribute payloads are handed back as raw bytes under their
// typed identifier. The property streams among them (attMsgProps,
// attAttachment) can be decoded with the mapi package.
//
// Decoding is strict: the first malformed record aborts the operation.
// Every error this package returns matches one of the Err sentinel values
// via errors.Is.
package tnef

import "encoding/binary"

// Signature is the TNEF magic number, stored little-endian in the first
// four bytes of every stream.
const Signature = 0x223E9F78

// IsTNEF reports whether data begins with the TNEF signature. It is a
// cheap sniff for format detection; NewReader performs full validation.
func IsTNEF(data []byte) bool {
	return len(data) >= 4 && binary.LittleEndian.Uint32(data[0:4]) == Signature
}
