// types.go defines the decoded data structures for attachments and their
// rendering metadata.

package tnef

import "time"

// AttachType is the attachment kind from the rendering data record.
type AttachType uint16

const (
	AttachTypeFile AttachType = 0x0001
	AttachTypeOLE  AttachType = 0x0002
)

// String returns a human-readable label for the attachment kind.
func (t AttachType) String() string {
	switch t {
	case AttachTypeFile:
		return "file"
	case AttachTypeOLE:
		return "OLE object"
	default:
		return "unknown"
	}
}

// AttachDataFlags describes how the attachment data is packaged.
type AttachDataFlags uint32

const (
	FileDataDefault   AttachDataFlags = 0x00000000
	FileDataMacBinary AttachDataFlags = 0x00000001
)

// String returns a human-readable label for the data flags.
func (f AttachDataFlags) String() string {
	switch f {
	case FileDataDefault:
		return "default"
	case FileDataMacBinary:
		return "MacBinary"
	default:
		return "unknown"
	}
}

// RendData is the decoded attAttachRendData record: how the attachment is
// presented within the message.
type RendData struct {
	Type     AttachType
	Position uint32
	Width    uint16
	Height   uint16
	Flags    AttachDataFlags
}

// Attachment is one fully assembled attachment. Title, Data, CreateDate,
// ModifyDate, RendData, and Props are always present; Meta is nil and
// TransportFilename empty when the stream did not carry them.
//
// Data, Meta, and Props are subslices of the buffer the attachment was
// decoded from and stay valid for as long as the caller keeps that buffer
// unmodified.
type Attachment struct {
	Title             string
	Data              []byte
	CreateDate        time.Time
	ModifyDate        time.Time
	RendData          RendData
	Props             []byte
	Meta              []byte
	TransportFilename string
}

// Filename returns the best available name for the attachment, preferring
// the transport filename over the short title.
func (a *Attachment) Filename() string {
	if a.TransportFilename != "" {
		return a.TransportFilename
	}
	if a.Title != "" {
		return a.Title
	}
	return "unnamed"
}
