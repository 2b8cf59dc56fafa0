// attachment.go implements the assembler that folds the attachment-level
// attribute stream into complete Attachment records.

package tnef

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// Field presence bits for rawAttachment.seen.
const (
	seenData = 1 << iota
	seenTitle
	seenMeta
	seenCreateDate
	seenModifyDate
	seenTransportFilename
	seenRendData
	seenProps
)

// requiredFields are the presence bits an accumulator needs before it can
// become an Attachment.
const requiredFields = seenTitle | seenData | seenCreateDate |
	seenModifyDate | seenRendData | seenProps

// rawAttachment accumulates the fields of one attachment group while its
// attributes arrive. The seen set distinguishes an absent field from a
// zero value.
type rawAttachment struct {
	seen              uint8
	data              []byte
	title             string
	meta              []byte
	createDate        time.Time
	modifyDate        time.Time
	transportFilename string
	rendData          RendData
	props             []byte
}

// empty reports whether no field has been set yet.
func (raw *rawAttachment) empty() bool {
	return raw.seen == 0
}

// mark records that the field behind bit is now set, rejecting duplicates
// within the group.
func (raw *rawAttachment) mark(bit uint8, id AttachAttrID) error {
	if raw.seen&bit != 0 {
		return fmt.Errorf("%w: %v", ErrDuplicateAttribute, id)
	}
	raw.seen |= bit
	return nil
}

// finalize converts a complete accumulator into an Attachment. ok is false
// when a required field is missing; such groups are dropped.
func (raw *rawAttachment) finalize() (Attachment, bool) {
	if raw.seen&requiredFields != requiredFields {
		return Attachment{}, false
	}
	return Attachment{
		Title:             raw.title,
		Data:              raw.data,
		CreateDate:        raw.createDate,
		ModifyDate:        raw.modifyDate,
		RendData:          raw.rendData,
		Props:             raw.props,
		Meta:              raw.meta,
		TransportFilename: raw.transportFilename,
	}, true
}

// ReadAttachments decodes every attachment of a TNEF stream in one call.
// Message-level attributes are passed over without interpretation.
//
// The first attribute of every attachment group must be attAttachRendData
// and no field may repeat within a group. An attAttachment record (the
// attachment's MAPI property stream) closes the group: if the six required
// fields (title, data, create date, modify date, rendering data,
// properties) are all present the attachment is kept, otherwise the group
// is silently dropped. A group still open when the stream ends is dropped
// the same way. Any decode failure aborts the whole call; no partial
// result is returned.
//
// The returned attachments borrow from data, so the buffer must stay
// unmodified while they are in use.
func ReadAttachments(data []byte) ([]Attachment, error) {
	r, err := NewReader(data)
	if err != nil {
		return nil, err
	}
	cp := r.CodePage()

	var out []Attachment
	var raw rawAttachment
	for {
		attr, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		id, ok := attr.ID.Attachment()
		if !ok {
			continue
		}
		if raw.empty() && id != AttachRendData {
			return nil, fmt.Errorf("%w: group starts with %v", ErrAttachmentOrder, id)
		}
		switch id {
		case AttachRendData:
			if err := raw.mark(seenRendData, id); err != nil {
				return nil, err
			}
			if raw.rendData, err = parseRendData(attr.Data); err != nil {
				return nil, err
			}
		case AttachData:
			if err := raw.mark(seenData, id); err != nil {
				return nil, err
			}
			raw.data = attr.Data
		case AttachTitle:
			if err := raw.mark(seenTitle, id); err != nil {
				return nil, err
			}
			if raw.title, err = parseString(attr.Data, cp); err != nil {
				return nil, err
			}
		case AttachMetaFile:
			if err := raw.mark(seenMeta, id); err != nil {
				return nil, err
			}
			raw.meta = attr.Data
		case AttachCreateDate:
			if err := raw.mark(seenCreateDate, id); err != nil {
				return nil, err
			}
			if raw.createDate, err = parseDateTime(attr.Data); err != nil {
				return nil, err
			}
		case AttachModifyDate:
			if err := raw.mark(seenModifyDate, id); err != nil {
				return nil, err
			}
			if raw.modifyDate, err = parseDateTime(attr.Data); err != nil {
				return nil, err
			}
		case AttachTransportFilename:
			if err := raw.mark(seenTransportFilename, id); err != nil {
				return nil, err
			}
			if raw.transportFilename, err = parseString(attr.Data, cp); err != nil {
				return nil, err
			}
		case AttachProps:
			if err := raw.mark(seenProps, id); err != nil {
				return nil, err
			}
			raw.props = attr.Data
			if att, ok := raw.finalize(); ok {
				out = append(out, att)
			}
			raw = rawAttachment{}
		}
	}
	return out, nil
}
