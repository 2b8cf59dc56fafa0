// attribute.go defines the attribute identifier tables and the
// section-qualified resolution of raw id codes.

package tnef

import "fmt"

// Section identifies which part of the stream an attribute belongs to.
// A stream starts in MessageSection and switches to AttachmentSection at
// the first level-2 attribute; the transition is one-way.
type Section uint8

const (
	MessageSection Section = iota + 1
	AttachmentSection
)

// String returns "message" or "attachment".
func (s Section) String() string {
	switch s {
	case MessageSection:
		return "message"
	case AttachmentSection:
		return "attachment"
	default:
		return fmt.Sprintf("section(%d)", uint8(s))
	}
}

// MessageAttrID is a message-level attribute identifier. The constant
// values are the raw 32-bit codes from the wire.
type MessageAttrID uint32

const (
	Owner                MessageAttrID = 0x00060000 // attOwner
	SentFor              MessageAttrID = 0x00060001 // attSentFor
	Delegate             MessageAttrID = 0x00060200 // attDelegate
	DateStart            MessageAttrID = 0x00030006 // attDateStart
	DateEnd              MessageAttrID = 0x00030007 // attDateEnd
	AidOwner             MessageAttrID = 0x00050008 // attAidOwner
	RequestRes           MessageAttrID = 0x00040090 // attRequestRes
	From                 MessageAttrID = 0x00008000 // attFrom
	Subject              MessageAttrID = 0x00018004 // attSubject
	DateSent             MessageAttrID = 0x00038005 // attDateSent
	DateRecd             MessageAttrID = 0x00038006 // attDateRecd
	MessageStatus        MessageAttrID = 0x00068007 // attMessageStatus
	MessageClass         MessageAttrID = 0x00078008 // attMessageClass
	MessageID            MessageAttrID = 0x00018009 // attMessageID
	ConversationID       MessageAttrID = 0x0001800B // attConversationID
	Body                 MessageAttrID = 0x00048020 // attBody
	Priority             MessageAttrID = 0x0004800D // attPriority
	DateModified         MessageAttrID = 0x00038020 // attDateModified
	MsgProps             MessageAttrID = 0x00069003 // attMsgProps
	RecipTable           MessageAttrID = 0x00069004 // attRecipTable
	OriginalMessageClass MessageAttrID = 0x00070600 // attOriginalMessageClass
)

// AttachAttrID is an attachment-level attribute identifier. The constant
// values are the raw 32-bit codes from the wire.
type AttachAttrID uint32

const (
	AttachData              AttachAttrID = 0x0006800F // attAttachData
	AttachTitle             AttachAttrID = 0x00018010 // attAttachTitle
	AttachMetaFile          AttachAttrID = 0x00068011 // attAttachMetaFile
	AttachCreateDate        AttachAttrID = 0x00038012 // attAttachCreateDate
	AttachModifyDate        AttachAttrID = 0x00038013 // attAttachModifyDate
	AttachTransportFilename AttachAttrID = 0x00069001 // attAttachTransportFilename
	AttachRendData          AttachAttrID = 0x00069002 // attAttachRendData

	// AttachProps carries the attachment's MAPI property stream
	// (attAttachment). It is the last attribute of every attachment group
	// and triggers assembly of the group.
	AttachProps AttachAttrID = 0x00069005
)

// messageAttrNames doubles as the validity table for message-level codes.
var messageAttrNames = map[MessageAttrID]string{
	Owner:                "attOwner",
	SentFor:              "attSentFor",
	Delegate:             "attDelegate",
	DateStart:            "attDateStart",
	DateEnd:              "attDateEnd",
	AidOwner:             "attAidOwner",
	RequestRes:           "attRequestRes",
	From:                 "attFrom",
	Subject:              "attSubject",
	DateSent:             "attDateSent",
	DateRecd:             "attDateRecd",
	MessageStatus:        "attMessageStatus",
	MessageClass:         "attMessageClass",
	MessageID:            "attMessageID",
	ConversationID:       "attConversationID",
	Body:                 "attBody",
	Priority:             "attPriority",
	DateModified:         "attDateModified",
	MsgProps:             "attMsgProps",
	RecipTable:           "attRecipTable",
	OriginalMessageClass: "attOriginalMessageClass",
}

// attachAttrNames doubles as the validity table for attachment-level codes.
var attachAttrNames = map[AttachAttrID]string{
	AttachData:              "attAttachData",
	AttachTitle:             "attAttachTitle",
	AttachMetaFile:          "attAttachMetaFile",
	AttachCreateDate:        "attAttachCreateDate",
	AttachModifyDate:        "attAttachModifyDate",
	AttachTransportFilename: "attAttachTransportFilename",
	AttachRendData:          "attAttachRendData",
	AttachProps:             "attAttachment",
}

// String returns the canonical att* name, or a hex form for values outside
// the table.
func (id MessageAttrID) String() string {
	if name, ok := messageAttrNames[id]; ok {
		return name
	}
	return fmt.Sprintf("MessageAttrID(0x%08X)", uint32(id))
}

// String returns the canonical att* name, or a hex form for values outside
// the table.
func (id AttachAttrID) String() string {
	if name, ok := attachAttrNames[id]; ok {
		return name
	}
	return fmt.Sprintf("AttachAttrID(0x%08X)", uint32(id))
}

// AttributeID identifies one attribute of the stream. It has two shapes:
// a message-section identifier or an attachment-section identifier. The
// shape is fixed by the section that produced the attribute; use Message
// or Attachment to recover the typed identifier.
type AttributeID struct {
	section Section
	code    uint32
}

// resolveAttributeID validates a raw code against the table for the given
// section. Codes outside the table fail with ErrUnknownAttribute.
func resolveAttributeID(section Section, code uint32) (AttributeID, error) {
	switch section {
	case MessageSection:
		if _, ok := messageAttrNames[MessageAttrID(code)]; !ok {
			return AttributeID{}, fmt.Errorf("%w: 0x%08X in message section", ErrUnknownAttribute, code)
		}
	case AttachmentSection:
		if _, ok := attachAttrNames[AttachAttrID(code)]; !ok {
			return AttributeID{}, fmt.Errorf("%w: 0x%08X in attachment section", ErrUnknownAttribute, code)
		}
	}
	return AttributeID{section: section, code: code}, nil
}

// Section reports which section the attribute came from.
func (id AttributeID) Section() Section {
	return id.section
}

// Code returns the raw 32-bit identifier code.
func (id AttributeID) Code() uint32 {
	return id.code
}

// Message returns the message-level identifier. The second result is false
// when the attribute belongs to the attachment section.
func (id AttributeID) Message() (MessageAttrID, bool) {
	if id.section != MessageSection {
		return 0, false
	}
	return MessageAttrID(id.code), true
}

// Attachment returns the attachment-level identifier. The second result is
// false when the attribute belongs to the message section.
func (id AttributeID) Attachment() (AttachAttrID, bool) {
	if id.section != AttachmentSection {
		return 0, false
	}
	return AttachAttrID(id.code), true
}

// String returns the canonical att* name of the identifier.
func (id AttributeID) String() string {
	switch id.section {
	case MessageSection:
		return MessageAttrID(id.code).String()
	case AttachmentSection:
		return AttachAttrID(id.code).String()
	default:
		return fmt.Sprintf("AttributeID(0x%08X)", id.code)
	}
}

// Attribute is one tagged record of the stream. Data is a subslice of the
// buffer given to NewReader and stays valid for as long as the caller keeps
// that buffer unmodified.
type Attribute struct {
	ID   AttributeID
	Data []byte
}
