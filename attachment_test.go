package tnef

import (
	"errors"
	"testing"
	"time"
)

// appendGroup appends a minimal complete attachment group: rendering data
// first, the required fields, and the closing property stream.
func appendGroup(buf []byte, title string, data []byte) []byte {
	dt := dateTimePayload(2011, 5, 12, 10, 8, 3)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachData), data)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachTitle), append([]byte(title), 0x00))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachCreateDate), dt)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachModifyDate), dt)
	return appendAttr(buf, lvlAttachment, uint32(AttachProps), []byte("p"))
}

func TestReadAttachments(t *testing.T) {
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlMessage, uint32(Subject), []byte("hello\x00"))
	buf = appendGroup(buf, "a.txt", []byte("hi"))

	atts, err := ReadAttachments(buf)
	if err != nil {
		t.Fatalf("ReadAttachments: %v", err)
	}
	if len(atts) != 1 {
		t.Fatalf("got %d attachments, want 1", len(atts))
	}
	att := atts[0]
	if att.Title != "a.txt" {
		t.Errorf("Title = %q, want %q", att.Title, "a.txt")
	}
	if string(att.Data) != "hi" {
		t.Errorf("Data = %q, want %q", att.Data, "hi")
	}
	if string(att.Props) != "p" {
		t.Errorf("Props = %q, want %q", att.Props, "p")
	}
	want := time.Date(2011, time.May, 12, 10, 8, 3, 0, time.UTC)
	if !att.CreateDate.Equal(want) {
		t.Errorf("CreateDate = %v, want %v", att.CreateDate, want)
	}
	if !att.ModifyDate.Equal(want) {
		t.Errorf("ModifyDate = %v, want %v", att.ModifyDate, want)
	}
	if att.RendData.Type != AttachTypeFile {
		t.Errorf("RendData.Type = %v, want %v", att.RendData.Type, AttachTypeFile)
	}
	if att.Meta != nil {
		t.Errorf("Meta = %v, want nil", att.Meta)
	}
	if att.TransportFilename != "" {
		t.Errorf("TransportFilename = %q, want empty", att.TransportFilename)
	}
}

func TestReadAttachmentsMultiple(t *testing.T) {
	buf := tnefPreamble(1252)
	buf = appendGroup(buf, "first.txt", []byte("1"))
	buf = appendGroup(buf, "second.txt", []byte("2"))

	atts, err := ReadAttachments(buf)
	if err != nil {
		t.Fatalf("ReadAttachments: %v", err)
	}
	if len(atts) != 2 {
		t.Fatalf("got %d attachments, want 2", len(atts))
	}
	// Stream order is preserved.
	if atts[0].Title != "first.txt" || atts[1].Title != "second.txt" {
		t.Errorf("titles = %q, %q", atts[0].Title, atts[1].Title)
	}
}

func TestReadAttachmentsOptionalFields(t *testing.T) {
	dt := dateTimePayload(2011, 5, 12, 10, 8, 3)
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachData), []byte("hi"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachTitle), []byte("short~1.txt\x00"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachMetaFile), []byte{0x01, 0x02})
	buf = appendAttr(buf, lvlAttachment, uint32(AttachCreateDate), dt)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachModifyDate), dt)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachTransportFilename), []byte("long name.txt\x00"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachProps), []byte("p"))

	atts, err := ReadAttachments(buf)
	if err != nil {
		t.Fatalf("ReadAttachments: %v", err)
	}
	if len(atts) != 1 {
		t.Fatalf("got %d attachments, want 1", len(atts))
	}
	att := atts[0]
	if string(att.Meta) != "\x01\x02" {
		t.Errorf("Meta = %v", att.Meta)
	}
	if att.TransportFilename != "long name.txt" {
		t.Errorf("TransportFilename = %q", att.TransportFilename)
	}
	if got := att.Filename(); got != "long name.txt" {
		t.Errorf("Filename() = %q, want transport filename", got)
	}
}

func TestReadAttachmentsGroupOrder(t *testing.T) {
	// A group must open with attAttachRendData.
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachData), []byte("hi"))

	atts, err := ReadAttachments(buf)
	if !errors.Is(err, ErrAttachmentOrder) {
		t.Fatalf("ReadAttachments = %v, want ErrAttachmentOrder", err)
	}
	if atts != nil {
		t.Errorf("attachments = %v, want nil", atts)
	}
}

func TestReadAttachmentsDuplicateField(t *testing.T) {
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachTitle), []byte("a\x00"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachTitle), []byte("b\x00"))

	if _, err := ReadAttachments(buf); !errors.Is(err, ErrDuplicateAttribute) {
		t.Fatalf("ReadAttachments = %v, want ErrDuplicateAttribute", err)
	}
}

func TestReadAttachmentsDuplicateRendData(t *testing.T) {
	// A second rendering record inside an open group is a duplicate, not
	// the start of a new group.
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())

	if _, err := ReadAttachments(buf); !errors.Is(err, ErrDuplicateAttribute) {
		t.Fatalf("ReadAttachments = %v, want ErrDuplicateAttribute", err)
	}
}

func TestReadAttachmentsIncompleteGroupDropped(t *testing.T) {
	dt := dateTimePayload(2011, 5, 12, 10, 8, 3)
	// No title: the props record closes the group but it never becomes an
	// attachment.
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachData), []byte("hi"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachCreateDate), dt)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachModifyDate), dt)
	buf = appendAttr(buf, lvlAttachment, uint32(AttachProps), []byte("p"))
	buf = appendGroup(buf, "kept.txt", []byte("ok"))

	atts, err := ReadAttachments(buf)
	if err != nil {
		t.Fatalf("ReadAttachments: %v", err)
	}
	if len(atts) != 1 || atts[0].Title != "kept.txt" {
		t.Fatalf("attachments = %+v, want only kept.txt", atts)
	}
}

func TestReadAttachmentsOpenGroupDropped(t *testing.T) {
	// A group still open at end of stream is dropped.
	buf := tnefPreamble(1252)
	buf = appendGroup(buf, "kept.txt", []byte("ok"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachData), []byte("hi"))

	atts, err := ReadAttachments(buf)
	if err != nil {
		t.Fatalf("ReadAttachments: %v", err)
	}
	if len(atts) != 1 || atts[0].Title != "kept.txt" {
		t.Fatalf("attachments = %+v, want only kept.txt", atts)
	}
}

func TestReadAttachmentsFieldErrorDiscardsAll(t *testing.T) {
	// A decode failure in a later group discards attachments that were
	// already assembled.
	buf := tnefPreamble(1252)
	buf = appendGroup(buf, "good.txt", []byte("ok"))
	buf = appendAttr(buf, lvlAttachment, uint32(AttachRendData), rendDataPayload())
	buf = appendAttr(buf, lvlAttachment, uint32(AttachCreateDate), dateTimePayload(2011, 13, 1, 0, 0, 0))

	atts, err := ReadAttachments(buf)
	if !errors.Is(err, ErrInvalidDateTime) {
		t.Fatalf("ReadAttachments = %v, want ErrInvalidDateTime", err)
	}
	if atts != nil {
		t.Errorf("attachments = %v, want nil", atts)
	}
}

func TestReadAttachmentsPreambleError(t *testing.T) {
	if _, err := ReadAttachments([]byte("not a tnef stream")); !errors.Is(err, ErrInvalidHeader) {
		t.Fatalf("ReadAttachments = %v, want ErrInvalidHeader", err)
	}
}

func TestReadAttachmentsNoAttachments(t *testing.T) {
	buf := tnefPreamble(1252)
	buf = appendAttr(buf, lvlMessage, uint32(Subject), []byte("hello\x00"))

	atts, err := ReadAttachments(buf)
	if err != nil {
		t.Fatalf("ReadAttachments: %v", err)
	}
	if len(atts) != 0 {
		t.Errorf("got %d attachments, want 0", len(atts))
	}
}
