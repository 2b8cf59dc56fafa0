// Package winmail locates TNEF payloads inside RFC 5322 mail messages and
// mbox archives. A MIME part qualifies by content type, by the well-known
// winmail.dat filename, or by the TNEF signature in its body.
package winmail

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	mboxlib "github.com/emersion/go-mbox"
	_ "github.com/emersion/go-message/charset" // register extended header charsets
	"github.com/emersion/go-message/mail"

	"github.com/newpavlov/tnef"
)

// Part is one TNEF payload found in a mail source.
type Part struct {
	// Filename is the attachment filename from the MIME headers, or ""
	// when the part carried none.
	Filename string

	// Message is the index of the containing message within an mbox
	// archive; 0 for a single message.
	Message int

	// Data is the raw TNEF payload, already transfer-decoded.
	Data []byte
}

// FromMessage scans a single RFC 5322 message for TNEF parts. It returns
// an empty slice when the message has none.
func FromMessage(r io.Reader) ([]Part, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	defer mr.Close()

	var parts []Part
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return parts, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read message part: %w", err)
		}

		var filename, ctype string
		switch h := p.Header.(type) {
		case *mail.AttachmentHeader:
			filename, _ = h.Filename()
			ctype, _, _ = h.ContentType()
		case *mail.InlineHeader:
			ctype, _, _ = h.ContentType()
		}

		data, err := io.ReadAll(p.Body)
		if err != nil {
			return nil, fmt.Errorf("read message part: %w", err)
		}
		if isTNEFPart(ctype, filename, data) {
			parts = append(parts, Part{Filename: filename, Data: data})
		}
	}
}

// FromMbox scans every message of an mbox archive for TNEF parts. Each
// Part records the index of its message. Messages that cannot be parsed
// are logged and skipped so one broken message does not hide the rest of
// the archive; a nil logger falls back to slog.Default.
func FromMbox(r io.Reader, logger *slog.Logger) ([]Part, error) {
	if logger == nil {
		logger = slog.Default()
	}
	mr := mboxlib.NewReader(r)

	var parts []Part
	for idx := 0; ; idx++ {
		msg, err := mr.NextMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return parts, nil
			}
			return nil, fmt.Errorf("mbox message %d: %w", idx, err)
		}

		found, err := FromMessage(msg)
		if err != nil {
			logger.Warn("skipping unparseable mbox message", "index", idx, "err", err)
			continue
		}
		for _, p := range found {
			p.Message = idx
			parts = append(parts, p)
		}
	}
}

// isTNEFPart reports whether a MIME part looks like a TNEF payload.
func isTNEFPart(contentType, filename string, data []byte) bool {
	switch strings.ToLower(contentType) {
	case "application/ms-tnef", "application/vnd.ms-tnef", "application/x-tnef":
		return true
	}
	if strings.EqualFold(filename, "winmail.dat") || strings.EqualFold(filename, "win.dat") {
		return true
	}
	return tnef.IsTNEF(data)
}
