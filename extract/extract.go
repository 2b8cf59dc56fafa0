// Package extract turns decoded TNEF attachments into uniquely named
// output files, ready to be written to disk or served.
package extract

import (
	"fmt"
	"strings"

	"github.com/newpavlov/tnef"
)

// File is one output file produced from an attachment.
type File struct {
	Name string
	Data []byte
}

// FromAttachments maps attachments to output files. Names prefer the
// transport filename over the short title, are sanitized for safe use as
// path elements, and collisions get numeric suffixes in stream order.
func FromAttachments(atts []tnef.Attachment) []File {
	files := make([]File, 0, len(atts))
	used := make(map[string]bool, len(atts))
	for _, att := range atts {
		name := uniqueName(SanitizeFilename(att.Filename()), used)
		files = append(files, File{Name: name, Data: att.Data})
	}
	return files
}

// uniqueName returns name unchanged when unused, otherwise appends a
// numeric suffix before the extension ("a.txt" becomes "a_1.txt").
func uniqueName(name string, used map[string]bool) string {
	if !used[name] {
		used[name] = true
		return name
	}
	stem, ext := name, ""
	if i := strings.LastIndex(name, "."); i > 0 {
		stem, ext = name[:i], name[i:]
	}
	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s_%d%s", stem, n, ext)
		if !used[candidate] {
			used[candidate] = true
			return candidate
		}
	}
}

// SanitizeFilename makes an attachment name safe to use as a single path
// element: path separators and shell-hostile punctuation become underscores,
// control characters are dropped, and an empty result falls back to a
// placeholder.
func SanitizeFilename(name string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return -1 // drop control characters
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, name)
	if sanitized == "" {
		return "unnamed"
	}
	return sanitized
}
