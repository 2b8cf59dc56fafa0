package extract

import (
	"testing"

	"github.com/newpavlov/tnef"
)

func TestFromAttachments(t *testing.T) {
	atts := []tnef.Attachment{
		{Title: "short~1.txt", TransportFilename: "long name.txt", Data: []byte("1")},
		{Title: "title-only.txt", Data: []byte("2")},
		{Data: []byte("3")},
	}

	files := FromAttachments(atts)
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	// The transport filename wins over the title; a nameless attachment
	// falls back to a placeholder.
	wantNames := []string{"long name.txt", "title-only.txt", "unnamed"}
	for i, f := range files {
		if f.Name != wantNames[i] {
			t.Errorf("files[%d].Name = %q, want %q", i, f.Name, wantNames[i])
		}
	}
	if string(files[0].Data) != "1" {
		t.Errorf("files[0].Data = %q", files[0].Data)
	}
}

func TestFromAttachmentsCollisions(t *testing.T) {
	atts := []tnef.Attachment{
		{Title: "a.txt"},
		{Title: "a.txt"},
		{Title: "a.txt"},
		{Title: "data"},
		{Title: "data"},
	}

	files := FromAttachments(atts)
	wantNames := []string{"a.txt", "a_1.txt", "a_2.txt", "data", "data_1"}
	for i, f := range files {
		if f.Name != wantNames[i] {
			t.Errorf("files[%d].Name = %q, want %q", i, f.Name, wantNames[i])
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"normal.txt", "normal.txt"},
		{"path/to/file.txt", "path_to_file.txt"},
		{"..\\..\\evil.exe", ".._.._evil.exe"},
		{"a:b*c?d", "a_b_c_d"},
		{"quote\"name<x>.txt", "quote_name_x_.txt"},
		{"line\r\nbreak.txt", "linebreak.txt"},
		{"", "unnamed"},
		{"\x01\x02", "unnamed"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
