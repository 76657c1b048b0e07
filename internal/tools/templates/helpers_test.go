package templates

import (
	"strings"
	"testing"

	"google.golang.org/api/drive/v3"
)

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		folderID    string
		includePptx bool
		want        string
	}{
		{
			name:     "name only",
			fileName: "Q4 Review",
			want:     "name contains 'Q4 Review' and mimeType = 'application/vnd.google-apps.presentation' and trashed = false",
		},
		{
			name: "no name",
			want: "mimeType = 'application/vnd.google-apps.presentation' and trashed = false",
		},
		{
			name:        "pptx included",
			fileName:    "deck",
			includePptx: true,
			want: "name contains 'deck' and (mimeType = 'application/vnd.google-apps.presentation' or " +
				"mimeType = 'application/vnd.openxmlformats-officedocument.presentationml.presentation') and trashed = false",
		},
		{
			name:     "folder scoped",
			folderID: "folder123",
			want:     "mimeType = 'application/vnd.google-apps.presentation' and 'folder123' in parents and trashed = false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildSearchQuery(tt.fileName, tt.folderID, tt.includePptx)
			if got != tt.want {
				t.Errorf("query =\n  %s\nwant\n  %s", got, tt.want)
			}
		})
	}
}

func TestBuildSearchQueryEscapesQuotes(t *testing.T) {
	got := buildSearchQuery("O'Brien's deck", "", false)
	if !strings.Contains(got, `name contains 'O\'Brien\'s deck'`) {
		t.Errorf("single quotes not escaped: %s", got)
	}
}

func TestClampPageSize(t *testing.T) {
	tests := []struct {
		in   int64
		want int64
	}{
		{0, 10},
		{-5, 10},
		{1, 1},
		{50, 50},
		{100, 100},
		{500, 100},
	}
	for _, tt := range tests {
		if got := clampPageSize(tt.in); got != tt.want {
			t.Errorf("clampPageSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestExportMimeFor(t *testing.T) {
	if got := exportMimeFor(""); got != mimePDF {
		t.Errorf("default format = %s, want PDF", got)
	}
	if got := exportMimeFor("PDF"); got != mimePDF {
		t.Errorf("case-insensitive pdf = %s", got)
	}
	if got := exportMimeFor("pptx"); got != mimePptx {
		t.Errorf("pptx = %s", got)
	}
	if got := exportMimeFor("docx"); got != "" {
		t.Errorf("unsupported format should map to empty, got %s", got)
	}
}

func TestFileToPresentationSummary(t *testing.T) {
	f := &drive.File{
		Id:           "pres1",
		Name:         "Pitch Deck",
		MimeType:     mimeSlides,
		ModifiedTime: "2025-01-15T10:00:00Z",
		Owners:       []*drive.User{{EmailAddress: "owner@example.com"}},
	}

	s := fileToPresentationSummary(f)
	if s.Owner != "owner@example.com" {
		t.Errorf("owner = %s", s.Owner)
	}
	if s.URL != "https://docs.google.com/presentation/d/pres1" {
		t.Errorf("url = %s", s.URL)
	}

	s = fileToPresentationSummary(&drive.File{Id: "pres2"})
	if s.Owner != "" {
		t.Errorf("owner without owners list = %q, want empty", s.Owner)
	}
}
