package templates

import (
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
)

const (
	mimeSlides = "application/vnd.google-apps.presentation"
	mimePptx   = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	mimePDF    = "application/pdf"
)

const searchFields = "nextPageToken, files(id, name, mimeType, createdTime, modifiedTime, owners)"

// PresentationSummary is the wire-friendly view of a found presentation.
type PresentationSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mime_type"`
	CreatedTime  string `json:"created_time,omitempty"`
	ModifiedTime string `json:"modified_time,omitempty"`
	Owner        string `json:"owner,omitempty"`
	URL          string `json:"url"`
}

func fileToPresentationSummary(f *drive.File) PresentationSummary {
	s := PresentationSummary{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		CreatedTime:  f.CreatedTime,
		ModifiedTime: f.ModifiedTime,
		URL:          presentationURL(f.Id),
	}
	if len(f.Owners) > 0 {
		s.Owner = f.Owners[0].EmailAddress
	}
	return s
}

func presentationURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/presentation/d/%s", id)
}

// escapeQueryTerm escapes single quotes so user-supplied text cannot break
// out of a quoted Drive query clause.
func escapeQueryTerm(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// buildSearchQuery assembles a Drive query for presentation files. Clauses
// are ANDed; the MIME filter is ORed inside parentheses so name and folder
// constraints apply to both formats.
func buildSearchQuery(name, folderID string, includePptx bool) string {
	var clauses []string

	if name != "" {
		clauses = append(clauses, fmt.Sprintf("name contains '%s'", escapeQueryTerm(name)))
	}

	mimes := []string{fmt.Sprintf("mimeType = '%s'", mimeSlides)}
	if includePptx {
		mimes = append(mimes, fmt.Sprintf("mimeType = '%s'", mimePptx))
	}
	if len(mimes) == 1 {
		clauses = append(clauses, mimes[0])
	} else {
		clauses = append(clauses, "("+strings.Join(mimes, " or ")+")")
	}

	if folderID != "" {
		clauses = append(clauses, fmt.Sprintf("'%s' in parents", folderID))
	}
	clauses = append(clauses, "trashed = false")

	return strings.Join(clauses, " and ")
}

// clampPageSize bounds a requested page size to the Drive API's 1-100 range.
// Zero means unspecified and gets the default of 10.
func clampPageSize(n int64) int64 {
	switch {
	case n <= 0:
		return 10
	case n > 100:
		return 100
	default:
		return n
	}
}

// exportMimeFor maps a user-facing export format to the Drive export MIME
// type. Empty string means the format is unsupported.
func exportMimeFor(format string) string {
	switch strings.ToLower(format) {
	case "", "pdf":
		return mimePDF
	case "pptx":
		return mimePptx
	default:
		return ""
	}
}
