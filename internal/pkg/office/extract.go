// Package office extracts plain text from PowerPoint (.pptx) files stored in
// Drive, so a template can be inspected without converting it to Google
// Slides first.
package office

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxFileSize is the maximum file size to attempt extraction on (50 MB).
const MaxFileSize = 50 * 1024 * 1024

var slideFileRE = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// ExtractText extracts plain text from a .pptx file, one paragraph block per
// slide, in slide order. The data must be the raw ZIP file content.
func ExtractText(data []byte, mimeType string) (string, error) {
	if !strings.Contains(mimeType, "presentationml") && !strings.HasSuffix(mimeType, ".pptx") {
		return "", fmt.Errorf("unsupported MIME type %q for text extraction", mimeType)
	}
	if len(data) > MaxFileSize {
		return "", fmt.Errorf("file too large for text extraction (%d bytes, max %d)", len(data), MaxFileSize)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening PowerPoint file as ZIP: %w", err)
	}

	// Slide entries are not guaranteed to appear in deck order within the
	// archive, and lexical order puts slide10 before slide2.
	type slideFile struct {
		num  int
		file *zip.File
	}
	var slides []slideFile
	for _, f := range reader.File {
		m := slideFileRE.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{num: num, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].num < slides[j].num })

	var parts []string
	for _, s := range slides {
		text, err := extractXMLText(s.file)
		if err != nil {
			continue
		}
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// extractXMLText reads all character data from an XML file within the ZIP.
func extractXMLText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxFileSize))
	if err != nil {
		return "", err
	}

	return xmlToText(data), nil
}

// xmlToText extracts all character data from XML, joining with spaces.
func xmlToText(data []byte) string {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	var parts []string

	for {
		tok, err := decoder.Token()
		if err != nil {
			break
		}
		if charData, ok := tok.(xml.CharData); ok {
			text := strings.TrimSpace(string(charData))
			if text != "" {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, " ")
}
