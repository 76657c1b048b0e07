package office

import (
	"archive/zip"
	"bytes"
	"testing"
)

const pptxMime = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

func slideXML(content string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<p:sld xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"
       xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <p:cSld><p:spTree><p:sp><p:txBody><a:p><a:r><a:t>` + content + `</a:t></a:r></a:p></p:txBody></p:sp></p:spTree></p:cSld>
</p:sld>`)
}

// createTestPptx creates a minimal .pptx file in memory with one slide XML
// entry per name/content pair, written in the given order.
func createTestPptx(entries map[string]string, order []string) []byte {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	for _, name := range order {
		f, _ := w.Create(name)
		_, _ = f.Write(slideXML(entries[name]))
	}

	_ = w.Close()
	return buf.Bytes()
}

func TestExtractPptx(t *testing.T) {
	data := createTestPptx(map[string]string{
		"ppt/slides/slide1.xml": "Slide Title",
	}, []string{"ppt/slides/slide1.xml"})

	text, err := ExtractText(data, pptxMime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Slide Title" {
		t.Errorf("got %q, want %q", text, "Slide Title")
	}
}

func TestExtractPptxSlideOrder(t *testing.T) {
	// slide10 sorts before slide2 lexically and the archive stores slides
	// out of order on top of that; output must follow deck order.
	entries := map[string]string{
		"ppt/slides/slide1.xml":  "first",
		"ppt/slides/slide2.xml":  "second",
		"ppt/slides/slide10.xml": "tenth",
	}
	data := createTestPptx(entries, []string{
		"ppt/slides/slide10.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
	})

	text, err := ExtractText(data, pptxMime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "first\n\nsecond\n\ntenth" {
		t.Errorf("got %q, want slides in deck order", text)
	}
}

func TestExtractPptxIgnoresNonSlideEntries(t *testing.T) {
	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)
	f, _ := w.Create("ppt/slides/slide1.xml")
	_, _ = f.Write(slideXML("keep"))
	f, _ = w.Create("ppt/notesSlides/notesSlide1.xml")
	_, _ = f.Write(slideXML("drop"))
	_ = w.Close()

	text, err := ExtractText(buf.Bytes(), pptxMime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "keep" {
		t.Errorf("got %q, want notes excluded", text)
	}
}

func TestExtractTextUnsupportedMime(t *testing.T) {
	data := createTestPptx(map[string]string{
		"ppt/slides/slide1.xml": "x",
	}, []string{"ppt/slides/slide1.xml"})

	if _, err := ExtractText(data, "application/pdf"); err == nil {
		t.Error("expected error for non-pptx MIME type")
	}
}

func TestExtractTextInvalidZip(t *testing.T) {
	if _, err := ExtractText([]byte("not a zip file"), pptxMime); err == nil {
		t.Error("expected error for invalid ZIP data")
	}
}

func TestExtractTextTooLarge(t *testing.T) {
	data := make([]byte, MaxFileSize+1)
	if _, err := ExtractText(data, pptxMime); err == nil {
		t.Error("expected error for oversized file")
	}
}
