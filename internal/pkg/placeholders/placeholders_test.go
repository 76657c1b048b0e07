package placeholders

import (
	"testing"

	slidespb "google.golang.org/api/slides/v1"
)

func shapeWithText(placeholderType string, runs ...string) *slidespb.Shape {
	var elements []*slidespb.TextElement
	for _, r := range runs {
		elements = append(elements, &slidespb.TextElement{
			TextRun: &slidespb.TextRun{Content: r},
		})
	}
	shape := &slidespb.Shape{Text: &slidespb.TextContent{TextElements: elements}}
	if placeholderType != "" {
		shape.Placeholder = &slidespb.Placeholder{Type: placeholderType}
	}
	return shape
}

func TestFind(t *testing.T) {
	page := &slidespb.Page{
		PageElements: []*slidespb.PageElement{
			{ObjectId: "title1", Shape: shapeWithText("TITLE", "Hello ", "World\n")},
			{ObjectId: "body1", Shape: shapeWithText("BODY", "Some body")},
			{ObjectId: "title2", Shape: shapeWithText("TITLE", "Second title")},
			{ObjectId: "plain", Shape: shapeWithText("", "not a placeholder")},
			{ObjectId: "image1"},
		},
	}

	got := Find(page, "TITLE")
	if len(got) != 2 {
		t.Fatalf("found %d TITLE elements, want 2", len(got))
	}
	if got[0].ObjectID != "title1" || got[1].ObjectID != "title2" {
		t.Errorf("order = [%s, %s], want slide element order", got[0].ObjectID, got[1].ObjectID)
	}
	if got[0].CurrentText != "Hello World" {
		t.Errorf("text = %q, want runs concatenated and trimmed", got[0].CurrentText)
	}
}

func TestFindCaseSensitive(t *testing.T) {
	page := &slidespb.Page{
		PageElements: []*slidespb.PageElement{
			{ObjectId: "t", Shape: shapeWithText("TITLE", "x")},
		},
	}
	if got := Find(page, "title"); len(got) != 0 {
		t.Errorf("lowercase type matched %d elements, want 0", len(got))
	}
}

func TestFindNoMatch(t *testing.T) {
	page := &slidespb.Page{
		PageElements: []*slidespb.PageElement{
			{ObjectId: "b", Shape: shapeWithText("BODY", "x")},
		},
	}
	// Absent placeholder is a normal outcome, not an error.
	if got := Find(page, "SUBTITLE"); len(got) != 0 {
		t.Errorf("got %d elements, want 0", len(got))
	}
	if got := Find(nil, "TITLE"); len(got) != 0 {
		t.Errorf("nil page returned %d elements", len(got))
	}
}

func TestFindAll(t *testing.T) {
	page := &slidespb.Page{
		PageElements: []*slidespb.PageElement{
			{ObjectId: "t", Shape: shapeWithText("TITLE", "a")},
			{ObjectId: "s", Shape: shapeWithText("SUBTITLE", "b")},
			{ObjectId: "plain", Shape: shapeWithText("", "c")},
		},
	}

	got := FindAll(page)
	if len(got) != 2 {
		t.Fatalf("found %d placeholders, want 2", len(got))
	}
	if got[0].Type != "TITLE" || got[1].Type != "SUBTITLE" {
		t.Errorf("types = [%s, %s]", got[0].Type, got[1].Type)
	}
}

func TestShapeText(t *testing.T) {
	if got := ShapeText(nil); got != "" {
		t.Errorf("nil shape text = %q", got)
	}
	if got := ShapeText(&slidespb.Shape{}); got != "" {
		t.Errorf("shape without text = %q", got)
	}
	shape := shapeWithText("", "  line one\n", "line two  \n")
	if got := ShapeText(shape); got != "line one\nline two" {
		t.Errorf("got %q", got)
	}
}

func TestSlideTitle(t *testing.T) {
	page := &slidespb.Page{
		PageElements: []*slidespb.PageElement{
			{ObjectId: "empty", Shape: shapeWithText("TITLE")},
			{ObjectId: "t", Shape: shapeWithText("TITLE", "Real Title")},
		},
	}
	if got := SlideTitle(page); got != "Real Title" {
		t.Errorf("got %q, want first non-empty TITLE text", got)
	}
	if got := SlideTitle(&slidespb.Page{}); got != "" {
		t.Errorf("empty page title = %q", got)
	}
}
