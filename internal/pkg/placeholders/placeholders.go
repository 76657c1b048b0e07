// Package placeholders locates layout placeholder shapes (TITLE, SUBTITLE,
// BODY, ...) on a slide and extracts their current text.
package placeholders

import (
	"strings"

	slidespb "google.golang.org/api/slides/v1"
)

// Element is a placeholder shape found on a slide.
type Element struct {
	ObjectID    string
	Type        string
	CurrentText string
}

// Find returns all elements on the page whose placeholder type matches
// exactly (case-sensitive). Results follow element order on the slide.
// An empty result is a normal outcome, not an error — a slide may have
// zero, one, or several placeholders of the same type.
func Find(page *slidespb.Page, placeholderType string) []Element {
	var results []Element
	if page == nil {
		return results
	}
	for _, el := range page.PageElements {
		if el.Shape == nil || el.Shape.Placeholder == nil {
			continue
		}
		if el.Shape.Placeholder.Type != placeholderType {
			continue
		}
		results = append(results, Element{
			ObjectID:    el.ObjectId,
			Type:        placeholderType,
			CurrentText: ShapeText(el.Shape),
		})
	}
	return results
}

// FindAll returns every placeholder element on the page regardless of type.
func FindAll(page *slidespb.Page) []Element {
	var results []Element
	if page == nil {
		return results
	}
	for _, el := range page.PageElements {
		if el.Shape == nil || el.Shape.Placeholder == nil || el.Shape.Placeholder.Type == "" {
			continue
		}
		results = append(results, Element{
			ObjectID:    el.ObjectId,
			Type:        el.Shape.Placeholder.Type,
			CurrentText: ShapeText(el.Shape),
		})
	}
	return results
}

// ShapeText concatenates a shape's text runs in document order and trims
// surrounding whitespace.
func ShapeText(shape *slidespb.Shape) string {
	if shape == nil || shape.Text == nil {
		return ""
	}
	var sb strings.Builder
	for _, te := range shape.Text.TextElements {
		if te.TextRun != nil {
			sb.WriteString(te.TextRun.Content)
		}
	}
	return strings.TrimSpace(sb.String())
}

// SlideTitle returns the text of the first TITLE placeholder on the page,
// or the empty string when the slide has no title.
func SlideTitle(page *slidespb.Page) string {
	for _, el := range Find(page, "TITLE") {
		if el.CurrentText != "" {
			return el.CurrentText
		}
	}
	return ""
}
