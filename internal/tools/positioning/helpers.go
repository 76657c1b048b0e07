package positioning

import (
	"errors"
	"fmt"

	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/geometry"
)

// ErrElementNotFound reports a referenced element id absent from the
// fetched presentation.
var ErrElementNotFound = errors.New("element not found in presentation")

// placedElement pairs an element id with its current rendered bounds.
type placedElement struct {
	ID     string
	Bounds geometry.Bounds
}

// findElement locates a page element by object id across all slides.
func findElement(pres *slidespb.Presentation, elementID string) (*slidespb.PageElement, error) {
	for _, slide := range pres.Slides {
		for _, el := range slide.PageElements {
			if el.ObjectId == elementID {
				return el, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrElementNotFound, elementID)
}

// resolveElements looks up each id and extracts its bounds, preserving the
// caller-supplied id order. Layout tools operate in that order, not spatial
// order.
func resolveElements(pres *slidespb.Presentation, elementIDs []string) ([]placedElement, error) {
	resolved := make([]placedElement, 0, len(elementIDs))
	for _, id := range elementIDs {
		el, err := findElement(pres, id)
		if err != nil {
			return nil, err
		}
		bounds, err := geometry.ExtractBounds(el)
		if err != nil {
			return nil, fmt.Errorf("element %s: %w", id, err)
		}
		resolved = append(resolved, placedElement{ID: id, Bounds: bounds})
	}
	return resolved, nil
}

// alignTarget computes an element's new origin when aligned against a
// reference frame. Only the aligned axis moves; the other keeps its value.
func alignTarget(elem, ref geometry.Bounds, alignment string) (x, y int64, err error) {
	x, y = elem.X, elem.Y
	switch alignment {
	case "left":
		x = ref.X
	case "center":
		x = ref.X + ref.Width/2 - elem.Width/2
	case "right":
		x = ref.X + ref.Width - elem.Width
	case "top":
		y = ref.Y
	case "middle":
		y = ref.Y + ref.Height/2 - elem.Height/2
	case "bottom":
		y = ref.Y + ref.Height - elem.Height
	default:
		return 0, 0, fmt.Errorf("invalid alignment %q", alignment)
	}
	return x, y, nil
}

// evenGap returns the uniform gap that spreads elements across the slide
// extent with equal space before, between, and after them.
func evenGap(slideExtent, totalExtent int64, count int) int64 {
	return (slideExtent - totalExtent) / int64(count+1)
}

// layoutSequential places elements one after another along an axis, starting
// one gap from the origin and advancing by element extent plus gap. The
// cross-axis coordinate is left unchanged.
func layoutSequential(elements []placedElement, horizontal bool, gap int64) []geometry.Bounds {
	out := make([]geometry.Bounds, 0, len(elements))
	cursor := gap
	for _, elem := range elements {
		b := elem.Bounds
		if horizontal {
			b.X = cursor
			cursor += elem.Bounds.Width + gap
		} else {
			b.Y = cursor
			cursor += elem.Bounds.Height + gap
		}
		out = append(out, b)
	}
	return out
}

// transformRequest builds an ABSOLUTE updatePageElementTransform request.
func transformRequest(objectID string, transform *slidespb.AffineTransform) *slidespb.Request {
	return &slidespb.Request{
		UpdatePageElementTransform: &slidespb.UpdatePageElementTransformRequest{
			ObjectId:  objectID,
			Transform: transform,
			ApplyMode: "ABSOLUTE",
		},
	}
}
