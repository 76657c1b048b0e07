// Package geometry provides slide-size resolution, alignment math, and
// affine-transform construction for positioning page elements.
//
// All coordinates are EMU. The package only ever emits axis-aligned
// transforms; rotation requires trigonometric shear values and is rejected
// rather than approximated.
package geometry

import (
	"errors"
	"fmt"
	"math"

	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
)

var (
	// ErrMissingGeometry reports a page element without the transform or
	// size needed to compute rendered bounds.
	ErrMissingGeometry = errors.New("page element missing transform or size")

	// ErrRotationUnsupported reports a rotation angle on a transform build.
	ErrRotationUnsupported = errors.New("rotation transforms are not supported")
)

// SlideSize holds slide dimensions in EMU.
type SlideSize struct {
	Width  int64
	Height int64
}

// WidthInches returns the slide width in inches.
func (s SlideSize) WidthInches() float64 { return units.EMUToInches(s.Width) }

// HeightInches returns the slide height in inches.
func (s SlideSize) HeightInches() float64 { return units.EMUToInches(s.Height) }

// Predefined slide sizes by aspect ratio.
var SlideSizes = map[string]SlideSize{
	"16:9":  {units.SlideWidthEMU, units.SlideHeight16x9EMU},
	"4:3":   {units.SlideWidthEMU, units.SlideHeight4x3EMU},
	"16:10": {units.SlideWidthEMU, units.SlideHeight16x10},
}

// ResolveSlideSize returns the presentation's declared page size, or the
// 16:9 default when the declared size is absent or has a zero dimension.
func ResolveSlideSize(pageSize *slidespb.Size) SlideSize {
	def := SlideSizes["16:9"]
	if pageSize == nil || pageSize.Width == nil || pageSize.Height == nil {
		return def
	}
	w := int64(pageSize.Width.Magnitude)
	h := int64(pageSize.Height.Magnitude)
	if w == 0 || h == 0 {
		return def
	}
	return SlideSize{Width: w, Height: h}
}

// AlignmentPosition computes an (x, y) position in EMU from alignment
// keywords. Horizontal accepts "left", "center", "right"; vertical accepts
// "top", "center", "bottom". An empty alignment yields 0 for that axis.
// Margin is the inset from the slide edge for edge alignments.
func AlignmentPosition(slide SlideSize, elementWidth, elementHeight int64, horizontal, vertical string, margin int64) (x, y int64) {
	switch horizontal {
	case "left":
		x = margin
	case "center":
		x = floorHalf(slide.Width - elementWidth)
	case "right":
		x = slide.Width - elementWidth - margin
	}

	switch vertical {
	case "top":
		y = margin
	case "center":
		y = floorHalf(slide.Height - elementHeight)
	case "bottom":
		y = slide.Height - elementHeight - margin
	}

	return x, y
}

// floorHalf halves v rounding toward negative infinity, so an element wider
// than the slide centers one EMU further left than integer truncation would.
func floorHalf(v int64) int64 {
	return int64(math.Floor(float64(v) / 2))
}

// AbsoluteTransform builds an axis-aligned transform for an
// UpdatePageElementTransform request with applyMode ABSOLUTE.
// A non-zero rotation fails with ErrRotationUnsupported.
func AbsoluteTransform(translateX, translateY int64, scaleX, scaleY, rotationDegrees float64) (*slidespb.AffineTransform, error) {
	if rotationDegrees != 0 {
		return nil, fmt.Errorf("%w: rotation %v requested", ErrRotationUnsupported, rotationDegrees)
	}

	return &slidespb.AffineTransform{
		ScaleX:     scaleX,
		ScaleY:     scaleY,
		ShearX:     0,
		ShearY:     0,
		TranslateX: float64(translateX),
		TranslateY: float64(translateY),
		Unit:       "EMU",
	}, nil
}

// BuildSize builds a Slides API size object from EMU dimensions.
func BuildSize(widthEMU, heightEMU int64) *slidespb.Size {
	return &slidespb.Size{
		Width:  &slidespb.Dimension{Magnitude: float64(widthEMU), Unit: "EMU"},
		Height: &slidespb.Dimension{Magnitude: float64(heightEMU), Unit: "EMU"},
	}
}

// Bounds holds a page element's rendered position and size in EMU.
// Width and height are the intrinsic size scaled by the element's transform.
type Bounds struct {
	X      int64
	Y      int64
	Width  int64
	Height int64
}

// ExtractBounds computes an element's rendered bounds from its transform and
// intrinsic size. Both the transform and the size object must be present;
// fields within them default to scale 1 and translate 0 when unset.
func ExtractBounds(el *slidespb.PageElement) (Bounds, error) {
	if el == nil || el.Transform == nil || el.Size == nil {
		return Bounds{}, ErrMissingGeometry
	}

	scaleX := el.Transform.ScaleX
	if scaleX == 0 {
		scaleX = 1
	}
	scaleY := el.Transform.ScaleY
	if scaleY == 0 {
		scaleY = 1
	}

	var w, h float64
	if el.Size.Width != nil {
		w = el.Size.Width.Magnitude
	}
	if el.Size.Height != nil {
		h = el.Size.Height.Magnitude
	}

	return Bounds{
		X:      int64(el.Transform.TranslateX),
		Y:      int64(el.Transform.TranslateY),
		Width:  int64(math.Floor(w * math.Abs(scaleX))),
		Height: int64(math.Floor(h * math.Abs(scaleY))),
	}, nil
}
