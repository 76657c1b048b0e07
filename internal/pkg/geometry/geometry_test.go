package geometry

import (
	"errors"
	"testing"

	slidespb "google.golang.org/api/slides/v1"
)

func TestResolveSlideSize(t *testing.T) {
	tests := []struct {
		name     string
		pageSize *slidespb.Size
		want     SlideSize
	}{
		{"nil page size", nil, SlideSizes["16:9"]},
		{"missing width", &slidespb.Size{Height: &slidespb.Dimension{Magnitude: 5143500}}, SlideSizes["16:9"]},
		{"zero height", &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 9144000},
			Height: &slidespb.Dimension{Magnitude: 0},
		}, SlideSizes["16:9"]},
		{"declared 4:3", &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 9144000},
			Height: &slidespb.Dimension{Magnitude: 6858000},
		}, SlideSize{9144000, 6858000}},
		{"custom", &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 1000000},
			Height: &slidespb.Dimension{Magnitude: 2000000},
		}, SlideSize{1000000, 2000000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSlideSize(tt.pageSize); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAlignmentPosition(t *testing.T) {
	slide := SlideSizes["16:9"]

	tests := []struct {
		name       string
		w, h       int64
		horiz      string
		vert       string
		margin     int64
		wantX      int64
		wantY      int64
	}{
		{"no alignment", 914400, 914400, "", "", 0, 0, 0},
		{"left top", 914400, 914400, "left", "top", 0, 0, 0},
		{"left top with margin", 914400, 914400, "left", "top", 91440, 91440, 91440},
		{"center center", 914400, 914400, "center", "center", 0,
			(slide.Width - 914400) / 2, (slide.Height - 914400) / 2},
		{"zero-size element centers on midpoint", 0, 0, "center", "center", 0,
			slide.Width / 2, slide.Height / 2},
		{"right bottom", 914400, 914400, "right", "bottom", 0,
			slide.Width - 914400, slide.Height - 914400},
		{"right bottom with margin", 914400, 914400, "right", "bottom", 91440,
			slide.Width - 914400 - 91440, slide.Height - 914400 - 91440},
		{"horizontal only", 914400, 914400, "center", "", 0, (slide.Width - 914400) / 2, 0},
		{"oversized element floors toward negative", slide.Width + 1, slide.Height + 1, "center", "center", 0,
			-1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := AlignmentPosition(slide, tt.w, tt.h, tt.horiz, tt.vert, tt.margin)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAbsoluteTransform(t *testing.T) {
	tr, err := AbsoluteTransform(914400, 457200, 1, 1, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.TranslateX != 914400 || tr.TranslateY != 457200 {
		t.Errorf("translate = (%v, %v), want (914400, 457200)", tr.TranslateX, tr.TranslateY)
	}
	if tr.ShearX != 0 || tr.ShearY != 0 {
		t.Error("expected zero shear")
	}
	if tr.Unit != "EMU" {
		t.Errorf("unit = %q, want EMU", tr.Unit)
	}
}

func TestAbsoluteTransformRejectsRotation(t *testing.T) {
	_, err := AbsoluteTransform(0, 0, 1, 1, 45)
	if !errors.Is(err, ErrRotationUnsupported) {
		t.Fatalf("err = %v, want ErrRotationUnsupported", err)
	}
}

func TestExtractBounds(t *testing.T) {
	el := &slidespb.PageElement{
		Transform: &slidespb.AffineTransform{
			ScaleX:     2,
			ScaleY:     0.5,
			TranslateX: 100000,
			TranslateY: 200000,
		},
		Size: &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 914400},
			Height: &slidespb.Dimension{Magnitude: 914400},
		},
	}

	b, err := ExtractBounds(el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Bounds{X: 100000, Y: 200000, Width: 1828800, Height: 457200}
	if b != want {
		t.Errorf("got %+v, want %+v", b, want)
	}
}

func TestExtractBoundsNegativeScale(t *testing.T) {
	// Flipped elements still have a positive rendered size.
	el := &slidespb.PageElement{
		Transform: &slidespb.AffineTransform{ScaleX: -1, ScaleY: -2},
		Size: &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 100},
			Height: &slidespb.Dimension{Magnitude: 100},
		},
	}

	b, err := ExtractBounds(el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Width != 100 || b.Height != 200 {
		t.Errorf("got %dx%d, want 100x200", b.Width, b.Height)
	}
}

func TestExtractBoundsDefaults(t *testing.T) {
	// Zero scale fields mean "unset" and default to 1.
	el := &slidespb.PageElement{
		Transform: &slidespb.AffineTransform{},
		Size: &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 914400},
			Height: &slidespb.Dimension{Magnitude: 457200},
		},
	}

	b, err := ExtractBounds(el)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Width != 914400 || b.Height != 457200 {
		t.Errorf("got %dx%d, want intrinsic size unchanged", b.Width, b.Height)
	}
}

func TestExtractBoundsMissingGeometry(t *testing.T) {
	tests := []struct {
		name string
		el   *slidespb.PageElement
	}{
		{"nil element", nil},
		{"no transform", &slidespb.PageElement{Size: &slidespb.Size{}}},
		{"no size", &slidespb.PageElement{Transform: &slidespb.AffineTransform{ScaleX: 1, ScaleY: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExtractBounds(tt.el); !errors.Is(err, ErrMissingGeometry) {
				t.Errorf("err = %v, want ErrMissingGeometry", err)
			}
		})
	}
}

func TestBuildSize(t *testing.T) {
	s := BuildSize(914400, 457200)
	if s.Width.Magnitude != 914400 || s.Width.Unit != "EMU" {
		t.Errorf("width = %+v", s.Width)
	}
	if s.Height.Magnitude != 457200 || s.Height.Unit != "EMU" {
		t.Errorf("height = %+v", s.Height)
	}
}
