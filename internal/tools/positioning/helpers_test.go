package positioning

import (
	"errors"
	"testing"

	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/geometry"
)

func elementAt(id string, x, y, w, h int64) *slidespb.PageElement {
	return &slidespb.PageElement{
		ObjectId: id,
		Transform: &slidespb.AffineTransform{
			ScaleX: 1, ScaleY: 1,
			TranslateX: float64(x), TranslateY: float64(y),
		},
		Size: &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: float64(w)},
			Height: &slidespb.Dimension{Magnitude: float64(h)},
		},
	}
}

func testPresentation(elements ...*slidespb.PageElement) *slidespb.Presentation {
	return &slidespb.Presentation{
		Slides: []*slidespb.Page{{ObjectId: "slide1", PageElements: elements}},
	}
}

func TestFindElement(t *testing.T) {
	pres := testPresentation(
		elementAt("a", 0, 0, 100, 100),
		elementAt("b", 200, 0, 100, 100),
	)

	el, err := findElement(pres, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if el.ObjectId != "b" {
		t.Errorf("got %s, want b", el.ObjectId)
	}

	if _, err := findElement(pres, "missing"); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("err = %v, want ErrElementNotFound", err)
	}
}

func TestResolveElementsPreservesCallerOrder(t *testing.T) {
	pres := testPresentation(
		elementAt("a", 0, 0, 100, 100),
		elementAt("b", 200, 0, 100, 100),
	)

	resolved, err := resolveElements(pres, []string{"b", "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved[0].ID != "b" || resolved[1].ID != "a" {
		t.Errorf("order = [%s, %s], want caller-supplied order", resolved[0].ID, resolved[1].ID)
	}
}

func TestResolveElementsMissingID(t *testing.T) {
	pres := testPresentation(elementAt("a", 0, 0, 100, 100))

	if _, err := resolveElements(pres, []string{"a", "missing"}); !errors.Is(err, ErrElementNotFound) {
		t.Errorf("err = %v, want ErrElementNotFound", err)
	}
}

func TestAlignTarget(t *testing.T) {
	ref := geometry.Bounds{X: 1000, Y: 2000, Width: 600, Height: 400}
	elem := geometry.Bounds{X: 0, Y: 0, Width: 200, Height: 100}

	tests := []struct {
		alignment string
		wantX     int64
		wantY     int64
	}{
		{"left", 1000, 0},
		{"center", 1000 + 300 - 100, 0},
		{"right", 1000 + 600 - 200, 0},
		{"top", 0, 2000},
		{"middle", 0, 2000 + 200 - 50},
		{"bottom", 0, 2000 + 400 - 100},
	}

	for _, tt := range tests {
		t.Run(tt.alignment, func(t *testing.T) {
			x, y, err := alignTarget(elem, ref, tt.alignment)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}

	if _, _, err := alignTarget(elem, ref, "diagonal"); err == nil {
		t.Error("expected error for invalid alignment")
	}
}

func TestEvenDistribution(t *testing.T) {
	// Two equal-width elements on a slide: gap = (W - 2w)/3, first at gap,
	// second at gap + w + gap.
	const w = 914400
	slideWidth := int64(9144000)
	elements := []placedElement{
		{ID: "a", Bounds: geometry.Bounds{X: 5000, Y: 100, Width: w, Height: 100}},
		{ID: "b", Bounds: geometry.Bounds{X: 0, Y: 200, Width: w, Height: 100}},
	}

	gap := evenGap(slideWidth, 2*w, len(elements))
	wantGap := (slideWidth - 2*w) / 3
	if gap != wantGap {
		t.Fatalf("gap = %d, want %d", gap, wantGap)
	}

	placed := layoutSequential(elements, true, gap)
	if placed[0].X != gap {
		t.Errorf("first element x = %d, want %d", placed[0].X, gap)
	}
	if placed[1].X != gap+w+gap {
		t.Errorf("second element x = %d, want %d", placed[1].X, gap+w+gap)
	}
	// Cross axis untouched.
	if placed[0].Y != 100 || placed[1].Y != 200 {
		t.Errorf("y values changed: %d, %d", placed[0].Y, placed[1].Y)
	}
}

func TestLayoutSequentialVertical(t *testing.T) {
	elements := []placedElement{
		{ID: "a", Bounds: geometry.Bounds{X: 11, Y: 0, Width: 50, Height: 300}},
		{ID: "b", Bounds: geometry.Bounds{X: 22, Y: 0, Width: 50, Height: 500}},
	}

	placed := layoutSequential(elements, false, 100)
	if placed[0].Y != 100 {
		t.Errorf("first y = %d, want 100", placed[0].Y)
	}
	if placed[1].Y != 100+300+100 {
		t.Errorf("second y = %d, want 500", placed[1].Y)
	}
	if placed[0].X != 11 || placed[1].X != 22 {
		t.Errorf("x values changed: %d, %d", placed[0].X, placed[1].X)
	}
}

func TestTransformRequest(t *testing.T) {
	tr := &slidespb.AffineTransform{ScaleX: 1, ScaleY: 1, Unit: "EMU"}
	req := transformRequest("obj1", tr)
	if req.UpdatePageElementTransform == nil {
		t.Fatal("expected updatePageElementTransform request")
	}
	if req.UpdatePageElementTransform.ObjectId != "obj1" {
		t.Errorf("objectId = %s", req.UpdatePageElementTransform.ObjectId)
	}
	if req.UpdatePageElementTransform.ApplyMode != "ABSOLUTE" {
		t.Errorf("applyMode = %s, want ABSOLUTE", req.UpdatePageElementTransform.ApplyMode)
	}
}
