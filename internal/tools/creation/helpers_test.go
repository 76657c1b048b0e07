package creation

import (
	"regexp"
	"testing"

	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
)

func TestNewObjectID(t *testing.T) {
	re := regexp.MustCompile(`^textbox_[0-9a-f]{8}$`)

	id := newObjectID("textbox")
	if !re.MatchString(id) {
		t.Errorf("id %q does not match expected format", id)
	}
	if newObjectID("textbox") == id {
		t.Error("consecutive IDs must differ")
	}
}

func TestResolveLayoutID(t *testing.T) {
	pres := &slidespb.Presentation{
		Layouts: []*slidespb.Page{
			{ObjectId: "layout1", LayoutProperties: &slidespb.LayoutProperties{Name: "TITLE_AND_BODY"}},
			{ObjectId: "layout2", LayoutProperties: &slidespb.LayoutProperties{Name: "blank"}},
			{ObjectId: "layout3"},
		},
	}

	if got := resolveLayoutID(pres, "TITLE_AND_BODY"); got != "layout1" {
		t.Errorf("got %q, want layout1", got)
	}
	// Matching is case-insensitive on the layout's declared name.
	if got := resolveLayoutID(pres, "BLANK"); got != "layout2" {
		t.Errorf("got %q, want layout2", got)
	}
	if got := resolveLayoutID(pres, "BIG_NUMBER"); got != "" {
		t.Errorf("got %q, want empty for no match", got)
	}
}

func TestElementProperties(t *testing.T) {
	props := elementProperties("slide1", 1, 2, 4, 3)

	if props.PageObjectId != "slide1" {
		t.Errorf("pageObjectId = %s", props.PageObjectId)
	}
	if got := int64(props.Transform.TranslateX); got != units.InchesToEMU(1) {
		t.Errorf("translateX = %d, want %d", got, units.InchesToEMU(1))
	}
	if got := int64(props.Size.Width.Magnitude); got != units.InchesToEMU(4) {
		t.Errorf("width = %d, want %d", got, units.InchesToEMU(4))
	}
	if props.Transform.ScaleX != 1 || props.Transform.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want identity", props.Transform.ScaleX, props.Transform.ScaleY)
	}
	if props.Transform.Unit != "EMU" {
		t.Errorf("unit = %s", props.Transform.Unit)
	}
}

func TestOrDefault(t *testing.T) {
	v := 2.5
	if got := orDefault(&v, 1); got != 2.5 {
		t.Errorf("got %v, want supplied value", got)
	}
	if got := orDefault(nil, 1); got != 1 {
		t.Errorf("got %v, want default", got)
	}
	zero := 0.0
	if got := orDefault(&zero, 1); got != 0 {
		t.Errorf("explicit zero = %v, must not fall back to default", got)
	}
}
