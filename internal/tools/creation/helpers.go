package creation

import (
	"strings"

	"github.com/google/uuid"
	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/geometry"
	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
)

// newObjectID generates a unique element ID with a readable prefix, e.g.
// "textbox_3fa8b2c1". The Slides API requires IDs of 5-50 characters.
func newObjectID(prefix string) string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "_" + hex[:8]
}

// predefinedLayouts are the layout names accepted by createSlide.
var predefinedLayouts = map[string]bool{
	"BLANK":                 true,
	"TITLE":                 true,
	"TITLE_AND_BODY":        true,
	"TITLE_AND_TWO_COLUMNS": true,
	"TITLE_ONLY":            true,
	"SECTION_HEADER":        true,
	"ONE_COLUMN_TEXT":       true,
	"MAIN_POINT":            true,
	"BIG_NUMBER":            true,
	"CAPTION_ONLY":          true,
}

// resolveLayoutID looks up a presentation-specific layout whose name matches
// the requested predefined layout. Theme layouts carry placeholder styling
// that the bare predefined reference does not, so a match is preferred.
// Empty string means no match; fall back to the predefined reference.
func resolveLayoutID(pres *slidespb.Presentation, layout string) string {
	for _, l := range pres.Layouts {
		if l.LayoutProperties == nil {
			continue
		}
		if strings.ToUpper(l.LayoutProperties.Name) == layout {
			return l.ObjectId
		}
	}
	return ""
}

// elementProperties builds the page placement for a new element from
// inch-denominated position and size.
func elementProperties(slideID string, xInches, yInches, widthInches, heightInches float64) *slidespb.PageElementProperties {
	return elementPropertiesEMU(slideID,
		units.InchesToEMU(xInches), units.InchesToEMU(yInches),
		units.InchesToEMU(widthInches), units.InchesToEMU(heightInches))
}

func elementPropertiesEMU(slideID string, x, y, w, h int64) *slidespb.PageElementProperties {
	return &slidespb.PageElementProperties{
		PageObjectId: slideID,
		Size:         geometry.BuildSize(w, h),
		Transform: &slidespb.AffineTransform{
			ScaleX:     1,
			ScaleY:     1,
			ShearX:     0,
			ShearY:     0,
			TranslateX: float64(x),
			TranslateY: float64(y),
			Unit:       "EMU",
		},
	}
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
