package content

import (
	"fmt"
	"strings"

	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/color"
)

// normalizeText flattens a placeholder value into the text to insert.
// Lists are joined with newlines (bullet-style BODY content).
func normalizeText(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprint(v)
	}
}

// textReplacementRequests builds the delete-then-insert pair that replaces an
// element's entire text. The two requests must stay adjacent and in this
// order within the batch.
func textReplacementRequests(objectID, newText string) []*slidespb.Request {
	return []*slidespb.Request{
		{
			DeleteText: &slidespb.DeleteTextRequest{
				ObjectId:  objectID,
				TextRange: &slidespb.Range{Type: "ALL"},
			},
		},
		{
			InsertText: &slidespb.InsertTextRequest{
				ObjectId:       objectID,
				Text:           newText,
				InsertionIndex: 0,
			},
		},
	}
}

// styleSpec carries the explicitly-supplied style properties. Nil means the
// caller did not mention the field, which is different from setting a zero
// value: only mentioned fields enter the request's field mask.
type styleSpec struct {
	FontSizePt *int64
	Bold       *bool
	Italic     *bool
	FontFamily *string
	Color      *string
	Alignment  *string
}

// styleRequest builds an updateTextStyle request whose field mask names
// exactly the supplied properties. Returns nil when no text-style property
// was supplied (alignment alone is a paragraph property).
func styleRequest(objectID string, spec styleSpec) (*slidespb.Request, error) {
	style := &slidespb.TextStyle{}
	var fields []string

	if spec.FontSizePt != nil {
		style.FontSize = &slidespb.Dimension{Magnitude: float64(*spec.FontSizePt), Unit: "PT"}
		fields = append(fields, "fontSize")
	}
	if spec.Bold != nil {
		style.Bold = *spec.Bold
		if !*spec.Bold {
			style.ForceSendFields = append(style.ForceSendFields, "Bold")
		}
		fields = append(fields, "bold")
	}
	if spec.Italic != nil {
		style.Italic = *spec.Italic
		if !*spec.Italic {
			style.ForceSendFields = append(style.ForceSendFields, "Italic")
		}
		fields = append(fields, "italic")
	}
	if spec.FontFamily != nil {
		style.FontFamily = *spec.FontFamily
		fields = append(fields, "fontFamily")
	}
	if spec.Color != nil {
		rgb, err := color.HexToRGB(*spec.Color)
		if err != nil {
			return nil, err
		}
		style.ForegroundColor = &slidespb.OptionalColor{
			OpaqueColor: &slidespb.OpaqueColor{RgbColor: rgb},
		}
		fields = append(fields, "foregroundColor")
	}

	if len(fields) == 0 {
		return nil, nil
	}

	return &slidespb.Request{
		UpdateTextStyle: &slidespb.UpdateTextStyleRequest{
			ObjectId:  objectID,
			Style:     style,
			Fields:    strings.Join(fields, ","),
			TextRange: &slidespb.Range{Type: "ALL"},
		},
	}, nil
}

// paragraphStyleRequest builds an updateParagraphStyle request for alignment,
// or nil when alignment was not supplied.
func paragraphStyleRequest(objectID string, alignment *string) *slidespb.Request {
	if alignment == nil {
		return nil
	}
	return &slidespb.Request{
		UpdateParagraphStyle: &slidespb.UpdateParagraphStyleRequest{
			ObjectId:  objectID,
			Style:     &slidespb.ParagraphStyle{Alignment: *alignment},
			Fields:    "alignment",
			TextRange: &slidespb.Range{Type: "ALL"},
		},
	}
}
