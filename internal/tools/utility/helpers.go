package utility

import (
	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/geometry"
	"github.com/evert/google-slides-mcp-go/internal/pkg/placeholders"
	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
)

// SlideInfo is one row of a list_slides result.
type SlideInfo struct {
	SlideID      string `json:"slide_id"`
	Index        int    `json:"index"`
	Title        string `json:"title"`
	ElementCount int    `json:"element_count"`
}

func slideInfos(pres *slidespb.Presentation) []SlideInfo {
	infos := make([]SlideInfo, 0, len(pres.Slides))
	for i, slide := range pres.Slides {
		infos = append(infos, SlideInfo{
			SlideID:      slide.ObjectId,
			Index:        i,
			Title:        placeholders.SlideTitle(slide),
			ElementCount: len(slide.PageElements),
		})
	}
	return infos
}

// Position and Size report element geometry in inches.
type Position struct {
	XInches float64 `json:"x_inches"`
	YInches float64 `json:"y_inches"`
}

type Size struct {
	WidthInches  float64 `json:"width_inches"`
	HeightInches float64 `json:"height_inches"`
}

// ElementInfo is the type-discriminated detail view of a page element.
type ElementInfo struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Position Position `json:"position"`
	Size     Size     `json:"size"`

	Text            string `json:"text,omitempty"`
	ShapeType       string `json:"shape_type,omitempty"`
	PlaceholderType string `json:"placeholder_type,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
	ContentURL      string `json:"content_url,omitempty"`
	Rows            int64  `json:"rows,omitempty"`
	Columns         int64  `json:"columns,omitempty"`
	LineType        string `json:"line_type,omitempty"`
	VideoSource     string `json:"video_source,omitempty"`
	VideoURL        string `json:"video_url,omitempty"`
	SpreadsheetID   string `json:"spreadsheet_id,omitempty"`
	ChartID         int64  `json:"chart_id,omitempty"`
}

// elementInfo flattens a page element into its human-readable description.
// Geometry is best effort: an element without transform or size reports
// zeros rather than failing the whole lookup.
func elementInfo(el *slidespb.PageElement) ElementInfo {
	info := ElementInfo{ID: el.ObjectId, Type: "UNKNOWN"}

	if bounds, err := geometry.ExtractBounds(el); err == nil {
		info.Position = Position{
			XInches: units.EMUToInches(bounds.X),
			YInches: units.EMUToInches(bounds.Y),
		}
		info.Size = Size{
			WidthInches:  units.EMUToInches(bounds.Width),
			HeightInches: units.EMUToInches(bounds.Height),
		}
	}

	switch {
	case el.Shape != nil:
		info.Type = "SHAPE"
		info.ShapeType = el.Shape.ShapeType
		info.Text = placeholders.ShapeText(el.Shape)
		if el.Shape.Placeholder != nil {
			info.PlaceholderType = el.Shape.Placeholder.Type
		}
	case el.Image != nil:
		info.Type = "IMAGE"
		info.ImageURL = el.Image.SourceUrl
		info.ContentURL = el.Image.ContentUrl
	case el.Table != nil:
		info.Type = "TABLE"
		info.Rows = el.Table.Rows
		info.Columns = el.Table.Columns
	case el.Line != nil:
		info.Type = "LINE"
		info.LineType = el.Line.LineType
	case el.Video != nil:
		info.Type = "VIDEO"
		info.VideoSource = el.Video.Source
		info.VideoURL = el.Video.Url
	case el.SheetsChart != nil:
		info.Type = "SHEETS_CHART"
		info.SpreadsheetID = el.SheetsChart.SpreadsheetId
		info.ChartID = el.SheetsChart.ChartId
	}

	return info
}

// findElement scans every slide for the element with the given object ID.
func findElement(pres *slidespb.Presentation, elementID string) *slidespb.PageElement {
	for _, slide := range pres.Slides {
		for _, el := range slide.PageElements {
			if el.ObjectId == elementID {
				return el
			}
		}
	}
	return nil
}
