package analysis

import (
	"fmt"
	"strings"
	"testing"

	slidespb "google.golang.org/api/slides/v1"
)

func TestColorKey(t *testing.T) {
	tests := []struct {
		name  string
		color *slidespb.OpaqueColor
		want  string
	}{
		{"nil", nil, ""},
		{"empty", &slidespb.OpaqueColor{}, ""},
		{"theme", &slidespb.OpaqueColor{ThemeColor: "ACCENT1"}, "theme:ACCENT1"},
		{"rgb red", &slidespb.OpaqueColor{RgbColor: &slidespb.RgbColor{Red: 1}}, "#ff0000"},
		{"rgb mixed", &slidespb.OpaqueColor{RgbColor: &slidespb.RgbColor{Red: 0.5, Green: 0.25, Blue: 1}}, "#7f3fff"},
		// Theme reference wins over a concrete fallback value.
		{"theme with rgb", &slidespb.OpaqueColor{ThemeColor: "DARK1", RgbColor: &slidespb.RgbColor{Red: 1}}, "theme:DARK1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := colorKey(tt.color); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCategorizeSlide(t *testing.T) {
	tests := []struct {
		name string
		info SlideInfo
		want string
	}{
		{"cover by title", SlideInfo{Title: "Cover slide", Index: 40}, "cover"},
		{"cover by structure", SlideInfo{ElementCount: 3, PlaceholderTypes: []string{"TITLE", "BODY"}, Index: 2}, "cover"},
		{"late title+body is not cover", SlideInfo{ElementCount: 3, PlaceholderTypes: []string{"TITLE", "BODY"}, Index: 20}, "content"},
		{"divider by title", SlideInfo{Title: "Section 2"}, "section_divider"},
		{"divider by structure", SlideInfo{ElementCount: 2, PlaceholderTypes: []string{"TITLE", "SUBTITLE"}}, "section_divider"},
		{"lone title is divider", SlideInfo{ElementCount: 1, PlaceholderTypes: []string{"TITLE"}}, "section_divider"},
		{"chart", SlideInfo{HasChart: true, ElementCount: 8}, "data_visualization"},
		{"table", SlideInfo{HasTable: true, ElementCount: 8}, "data_visualization"},
		{"data title", SlideInfo{Title: "Revenue graph", ElementCount: 8}, "data_visualization"},
		{"infographic by count", SlideInfo{ElementCount: 16}, "infographic"},
		{"mockup", SlideInfo{Title: "Phone mockup", ElementCount: 8}, "mockup"},
		{"image focused", SlideInfo{HasImage: true, ElementCount: 4}, "image_focused"},
		{"busy image slide is content", SlideInfo{HasImage: true, ElementCount: 8}, "content"},
		{"body placeholder", SlideInfo{PlaceholderTypes: []string{"BODY"}, ElementCount: 2}, "content"},
		{"sparse slide", SlideInfo{ElementCount: 2}, "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := categorizeSlide(tt.info); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func placeholderShape(ptype, text string, style *slidespb.TextStyle) *slidespb.PageElement {
	return &slidespb.PageElement{
		ObjectId: strings.ToLower(ptype) + "_el",
		Shape: &slidespb.Shape{
			Placeholder: &slidespb.Placeholder{Type: ptype},
			Text: &slidespb.TextContent{
				TextElements: []*slidespb.TextElement{
					{TextRun: &slidespb.TextRun{Content: text, Style: style}},
				},
			},
		},
	}
}

func TestAnalyzeCollectsStyleGuide(t *testing.T) {
	arial := &slidespb.TextStyle{
		FontFamily: "Arial",
		FontSize:   &slidespb.Dimension{Magnitude: 24, Unit: "PT"},
		ForegroundColor: &slidespb.OptionalColor{
			OpaqueColor: &slidespb.OpaqueColor{RgbColor: &slidespb.RgbColor{Red: 1}},
		},
	}

	pres := &slidespb.Presentation{
		Title: "Template Deck",
		PageSize: &slidespb.Size{
			Width:  &slidespb.Dimension{Magnitude: 9144000},
			Height: &slidespb.Dimension{Magnitude: 5143500},
		},
		Slides: []*slidespb.Page{
			{
				ObjectId: "p1",
				PageElements: []*slidespb.PageElement{
					placeholderShape("TITLE", "Cover", arial),
					placeholderShape("SUBTITLE", "MM.DD.YYYY", arial),
				},
			},
			{
				ObjectId: "p2",
				PageElements: []*slidespb.PageElement{
					placeholderShape("TITLE", "Full Name // Job Title", arial),
				},
			},
		},
	}

	a := Analyze(pres, "pres123")

	if a.Overview.Title != "Template Deck" || a.Overview.TotalSlides != 2 {
		t.Errorf("overview = %+v", a.Overview)
	}
	if a.Overview.AspectRatio != "16:9 (Widescreen)" {
		t.Errorf("aspect ratio = %s", a.Overview.AspectRatio)
	}
	if a.Overview.URL != "https://docs.google.com/presentation/d/pres123" {
		t.Errorf("url = %s", a.Overview.URL)
	}

	// Same color in several places collapses to one palette entry with
	// deduped contexts.
	if len(a.ColorPalette) != 1 || a.ColorPalette[0].Color != "#ff0000" {
		t.Fatalf("palette = %+v", a.ColorPalette)
	}
	if a.ColorPalette[0].UsageCount != 2 {
		t.Errorf("usage count = %d, want one per slide", a.ColorPalette[0].UsageCount)
	}

	if a.Typography.PrimaryFont != "Arial" {
		t.Errorf("primary font = %s", a.Typography.PrimaryFont)
	}
	if len(a.Typography.FontSizes) != 1 || a.Typography.FontSizes[0].SizePt != 24 || a.Typography.FontSizes[0].Count != 3 {
		t.Errorf("font sizes = %+v", a.Typography.FontSizes)
	}

	if len(a.PlaceholderPatterns.DatePatterns) != 1 || a.PlaceholderPatterns.DatePatterns[0].Text != "MM.DD.YYYY" {
		t.Errorf("date patterns = %+v", a.PlaceholderPatterns.DatePatterns)
	}
	if len(a.PlaceholderPatterns.NamePatterns) != 1 {
		t.Errorf("name patterns = %+v", a.PlaceholderPatterns.NamePatterns)
	}
}

func TestAnalyzePatternCaps(t *testing.T) {
	var texts []placeholderText
	for i := 0; i < 20; i++ {
		texts = append(texts, placeholderText{ptype: "TITLE", text: fmt.Sprintf("Title %d", i)})
		texts = append(texts, placeholderText{ptype: "BODY", text: strings.Repeat("x", 80)})
	}

	p := analyzePatterns(texts)
	if len(p.TitlePatterns) != 10 {
		t.Errorf("title samples = %d, want cap of 10", len(p.TitlePatterns))
	}
	if len(p.BodyPatterns) != 5 {
		t.Errorf("body samples = %d, want cap of 5", len(p.BodyPatterns))
	}
	if want := strings.Repeat("x", 50) + "..."; p.BodyPatterns[0] != want {
		t.Errorf("body sample not truncated: %q", p.BodyPatterns[0])
	}
}

func TestSelectKeySlides(t *testing.T) {
	inventory := []SlideInfo{
		{SlideID: "a", Index: 0, Category: "other"},
		{SlideID: "b", Index: 1, Category: "content"},
		{SlideID: "c", Index: 2, Category: "cover"},
		{SlideID: "d", Index: 3, Category: "content"},
		{SlideID: "e", Index: 4, Category: "data_visualization"},
	}

	selected := SelectKeySlides(inventory, 3)
	if len(selected) != 3 {
		t.Fatalf("got %d slides, want 3", len(selected))
	}
	// One representative per category in priority order: cover first, then
	// the first content slide, then data_visualization.
	if selected[0].SlideID != "c" || selected[1].SlideID != "b" || selected[2].SlideID != "e" {
		t.Errorf("selection = %s, %s, %s", selected[0].SlideID, selected[1].SlideID, selected[2].SlideID)
	}

	// With room to spare, remaining slides fill in deck order.
	all := SelectKeySlides(inventory, 10)
	if len(all) != 5 {
		t.Fatalf("got %d slides, want all 5", len(all))
	}
	if all[3].SlideID != "a" || all[4].SlideID != "d" {
		t.Errorf("fill order = %s, %s", all[3].SlideID, all[4].SlideID)
	}

	if got := SelectKeySlides(inventory, 0); got != nil {
		t.Errorf("max 0 should select nothing, got %+v", got)
	}
}

func TestAspectRatio(t *testing.T) {
	tests := []struct {
		w, h float64
		want string
	}{
		{10, 5.625, "16:9 (Widescreen)"},
		{10, 7.5, "4:3 (Standard)"},
		{10, 6.25, "16:10"},
		{10, 2, "5.00:1 (Custom)"},
		{0, 5, "Unknown"},
	}
	for _, tt := range tests {
		if got := aspectRatio(tt.w, tt.h); got != tt.want {
			t.Errorf("aspectRatio(%v, %v) = %q, want %q", tt.w, tt.h, got, tt.want)
		}
	}
}
