package analysis

import (
	"fmt"
	"math"
	"sort"
	"strings"

	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
)

// Overview summarizes presentation-level metadata.
type Overview struct {
	PresentationID string  `json:"presentation_id"`
	Title          string  `json:"title"`
	TotalSlides    int     `json:"total_slides"`
	WidthInches    float64 `json:"width_inches"`
	HeightInches   float64 `json:"height_inches"`
	AspectRatio    string  `json:"aspect_ratio"`
	URL            string  `json:"url"`
}

// SlideInfo is the analyzed view of one slide.
type SlideInfo struct {
	SlideID          string   `json:"slide_id"`
	Index            int      `json:"index"`
	ElementCount     int      `json:"element_count"`
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle"`
	HasImage         bool     `json:"has_image"`
	HasChart         bool     `json:"has_chart"`
	HasTable         bool     `json:"has_table"`
	PlaceholderTypes []string `json:"placeholder_types"`
	Category         string   `json:"category"`
}

// ColorUsage is one palette entry. Theme colors are keyed "theme:NAME",
// concrete colors by lowercase hex.
type ColorUsage struct {
	Color      string   `json:"color"`
	UsageCount int      `json:"usage_count"`
	Contexts   []string `json:"contexts"`
}

// FontSizeCount is one bucket of the font size histogram.
type FontSizeCount struct {
	SizePt float64 `json:"size_pt"`
	Count  int     `json:"count"`
}

// Typography summarizes font usage across the deck.
type Typography struct {
	Fonts       []string        `json:"fonts"`
	PrimaryFont string          `json:"primary_font,omitempty"`
	FontSizes   []FontSizeCount `json:"font_sizes"`
}

// PatternExample is a placeholder text flagged as a fill-in pattern.
type PatternExample struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// PlaceholderPatterns collects sample placeholder texts and detected
// fill-in patterns.
type PlaceholderPatterns struct {
	TitlePatterns    []string         `json:"title_patterns"`
	SubtitlePatterns []string         `json:"subtitle_patterns"`
	BodyPatterns     []string         `json:"body_patterns"`
	DatePatterns     []PatternExample `json:"date_patterns"`
	NamePatterns     []PatternExample `json:"name_patterns"`
}

// CategorySlide is a slide reference within a layout category.
type CategorySlide struct {
	Index   int    `json:"index"`
	SlideID string `json:"slide_id"`
	Title   string `json:"title"`
}

// CategoryGroup summarizes one slide category.
type CategoryGroup struct {
	Count  int             `json:"count"`
	Slides []CategorySlide `json:"slides"`
}

// Thumbnail is a rendered key slide.
type Thumbnail struct {
	SlideIndex int    `json:"slide_index"`
	SlideID    string `json:"slide_id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	URL        string `json:"url"`
}

// Analysis is the full analyzer output.
type Analysis struct {
	Overview            Overview                 `json:"overview"`
	SlideInventory      []SlideInfo              `json:"slide_inventory"`
	ColorPalette        []ColorUsage             `json:"color_palette"`
	Typography          Typography               `json:"typography"`
	PlaceholderPatterns PlaceholderPatterns      `json:"placeholder_patterns"`
	LayoutCategories    map[string]CategoryGroup `json:"layout_categories"`
	Recommendations     []string                 `json:"recommendations"`
	Thumbnails          []Thumbnail              `json:"thumbnails,omitempty"`
}

// placeholderText is a text sample collected during the walk.
type placeholderText struct {
	ptype string
	text  string
	slide int
}

// collector accumulates palette, typography, and pattern data while slides
// are walked in order. Context lists are deduped; insertion order is kept so
// output is stable without relying on map iteration.
type collector struct {
	colorOrder []string
	colors     map[string][]string
	fontOrder  []string
	fonts      map[string][]string
	fontSizes  map[float64]int
	texts      []placeholderText
}

func newCollector() *collector {
	return &collector{
		colors:    make(map[string][]string),
		fonts:     make(map[string][]string),
		fontSizes: make(map[float64]int),
	}
}

func (c *collector) addColor(color *slidespb.OpaqueColor, context string) {
	key := colorKey(color)
	if key == "" {
		return
	}
	if _, seen := c.colors[key]; !seen {
		c.colorOrder = append(c.colorOrder, key)
	}
	c.colors[key] = appendUnique(c.colors[key], context)
}

func (c *collector) addFont(family, context string) {
	if family == "" {
		return
	}
	if _, seen := c.fonts[family]; !seen {
		c.fontOrder = append(c.fontOrder, family)
	}
	c.fonts[family] = appendUnique(c.fonts[family], context)
}

// colorKey renders an opaque color as its palette key. Theme references keep
// the theme name so palette entries survive theme edits; concrete colors are
// lowercased hex. Empty string means no color present.
func colorKey(color *slidespb.OpaqueColor) string {
	if color == nil {
		return ""
	}
	if color.ThemeColor != "" {
		return "theme:" + color.ThemeColor
	}
	if color.RgbColor == nil {
		return ""
	}
	rgb := color.RgbColor
	return fmt.Sprintf("#%02x%02x%02x",
		int(rgb.Red*255), int(rgb.Green*255), int(rgb.Blue*255))
}

func appendUnique(list []string, s string) []string {
	for _, have := range list {
		if have == s {
			return list
		}
	}
	return append(list, s)
}

// Analyze walks a full presentation and produces the style guide analysis.
func Analyze(pres *slidespb.Presentation, presentationID string) Analysis {
	col := newCollector()
	inventory := make([]SlideInfo, 0, len(pres.Slides))

	for i, slide := range pres.Slides {
		info := analyzeSlide(slide, i, col)
		info.Category = categorizeSlide(info)
		inventory = append(inventory, info)
	}

	return Analysis{
		Overview:            buildOverview(pres, presentationID),
		SlideInventory:      inventory,
		ColorPalette:        col.palette(20, 5),
		Typography:          col.typography(10),
		PlaceholderPatterns: analyzePatterns(col.texts),
		LayoutCategories:    groupCategories(inventory, 10),
		Recommendations:     recommendations(inventory, analyzePatterns(col.texts), col),
	}
}

func buildOverview(pres *slidespb.Presentation, presentationID string) Overview {
	var widthIn, heightIn float64
	if pres.PageSize != nil {
		if pres.PageSize.Width != nil {
			widthIn = units.EMUToInches(int64(pres.PageSize.Width.Magnitude))
		}
		if pres.PageSize.Height != nil {
			heightIn = units.EMUToInches(int64(pres.PageSize.Height.Magnitude))
		}
	}

	title := pres.Title
	if title == "" {
		title = "Untitled"
	}

	return Overview{
		PresentationID: presentationID,
		Title:          title,
		TotalSlides:    len(pres.Slides),
		WidthInches:    math.Round(widthIn*100) / 100,
		HeightInches:   math.Round(heightIn*100) / 100,
		AspectRatio:    aspectRatio(widthIn, heightIn),
		URL:            fmt.Sprintf("https://docs.google.com/presentation/d/%s", presentationID),
	}
}

func aspectRatio(widthIn, heightIn float64) string {
	if widthIn <= 0 || heightIn <= 0 {
		return "Unknown"
	}
	ratio := widthIn / heightIn
	switch {
	case math.Abs(ratio-16.0/9.0) < 0.1:
		return "16:9 (Widescreen)"
	case math.Abs(ratio-4.0/3.0) < 0.1:
		return "4:3 (Standard)"
	case math.Abs(ratio-16.0/10.0) < 0.1:
		return "16:10"
	default:
		return fmt.Sprintf("%.2f:1 (Custom)", ratio)
	}
}

func analyzeSlide(slide *slidespb.Page, index int, col *collector) SlideInfo {
	info := SlideInfo{
		SlideID:      slide.ObjectId,
		Index:        index,
		ElementCount: len(slide.PageElements),
	}

	for _, el := range slide.PageElements {
		switch {
		case el.Image != nil:
			info.HasImage = true
		case el.SheetsChart != nil:
			info.HasChart = true
		case el.Table != nil:
			info.HasTable = true
		}

		if el.Shape == nil {
			continue
		}
		analyzeShape(el.Shape, index, &info, col)
	}

	if slide.PageProperties != nil &&
		slide.PageProperties.PageBackgroundFill != nil &&
		slide.PageProperties.PageBackgroundFill.SolidFill != nil {
		col.addColor(slide.PageProperties.PageBackgroundFill.SolidFill.Color,
			fmt.Sprintf("Background on slide %d", index+1))
	}

	return info
}

func analyzeShape(shape *slidespb.Shape, slideIndex int, info *SlideInfo, col *collector) {
	var ptype string
	if shape.Placeholder != nil && shape.Placeholder.Type != "" {
		ptype = shape.Placeholder.Type
		info.PlaceholderTypes = append(info.PlaceholderTypes, ptype)
	}

	if shape.Text != nil {
		for _, te := range shape.Text.TextElements {
			if te.TextRun == nil {
				continue
			}
			content := strings.TrimSpace(te.TextRun.Content)
			if content == "" {
				continue
			}

			if ptype != "" {
				switch ptype {
				case "TITLE":
					if info.Title == "" {
						info.Title = content
					}
				case "SUBTITLE":
					if info.Subtitle == "" {
						info.Subtitle = content
					}
				}
				col.texts = append(col.texts, placeholderText{
					ptype: ptype,
					text:  truncate(content, 100),
					slide: slideIndex,
				})
			}

			if style := te.TextRun.Style; style != nil {
				col.addFont(style.FontFamily, fmt.Sprintf("Slide %d", slideIndex+1))
				if style.FontSize != nil && style.FontSize.Magnitude != 0 {
					col.fontSizes[style.FontSize.Magnitude]++
				}
				if style.ForegroundColor != nil {
					col.addColor(style.ForegroundColor.OpaqueColor,
						fmt.Sprintf("Text on slide %d", slideIndex+1))
				}
			}
		}
	}

	if shape.ShapeProperties != nil &&
		shape.ShapeProperties.ShapeBackgroundFill != nil &&
		shape.ShapeProperties.ShapeBackgroundFill.SolidFill != nil {
		col.addColor(shape.ShapeProperties.ShapeBackgroundFill.SolidFill.Color,
			fmt.Sprintf("Shape fill on slide %d", slideIndex+1))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

// categorizeSlide assigns a slide to exactly one category. The checks run in
// a fixed precedence order; the first match wins.
func categorizeSlide(info SlideInfo) string {
	title := strings.ToLower(info.Title)
	has := func(types ...string) bool {
		for _, want := range types {
			found := false
			for _, p := range info.PlaceholderTypes {
				if p == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}
	titleContains := func(keywords ...string) bool {
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}

	switch {
	case titleContains("cover", "title page"),
		info.ElementCount <= 4 && has("TITLE", "BODY") && info.Index < 15:
		return "cover"
	case titleContains("section", "divider"),
		info.ElementCount <= 3 && has("TITLE") && (has("SUBTITLE") || info.ElementCount == 1):
		return "section_divider"
	case info.HasChart, info.HasTable, titleContains("chart", "graph", "table", "data"):
		return "data_visualization"
	case titleContains("infographic"), info.ElementCount > 15:
		return "infographic"
	case titleContains("mockup", "phone", "laptop", "device", "smartphone", "notebook"):
		return "mockup"
	case info.HasImage && info.ElementCount <= 5:
		return "image_focused"
	case has("BODY"), info.ElementCount >= 3:
		return "content"
	default:
		return "other"
	}
}

// palette returns the most-used colors, each with a capped context sample.
func (c *collector) palette(maxColors, maxContexts int) []ColorUsage {
	out := make([]ColorUsage, 0, len(c.colorOrder))
	for _, key := range c.colorOrder {
		contexts := c.colors[key]
		usage := ColorUsage{Color: key, UsageCount: len(contexts)}
		if len(contexts) > maxContexts {
			contexts = contexts[:maxContexts]
		}
		usage.Contexts = contexts
		out = append(out, usage)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UsageCount > out[j].UsageCount
	})
	if len(out) > maxColors {
		out = out[:maxColors]
	}
	return out
}

// typography returns font names in discovery order, the most-used font, and
// the top size buckets by frequency.
func (c *collector) typography(maxSizes int) Typography {
	t := Typography{Fonts: c.fontOrder}

	best := 0
	for _, font := range c.fontOrder {
		if n := len(c.fonts[font]); n > best {
			best = n
			t.PrimaryFont = font
		}
	}

	sizes := make([]FontSizeCount, 0, len(c.fontSizes))
	for size, count := range c.fontSizes {
		sizes = append(sizes, FontSizeCount{SizePt: size, Count: count})
	}
	sort.Slice(sizes, func(i, j int) bool {
		if sizes[i].Count != sizes[j].Count {
			return sizes[i].Count > sizes[j].Count
		}
		return sizes[i].SizePt < sizes[j].SizePt
	})
	if len(sizes) > maxSizes {
		sizes = sizes[:maxSizes]
	}
	t.FontSizes = sizes
	return t
}

var (
	dateTokens = []string{"MM.DD", "YYYY", "mm/dd", "date"}
	nameTokens = []string{"full name", "name //", "job title"}
)

// analyzePatterns mines the collected placeholder texts for fill-in
// patterns and keeps capped samples per placeholder type.
func analyzePatterns(texts []placeholderText) PlaceholderPatterns {
	p := PlaceholderPatterns{}
	seenDate := make(map[string]bool)
	seenName := make(map[string]bool)

	for _, item := range texts {
		for _, token := range dateTokens {
			if strings.Contains(item.text, token) && !seenDate[item.text] {
				seenDate[item.text] = true
				p.DatePatterns = append(p.DatePatterns, PatternExample{Text: item.text, Type: item.ptype})
				break
			}
		}
		lower := strings.ToLower(item.text)
		for _, token := range nameTokens {
			if strings.Contains(lower, token) && !seenName[item.text] {
				seenName[item.text] = true
				p.NamePatterns = append(p.NamePatterns, PatternExample{Text: item.text, Type: item.ptype})
				break
			}
		}

		switch item.ptype {
		case "TITLE":
			if len(p.TitlePatterns) < 10 {
				p.TitlePatterns = append(p.TitlePatterns, item.text)
			}
		case "SUBTITLE":
			if len(p.SubtitlePatterns) < 10 {
				p.SubtitlePatterns = append(p.SubtitlePatterns, item.text)
			}
		case "BODY":
			if len(p.BodyPatterns) < 5 {
				sample := item.text
				if len(sample) > 50 {
					sample = sample[:50] + "..."
				}
				p.BodyPatterns = append(p.BodyPatterns, sample)
			}
		}
	}
	return p
}

func groupCategories(inventory []SlideInfo, maxExamples int) map[string]CategoryGroup {
	grouped := make(map[string][]CategorySlide)
	for _, s := range inventory {
		grouped[s.Category] = append(grouped[s.Category], CategorySlide{
			Index:   s.Index,
			SlideID: s.SlideID,
			Title:   s.Title,
		})
	}

	out := make(map[string]CategoryGroup, len(grouped))
	for category, slides := range grouped {
		group := CategoryGroup{Count: len(slides)}
		if len(slides) > maxExamples {
			slides = slides[:maxExamples]
		}
		group.Slides = slides
		out[category] = group
	}
	return out
}

func recommendations(inventory []SlideInfo, patterns PlaceholderPatterns, col *collector) []string {
	var recs []string

	var covers, sections []SlideInfo
	for _, s := range inventory {
		switch s.Category {
		case "cover":
			covers = append(covers, s)
		case "section_divider":
			sections = append(sections, s)
		}
	}

	if len(covers) > 0 {
		recs = append(recs, fmt.Sprintf("Use slides %s as cover options (found %d cover variants)",
			slideNumbers(covers, 4), len(covers)))
	}
	if len(sections) > 0 {
		recs = append(recs, fmt.Sprintf("Use slides %s as section dividers", slideNumbers(sections, 2)))
	}
	if len(patterns.DatePatterns) > 0 {
		recs = append(recs, fmt.Sprintf("Replace date placeholder %q with actual dates", patterns.DatePatterns[0].Text))
	}
	if len(patterns.NamePatterns) > 0 {
		recs = append(recs, fmt.Sprintf("Replace name placeholder %q with presenter info", patterns.NamePatterns[0].Text))
	}

	typ := col.typography(10)
	if typ.PrimaryFont != "" {
		recs = append(recs, fmt.Sprintf("Maintain %q as the primary font for consistency", typ.PrimaryFont))
	}
	if palette := col.palette(3, 1); len(palette) > 0 {
		names := make([]string, 0, len(palette))
		for _, c := range palette {
			names = append(names, c.Color)
		}
		recs = append(recs, "Primary brand colors detected: "+strings.Join(names, ", "))
	}

	recs = append(recs, "Workflow: copy_template, delete unused slides, replace_placeholders, then add images")
	return recs
}

func slideNumbers(slides []SlideInfo, max int) string {
	if len(slides) > max {
		slides = slides[:max]
	}
	nums := make([]string, 0, len(slides))
	for _, s := range slides {
		nums = append(nums, fmt.Sprintf("%d", s.Index+1))
	}
	return strings.Join(nums, ", ")
}

// keySlidePriority orders categories for thumbnail selection: one
// representative per category first, then remaining slides in deck order.
var keySlidePriority = []string{"cover", "section_divider", "content", "data_visualization", "mockup", "infographic"}

// SelectKeySlides picks up to max representative slides for thumbnails.
func SelectKeySlides(inventory []SlideInfo, max int) []SlideInfo {
	if max <= 0 {
		return nil
	}

	var selected []SlideInfo
	chosen := make(map[string]bool)

	for _, category := range keySlidePriority {
		if len(selected) >= max {
			break
		}
		for _, s := range inventory {
			if s.Category == category {
				selected = append(selected, s)
				chosen[s.SlideID] = true
				break
			}
		}
	}

	for _, s := range inventory {
		if len(selected) >= max {
			break
		}
		if !chosen[s.SlideID] {
			selected = append(selected, s)
			chosen[s.SlideID] = true
		}
	}

	return selected
}
