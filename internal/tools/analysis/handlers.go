package analysis

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

type AnalyzePresentationInput struct {
	UserEmail          string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID     string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	IncludeThumbnails  bool   `json:"include_thumbnails,omitempty" jsonschema_description:"Generate thumbnail URLs for key slides"`
	MaxThumbnailSlides int    `json:"max_thumbnail_slides,omitempty" jsonschema_description:"Maximum thumbnails to generate (1-10, default 5)"`
}

func createAnalyzePresentationHandler(factory *services.Factory) mcp.ToolHandlerFor[AnalyzePresentationInput, Analysis] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AnalyzePresentationInput) (*mcp.CallToolResult, Analysis, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, Analysis{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, Analysis{}, middleware.HandleGoogleAPIError(err)
		}

		analysis := Analyze(pres, input.PresentationID)

		if input.IncludeThumbnails {
			max := input.MaxThumbnailSlides
			if max <= 0 {
				max = 5
			}
			if max > 10 {
				max = 10
			}

			// Thumbnail failures are cosmetic; a slide that will not render
			// must not sink the analysis.
			for _, s := range SelectKeySlides(analysis.SlideInventory, max) {
				thumbnail, err := srv.Presentations.Pages.GetThumbnail(input.PresentationID, s.SlideID).
					ThumbnailPropertiesMimeType("PNG").
					Context(ctx).
					Do()
				if err != nil {
					continue
				}
				analysis.Thumbnails = append(analysis.Thumbnails, Thumbnail{
					SlideIndex: s.Index,
					SlideID:    s.SlideID,
					Title:      s.Title,
					Category:   s.Category,
					URL:        thumbnail.ContentUrl,
				})
			}
		}

		rb := response.New()
		rb.Header("Presentation Analysis: %s", analysis.Overview.Title)
		rb.KeyValue("Slides", analysis.Overview.TotalSlides)
		rb.KeyValue("Page size", fmt.Sprintf("%.2f\" x %.2f\" (%s)",
			analysis.Overview.WidthInches, analysis.Overview.HeightInches, analysis.Overview.AspectRatio))
		rb.KeyValue("URL", analysis.Overview.URL)

		rb.Blank()
		rb.Section("Layout Categories")
		for category, group := range analysis.LayoutCategories {
			rb.Item("%s: %d slide(s)", category, group.Count)
		}

		if len(analysis.ColorPalette) > 0 {
			rb.Blank()
			rb.Section("Color Palette")
			for _, c := range analysis.ColorPalette {
				rb.Item("%s (used %d time(s))", c.Color, c.UsageCount)
			}
		}

		if len(analysis.Typography.Fonts) > 0 {
			rb.Blank()
			rb.Section("Typography")
			if analysis.Typography.PrimaryFont != "" {
				rb.KeyValue("Primary font", analysis.Typography.PrimaryFont)
			}
			for _, fs := range analysis.Typography.FontSizes {
				rb.Item("%.0fpt: %d run(s)", fs.SizePt, fs.Count)
			}
		}

		rb.Blank()
		rb.Section("Recommendations")
		for _, rec := range analysis.Recommendations {
			rb.Item("%s", rec)
		}

		if len(analysis.Thumbnails) > 0 {
			rb.Blank()
			rb.Section("Key Slide Thumbnails")
			for _, t := range analysis.Thumbnails {
				rb.Item("Slide %d (%s): %s", t.SlideIndex+1, t.Category, t.URL)
			}
		}

		return rb.TextResult(), analysis, nil
	}
}
