package utility

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

// --- list_slides ---

type ListSlidesInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
}

type ListSlidesOutput struct {
	Slides     []SlideInfo `json:"slides"`
	SlideCount int         `json:"slide_count"`
}

func createListSlidesHandler(factory *services.Factory) mcp.ToolHandlerFor[ListSlidesInput, ListSlidesOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListSlidesInput) (*mcp.CallToolResult, ListSlidesOutput, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ListSlidesOutput{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, ListSlidesOutput{}, middleware.HandleGoogleAPIError(err)
		}

		infos := slideInfos(pres)

		rb := response.New()
		rb.Header("Slides in %q", pres.Title)
		rb.KeyValue("Slide count", len(infos))
		rb.Blank()
		for _, s := range infos {
			title := s.Title
			if title == "" {
				title = "(no title)"
			}
			rb.Item("%d. %s", s.Index+1, title)
			rb.Line("    ID: %s | Elements: %d", s.SlideID, s.ElementCount)
		}

		return rb.TextResult(), ListSlidesOutput{Slides: infos, SlideCount: len(infos)}, nil
	}
}

// --- get_element_info ---

type GetElementInfoInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	ElementID      string `json:"element_id" jsonschema:"required" jsonschema_description:"The page element's object ID"`
}

func createGetElementInfoHandler(factory *services.Factory) mcp.ToolHandlerFor[GetElementInfoInput, ElementInfo] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetElementInfoInput) (*mcp.CallToolResult, ElementInfo, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ElementInfo{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, ElementInfo{}, middleware.HandleGoogleAPIError(err)
		}

		el := findElement(pres, input.ElementID)
		if el == nil {
			return nil, ElementInfo{}, fmt.Errorf("element %s not found in presentation %s", input.ElementID, input.PresentationID)
		}

		info := elementInfo(el)

		rb := response.New()
		rb.Header("Element Info")
		rb.KeyValue("ID", info.ID)
		rb.KeyValue("Type", info.Type)
		rb.KeyValue("Position", fmt.Sprintf("%.2f\", %.2f\"", info.Position.XInches, info.Position.YInches))
		rb.KeyValue("Size", fmt.Sprintf("%.2f\" x %.2f\"", info.Size.WidthInches, info.Size.HeightInches))
		if info.ShapeType != "" {
			rb.KeyValue("Shape type", info.ShapeType)
		}
		if info.PlaceholderType != "" {
			rb.KeyValue("Placeholder", info.PlaceholderType)
		}
		if info.Text != "" {
			rb.Blank()
			rb.Line("Text:")
			rb.Raw(info.Text)
		}

		return rb.TextResult(), info, nil
	}
}

// --- export_thumbnail ---

type ExportThumbnailInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	SlideID        string `json:"slide_id" jsonschema:"required" jsonschema_description:"The slide to render"`
	Size           string `json:"size,omitempty" jsonschema:"enum=LARGE,enum=MEDIUM,enum=SMALL" jsonschema_description:"Thumbnail size (default LARGE)"`
}

type ExportThumbnailOutput struct {
	ContentURL string `json:"content_url"`
	Width      int64  `json:"width"`
	Height     int64  `json:"height"`
}

func createExportThumbnailHandler(factory *services.Factory) mcp.ToolHandlerFor[ExportThumbnailInput, ExportThumbnailOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExportThumbnailInput) (*mcp.CallToolResult, ExportThumbnailOutput, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ExportThumbnailOutput{}, middleware.HandleGoogleAPIError(err)
		}

		size := input.Size
		if size == "" {
			size = "LARGE"
		}

		thumbnail, err := srv.Presentations.Pages.GetThumbnail(input.PresentationID, input.SlideID).
			ThumbnailPropertiesMimeType("PNG").
			ThumbnailPropertiesThumbnailSize(size).
			Context(ctx).
			Do()
		if err != nil {
			return nil, ExportThumbnailOutput{}, middleware.HandleGoogleAPIError(err)
		}

		output := ExportThumbnailOutput{
			ContentURL: thumbnail.ContentUrl,
			Width:      thumbnail.Width,
			Height:     thumbnail.Height,
		}

		rb := response.New()
		rb.Header("Slide Thumbnail")
		rb.KeyValue("Slide", input.SlideID)
		rb.KeyValue("Size", fmt.Sprintf("%dx%d", thumbnail.Width, thumbnail.Height))
		rb.KeyValue("URL", thumbnail.ContentUrl)
		rb.Blank()
		rb.Line("The URL is temporary — download promptly if the image is needed later.")

		return rb.TextResult(), output, nil
	}
}
