package content

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/color"
	"github.com/evert/google-slides-mcp-go/internal/pkg/placeholders"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

// --- update_slide_content ---

type UpdateSlideContentInput struct {
	UserEmail      string         `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string         `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	SlideID        string         `json:"slide_id" jsonschema:"required" jsonschema_description:"The slide to update"`
	Content        map[string]any `json:"content" jsonschema:"required" jsonschema_description:"Map of placeholder type to new text, e.g. {\"TITLE\": \"Hello\", \"BODY\": [\"Point 1\", \"Point 2\"]}. Lists are joined with newlines."`
}

type UpdateSlideContentOutput struct {
	Updated  []string `json:"updated"`
	NotFound []string `json:"not_found"`
}

func createUpdateSlideContentHandler(factory *services.Factory) mcp.ToolHandlerFor[UpdateSlideContentInput, UpdateSlideContentOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input UpdateSlideContentInput) (*mcp.CallToolResult, UpdateSlideContentOutput, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, UpdateSlideContentOutput{}, middleware.HandleGoogleAPIError(err)
		}

		page, err := srv.Presentations.Pages.Get(input.PresentationID, input.SlideID).Context(ctx).Do()
		if err != nil {
			return nil, UpdateSlideContentOutput{}, middleware.HandleGoogleAPIError(err)
		}

		var requests []*slidespb.Request
		var updated, notFound []string

		for placeholderType, value := range input.Content {
			newText := normalizeText(value)

			elements := placeholders.Find(page, placeholderType)
			if len(elements) == 0 {
				notFound = append(notFound, placeholderType)
				continue
			}
			for _, el := range elements {
				requests = append(requests, textReplacementRequests(el.ObjectID, newText)...)
			}
			updated = append(updated, placeholderType)
		}

		if len(requests) > 0 {
			batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
			if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
				return nil, UpdateSlideContentOutput{}, middleware.HandleGoogleAPIError(err)
			}
		}

		rb := response.New()
		rb.Header("Slide Content Updated")
		rb.KeyValue("Slide", input.SlideID)
		rb.KeyValue("Placeholders updated", len(updated))
		if len(notFound) > 0 {
			rb.KeyValue("Not found", fmt.Sprintf("%v", notFound))
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, UpdateSlideContentOutput{Updated: updated, NotFound: notFound}, nil
	}
}

// --- update_presentation_content ---

type UpdatePresentationContentInput struct {
	UserEmail      string           `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string           `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	Slides         []map[string]any `json:"slides" jsonschema:"required" jsonschema_description:"List of slide specs. Each spec has a slide_id key plus placeholder-type keys mapped to new text, e.g. [{\"slide_id\": \"p3\", \"TITLE\": \"Hello\"}]"`
}

type UpdatePresentationContentOutput struct {
	SlidesUpdated       int      `json:"slides_updated"`
	PlaceholdersUpdated int      `json:"placeholders_updated"`
	Errors              []string `json:"errors"`
}

func createUpdatePresentationContentHandler(factory *services.Factory) mcp.ToolHandlerFor[UpdatePresentationContentInput, UpdatePresentationContentOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input UpdatePresentationContentInput) (*mcp.CallToolResult, UpdatePresentationContentOutput, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, UpdatePresentationContentOutput{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, UpdatePresentationContentOutput{}, middleware.HandleGoogleAPIError(err)
		}

		slideMap := make(map[string]*slidespb.Page, len(pres.Slides))
		for _, slide := range pres.Slides {
			slideMap[slide.ObjectId] = slide
		}

		// Per-slide problems accumulate instead of aborting: one bad slide id
		// must not cost the caller the nine good ones.
		var requests []*slidespb.Request
		var errs []string
		slidesUpdated := 0
		placeholdersUpdated := 0

		for _, spec := range input.Slides {
			slideID, _ := spec["slide_id"].(string)
			if slideID == "" {
				errs = append(errs, "missing slide_id in slide specification")
				continue
			}

			slide, ok := slideMap[slideID]
			if !ok {
				errs = append(errs, fmt.Sprintf("slide %s not found in presentation", slideID))
				continue
			}

			slideHadUpdates := false
			for key, value := range spec {
				if key == "slide_id" {
					continue
				}
				newText := normalizeText(value)

				for _, el := range placeholders.Find(slide, key) {
					requests = append(requests, textReplacementRequests(el.ObjectID, newText)...)
					placeholdersUpdated++
					slideHadUpdates = true
				}
			}
			if slideHadUpdates {
				slidesUpdated++
			}
		}

		if len(requests) > 0 {
			batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
			if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
				return nil, UpdatePresentationContentOutput{}, middleware.HandleGoogleAPIError(err)
			}
		}

		output := UpdatePresentationContentOutput{
			SlidesUpdated:       slidesUpdated,
			PlaceholdersUpdated: placeholdersUpdated,
			Errors:              errs,
		}

		rb := response.New()
		rb.Header("Presentation Content Updated")
		rb.KeyValue("Slides updated", slidesUpdated)
		rb.KeyValue("Placeholders updated", placeholdersUpdated)
		if len(errs) > 0 {
			rb.Blank()
			rb.Line("Errors:")
			for _, e := range errs {
				rb.Item("%s", e)
			}
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, output, nil
	}
}

// --- apply_text_style ---

type ApplyTextStyleInput struct {
	UserEmail       string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID  string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	PlaceholderType string   `json:"placeholder_type" jsonschema:"required" jsonschema_description:"The placeholder type to style (TITLE, SUBTITLE, BODY)"`
	SlideIDs        []string `json:"slide_ids,omitempty" jsonschema_description:"Slide IDs to style; omit for all slides"`
	FontSizePt      *int64   `json:"font_size_pt,omitempty" jsonschema_description:"Font size in points"`
	Bold            *bool    `json:"bold,omitempty" jsonschema_description:"Whether text should be bold"`
	Italic          *bool    `json:"italic,omitempty" jsonschema_description:"Whether text should be italic"`
	FontFamily      *string  `json:"font_family,omitempty" jsonschema_description:"Font family name, e.g. Arial or Roboto"`
	Color           *string  `json:"color,omitempty" jsonschema_description:"Hex text color, e.g. #FF0000"`
	Alignment       *string  `json:"alignment,omitempty" jsonschema:"enum=START,enum=CENTER,enum=END,enum=JUSTIFIED" jsonschema_description:"Paragraph alignment"`
}

type ApplyTextStyleOutput struct {
	ElementsStyled int      `json:"elements_styled"`
	SlidesAffected []string `json:"slides_affected"`
}

func createApplyTextStyleHandler(factory *services.Factory) mcp.ToolHandlerFor[ApplyTextStyleInput, ApplyTextStyleOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ApplyTextStyleInput) (*mcp.CallToolResult, ApplyTextStyleOutput, error) {
		// Validate the color before any network call.
		if input.Color != nil {
			if _, err := color.HexToRGB(*input.Color); err != nil {
				return nil, ApplyTextStyleOutput{}, err
			}
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ApplyTextStyleOutput{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, ApplyTextStyleOutput{}, middleware.HandleGoogleAPIError(err)
		}

		var filter map[string]bool
		if len(input.SlideIDs) > 0 {
			filter = make(map[string]bool, len(input.SlideIDs))
			for _, id := range input.SlideIDs {
				filter[id] = true
			}
		}

		spec := styleSpec{
			FontSizePt: input.FontSizePt,
			Bold:       input.Bold,
			Italic:     input.Italic,
			FontFamily: input.FontFamily,
			Color:      input.Color,
			Alignment:  input.Alignment,
		}

		var requests []*slidespb.Request
		elementsStyled := 0
		var slidesAffected []string

		for _, slide := range pres.Slides {
			if filter != nil && !filter[slide.ObjectId] {
				continue
			}

			elements := placeholders.Find(slide, input.PlaceholderType)
			if len(elements) == 0 {
				continue
			}
			slidesAffected = append(slidesAffected, slide.ObjectId)

			for _, el := range elements {
				styleReq, err := styleRequest(el.ObjectID, spec)
				if err != nil {
					return nil, ApplyTextStyleOutput{}, err
				}
				paraReq := paragraphStyleRequest(el.ObjectID, spec.Alignment)

				if styleReq != nil {
					requests = append(requests, styleReq)
				}
				if paraReq != nil {
					requests = append(requests, paraReq)
				}
				if styleReq != nil || paraReq != nil {
					elementsStyled++
				}
			}
		}

		if len(requests) > 0 {
			batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
			if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
				return nil, ApplyTextStyleOutput{}, middleware.HandleGoogleAPIError(err)
			}
		}

		output := ApplyTextStyleOutput{
			ElementsStyled: elementsStyled,
			SlidesAffected: slidesAffected,
		}

		rb := response.New()
		rb.Header("Text Style Applied")
		rb.KeyValue("Placeholder type", input.PlaceholderType)
		rb.KeyValue("Elements styled", elementsStyled)
		rb.KeyValue("Slides affected", len(slidesAffected))

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, output, nil
	}
}
