package creation

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/color"
	"github.com/evert/google-slides-mcp-go/internal/pkg/geometry"
	"github.com/evert/google-slides-mcp-go/internal/pkg/placeholders"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

// --- create_slide ---

type CreateSlideInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	Layout         string `json:"layout,omitempty" jsonschema:"enum=BLANK,enum=TITLE,enum=TITLE_AND_BODY,enum=TITLE_AND_TWO_COLUMNS,enum=TITLE_ONLY,enum=SECTION_HEADER,enum=ONE_COLUMN_TEXT,enum=MAIN_POINT,enum=BIG_NUMBER,enum=CAPTION_ONLY" jsonschema_description:"Slide layout (default BLANK)"`
	InsertionIndex *int64 `json:"insertion_index,omitempty" jsonschema_description:"Zero-based position for the new slide; omit to append at the end"`
}

type CreateSlideOutput struct {
	SlideID        string            `json:"slide_id"`
	PlaceholderIDs map[string]string `json:"placeholder_ids"`
}

func createCreateSlideHandler(factory *services.Factory) mcp.ToolHandlerFor[CreateSlideInput, CreateSlideOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateSlideInput) (*mcp.CallToolResult, CreateSlideOutput, error) {
		layout := input.Layout
		if layout == "" {
			layout = "BLANK"
		}
		if !predefinedLayouts[layout] {
			return nil, CreateSlideOutput{}, fmt.Errorf("unknown layout %q", layout)
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, CreateSlideOutput{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, CreateSlideOutput{}, middleware.HandleGoogleAPIError(err)
		}

		slideID := newObjectID("slide")
		createReq := &slidespb.CreateSlideRequest{
			ObjectId:             slideID,
			SlideLayoutReference: &slidespb.LayoutReference{PredefinedLayout: layout},
		}
		if layoutID := resolveLayoutID(pres, layout); layoutID != "" {
			createReq.SlideLayoutReference = &slidespb.LayoutReference{LayoutId: layoutID}
		}
		if input.InsertionIndex != nil {
			createReq.InsertionIndex = *input.InsertionIndex
			createReq.ForceSendFields = append(createReq.ForceSendFields, "InsertionIndex")
		}

		batch := &slidespb.BatchUpdatePresentationRequest{
			Requests: []*slidespb.Request{{CreateSlide: createReq}},
		}
		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, CreateSlideOutput{}, middleware.HandleGoogleAPIError(err)
		}

		// Fetch the created slide so the caller gets placeholder IDs without a
		// second round trip of their own.
		page, err := srv.Presentations.Pages.Get(input.PresentationID, slideID).Context(ctx).Do()
		if err != nil {
			return nil, CreateSlideOutput{}, middleware.HandleGoogleAPIError(err)
		}

		placeholderIDs := make(map[string]string)
		for _, el := range placeholders.FindAll(page) {
			placeholderIDs[el.Type] = el.ObjectID
		}

		rb := response.New()
		rb.Header("Slide Created")
		rb.KeyValue("Slide ID", slideID)
		rb.KeyValue("Layout", layout)
		if len(placeholderIDs) > 0 {
			rb.Blank()
			rb.Line("Placeholders:")
			for ptype, id := range placeholderIDs {
				rb.Item("%s: %s", ptype, id)
			}
		}

		return rb.TextResult(), CreateSlideOutput{SlideID: slideID, PlaceholderIDs: placeholderIDs}, nil
	}
}

// --- add_text_box ---

type AddTextBoxInput struct {
	UserEmail      string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	SlideID        string   `json:"slide_id" jsonschema:"required" jsonschema_description:"The slide to add the text box to"`
	Text           string   `json:"text" jsonschema:"required" jsonschema_description:"The text content"`
	X              *float64 `json:"x,omitempty" jsonschema_description:"X position in inches from the left edge (default 1)"`
	Y              *float64 `json:"y,omitempty" jsonschema_description:"Y position in inches from the top edge (default 1)"`
	Width          *float64 `json:"width,omitempty" jsonschema_description:"Width in inches (default 4)"`
	Height         *float64 `json:"height,omitempty" jsonschema_description:"Height in inches (default 1)"`
	FontSizePt     *int64   `json:"font_size_pt,omitempty" jsonschema_description:"Font size in points (default 18)"`
	FontFamily     string   `json:"font_family,omitempty" jsonschema_description:"Font family (default Arial)"`
	Bold           bool     `json:"bold,omitempty" jsonschema_description:"Whether text is bold"`
	Italic         bool     `json:"italic,omitempty" jsonschema_description:"Whether text is italic"`
	Color          string   `json:"color,omitempty" jsonschema_description:"Hex text color (default #000000)"`
	Alignment      string   `json:"alignment,omitempty" jsonschema:"enum=START,enum=CENTER,enum=END,enum=JUSTIFIED" jsonschema_description:"Paragraph alignment (default START)"`
}

type AddTextBoxOutput struct {
	ElementID string `json:"element_id"`
}

func createAddTextBoxHandler(factory *services.Factory) mcp.ToolHandlerFor[AddTextBoxInput, AddTextBoxOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddTextBoxInput) (*mcp.CallToolResult, AddTextBoxOutput, error) {
		hex := input.Color
		if hex == "" {
			hex = "#000000"
		}
		rgb, err := color.HexToRGB(hex)
		if err != nil {
			return nil, AddTextBoxOutput{}, err
		}

		fontFamily := input.FontFamily
		if fontFamily == "" {
			fontFamily = "Arial"
		}
		fontSize := int64(18)
		if input.FontSizePt != nil {
			fontSize = *input.FontSizePt
		}
		alignment := input.Alignment
		if alignment == "" {
			alignment = "START"
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, AddTextBoxOutput{}, middleware.HandleGoogleAPIError(err)
		}

		elementID := newObjectID("textbox")
		style := &slidespb.TextStyle{
			FontFamily: fontFamily,
			FontSize:   &slidespb.Dimension{Magnitude: float64(fontSize), Unit: "PT"},
			Bold:       input.Bold,
			Italic:     input.Italic,
			ForegroundColor: &slidespb.OptionalColor{
				OpaqueColor: &slidespb.OpaqueColor{RgbColor: rgb},
			},
		}
		if !input.Bold {
			style.ForceSendFields = append(style.ForceSendFields, "Bold")
		}
		if !input.Italic {
			style.ForceSendFields = append(style.ForceSendFields, "Italic")
		}

		batch := &slidespb.BatchUpdatePresentationRequest{
			Requests: []*slidespb.Request{
				{
					CreateShape: &slidespb.CreateShapeRequest{
						ObjectId:  elementID,
						ShapeType: "TEXT_BOX",
						ElementProperties: elementProperties(input.SlideID,
							orDefault(input.X, 1), orDefault(input.Y, 1),
							orDefault(input.Width, 4), orDefault(input.Height, 1)),
					},
				},
				{
					InsertText: &slidespb.InsertTextRequest{
						ObjectId:       elementID,
						Text:           input.Text,
						InsertionIndex: 0,
					},
				},
				{
					UpdateTextStyle: &slidespb.UpdateTextStyleRequest{
						ObjectId:  elementID,
						Style:     style,
						Fields:    "fontFamily,fontSize,bold,italic,foregroundColor",
						TextRange: &slidespb.Range{Type: "ALL"},
					},
				},
				{
					UpdateParagraphStyle: &slidespb.UpdateParagraphStyleRequest{
						ObjectId:  elementID,
						Style:     &slidespb.ParagraphStyle{Alignment: alignment},
						Fields:    "alignment",
						TextRange: &slidespb.Range{Type: "ALL"},
					},
				},
			},
		}

		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, AddTextBoxOutput{}, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Text Box Added")
		rb.KeyValue("Element ID", elementID)
		rb.KeyValue("Slide", input.SlideID)

		return rb.TextResult(), AddTextBoxOutput{ElementID: elementID}, nil
	}
}

// --- add_image ---

type AddImageInput struct {
	UserEmail       string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID  string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	SlideID         string   `json:"slide_id" jsonschema:"required" jsonschema_description:"The slide to add the image to"`
	ImageURL        string   `json:"image_url" jsonschema:"required" jsonschema_description:"Publicly accessible image URL (https)"`
	X               *float64 `json:"x,omitempty" jsonschema_description:"X position in inches (default 1, ignored when alignment is set)"`
	Y               *float64 `json:"y,omitempty" jsonschema_description:"Y position in inches (default 1, ignored when alignment is set)"`
	Width           *float64 `json:"width,omitempty" jsonschema_description:"Width in inches (default 4)"`
	Height          *float64 `json:"height,omitempty" jsonschema_description:"Height in inches (default 3)"`
	HorizontalAlign string   `json:"horizontal_align,omitempty" jsonschema:"enum=left,enum=center,enum=right" jsonschema_description:"Horizontal placement on the slide"`
	VerticalAlign   string   `json:"vertical_align,omitempty" jsonschema:"enum=top,enum=center,enum=bottom" jsonschema_description:"Vertical placement on the slide"`
}

type AddImageOutput struct {
	ElementID string `json:"element_id"`
}

func createAddImageHandler(factory *services.Factory) mcp.ToolHandlerFor[AddImageInput, AddImageOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddImageInput) (*mcp.CallToolResult, AddImageOutput, error) {
		if u, err := url.Parse(input.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, AddImageOutput{}, fmt.Errorf("image_url must be an http(s) URL")
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, AddImageOutput{}, middleware.HandleGoogleAPIError(err)
		}

		widthEMU := units.InchesToEMU(orDefault(input.Width, 4))
		heightEMU := units.InchesToEMU(orDefault(input.Height, 3))

		var posX, posY int64
		if input.HorizontalAlign != "" || input.VerticalAlign != "" {
			slideSize, err := currentSlideSize(ctx, srv, input.PresentationID)
			if err != nil {
				return nil, AddImageOutput{}, middleware.HandleGoogleAPIError(err)
			}
			posX, posY = geometry.AlignmentPosition(slideSize, widthEMU, heightEMU,
				input.HorizontalAlign, input.VerticalAlign, 0)
		} else {
			posX = units.InchesToEMU(orDefault(input.X, 1))
			posY = units.InchesToEMU(orDefault(input.Y, 1))
		}

		elementID := newObjectID("image")
		batch := &slidespb.BatchUpdatePresentationRequest{
			Requests: []*slidespb.Request{{
				CreateImage: &slidespb.CreateImageRequest{
					ObjectId:          elementID,
					Url:               input.ImageURL,
					ElementProperties: elementPropertiesEMU(input.SlideID, posX, posY, widthEMU, heightEMU),
				},
			}},
		}

		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, AddImageOutput{}, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Image Added")
		rb.KeyValue("Element ID", elementID)
		rb.KeyValue("Slide", input.SlideID)

		return rb.TextResult(), AddImageOutput{ElementID: elementID}, nil
	}
}

// currentSlideSize reads the presentation's page size for alignment math.
func currentSlideSize(ctx context.Context, srv *slidespb.Service, presentationID string) (geometry.SlideSize, error) {
	pres, err := srv.Presentations.Get(presentationID).Fields("pageSize").Context(ctx).Do()
	if err != nil {
		return geometry.SlideSize{}, err
	}
	return geometry.ResolveSlideSize(pres.PageSize), nil
}

// --- add_shape ---

type AddShapeInput struct {
	UserEmail      string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	SlideID        string   `json:"slide_id" jsonschema:"required" jsonschema_description:"The slide to add the shape to"`
	ShapeType      string   `json:"shape_type" jsonschema:"required" jsonschema_description:"Shape type from the Slides API ShapeType enum, e.g. RECTANGLE, ELLIPSE, TRIANGLE, STAR_5"`
	X              float64  `json:"x" jsonschema:"required" jsonschema_description:"X position in inches"`
	Y              float64  `json:"y" jsonschema:"required" jsonschema_description:"Y position in inches"`
	Width          float64  `json:"width" jsonschema:"required" jsonschema_description:"Width in inches"`
	Height         float64  `json:"height" jsonschema:"required" jsonschema_description:"Height in inches"`
	FillColor      *string  `json:"fill_color,omitempty" jsonschema_description:"Hex fill color; omit for no fill"`
	OutlineColor   *string  `json:"outline_color,omitempty" jsonschema_description:"Hex outline color (default #000000); set to empty string for no outline"`
	OutlineWeight  *float64 `json:"outline_weight,omitempty" jsonschema_description:"Outline weight in points (default 1)"`
}

type AddShapeOutput struct {
	ElementID string `json:"element_id"`
}

func createAddShapeHandler(factory *services.Factory) mcp.ToolHandlerFor[AddShapeInput, AddShapeOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AddShapeInput) (*mcp.CallToolResult, AddShapeOutput, error) {
		elementID := newObjectID("shape")

		requests := []*slidespb.Request{{
			CreateShape: &slidespb.CreateShapeRequest{
				ObjectId:          elementID,
				ShapeType:         input.ShapeType,
				ElementProperties: elementProperties(input.SlideID, input.X, input.Y, input.Width, input.Height),
			},
		}}

		props := &slidespb.ShapeProperties{}
		var fields []string

		if input.FillColor != nil {
			fill, err := color.SolidFill(*input.FillColor, 1)
			if err != nil {
				return nil, AddShapeOutput{}, err
			}
			props.ShapeBackgroundFill = &slidespb.ShapeBackgroundFill{SolidFill: fill}
			fields = append(fields, "shapeBackgroundFill")
		}

		outlineColor := "#000000"
		if input.OutlineColor != nil {
			outlineColor = *input.OutlineColor
		}
		if outlineColor != "" {
			fill, err := color.SolidFill(outlineColor, 1)
			if err != nil {
				return nil, AddShapeOutput{}, err
			}
			weight := 1.0
			if input.OutlineWeight != nil {
				weight = *input.OutlineWeight
			}
			props.Outline = &slidespb.Outline{
				OutlineFill: &slidespb.OutlineFill{SolidFill: fill},
				Weight:      &slidespb.Dimension{Magnitude: weight, Unit: "PT"},
			}
			fields = append(fields, "outline")
		}

		if len(fields) > 0 {
			requests = append(requests, &slidespb.Request{
				UpdateShapeProperties: &slidespb.UpdateShapePropertiesRequest{
					ObjectId:        elementID,
					ShapeProperties: props,
					Fields:          strings.Join(fields, ","),
				},
			})
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, AddShapeOutput{}, middleware.HandleGoogleAPIError(err)
		}

		batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, AddShapeOutput{}, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Shape Added")
		rb.KeyValue("Element ID", elementID)
		rb.KeyValue("Shape type", input.ShapeType)
		rb.KeyValue("Slide", input.SlideID)

		return rb.TextResult(), AddShapeOutput{ElementID: elementID}, nil
	}
}
