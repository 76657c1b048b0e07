package positioning

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/geometry"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/pkg/units"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

// ElementPosition reports an element's position (and optionally size) in inches.
type ElementPosition struct {
	ElementID    string  `json:"element_id"`
	XInches      float64 `json:"x_inches"`
	YInches      float64 `json:"y_inches"`
	WidthInches  float64 `json:"width_inches,omitempty"`
	HeightInches float64 `json:"height_inches,omitempty"`
}

// --- position_element ---

type PositionElementInput struct {
	UserEmail       string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID  string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The presentation containing the element"`
	ElementID       string   `json:"element_id" jsonschema:"required" jsonschema_description:"The page element to position"`
	X               *float64 `json:"x,omitempty" jsonschema_description:"X position in inches from the left edge"`
	Y               *float64 `json:"y,omitempty" jsonschema_description:"Y position in inches from the top edge"`
	Width           *float64 `json:"width,omitempty" jsonschema_description:"New width in inches (omit to preserve current)"`
	Height          *float64 `json:"height,omitempty" jsonschema_description:"New height in inches (omit to preserve current)"`
	HorizontalAlign string   `json:"horizontal_align,omitempty" jsonschema:"enum=left,enum=center,enum=right" jsonschema_description:"Align relative to slide width"`
	VerticalAlign   string   `json:"vertical_align,omitempty" jsonschema:"enum=top,enum=center,enum=bottom" jsonschema_description:"Align relative to slide height"`
}

func createPositionElementHandler(factory *services.Factory) mcp.ToolHandlerFor[PositionElementInput, ElementPosition] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input PositionElementInput) (*mcp.CallToolResult, ElementPosition, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ElementPosition{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, ElementPosition{}, middleware.HandleGoogleAPIError(err)
		}

		el, err := findElement(pres, input.ElementID)
		if err != nil {
			return nil, ElementPosition{}, err
		}
		current, err := geometry.ExtractBounds(el)
		if err != nil {
			return nil, ElementPosition{}, fmt.Errorf("element %s: %w", input.ElementID, err)
		}

		newWidth := current.Width
		if input.Width != nil {
			newWidth = units.InchesToEMU(*input.Width)
		}
		newHeight := current.Height
		if input.Height != nil {
			newHeight = units.InchesToEMU(*input.Height)
		}

		slide := geometry.ResolveSlideSize(pres.PageSize)

		// Alignment supplies defaults; explicit coordinates override per axis.
		var newX, newY int64
		if input.HorizontalAlign != "" || input.VerticalAlign != "" {
			newX, newY = geometry.AlignmentPosition(slide, newWidth, newHeight, input.HorizontalAlign, input.VerticalAlign, 0)
			if input.X != nil {
				newX = units.InchesToEMU(*input.X)
			}
			if input.Y != nil {
				newY = units.InchesToEMU(*input.Y)
			}
		} else {
			newX, newY = current.X, current.Y
			if input.X != nil {
				newX = units.InchesToEMU(*input.X)
			}
			if input.Y != nil {
				newY = units.InchesToEMU(*input.Y)
			}
		}

		// With an ABSOLUTE transform the rendered size is intrinsic*scale, so
		// a size change is expressed as newSize/currentSize scale factors.
		scaleX, scaleY := 1.0, 1.0
		if input.Width != nil || input.Height != nil {
			if current.Width != 0 {
				scaleX = float64(newWidth) / float64(current.Width)
			}
			if current.Height != 0 {
				scaleY = float64(newHeight) / float64(current.Height)
			}
		}

		transform, err := geometry.AbsoluteTransform(newX, newY, scaleX, scaleY, 0)
		if err != nil {
			return nil, ElementPosition{}, err
		}

		batch := &slidespb.BatchUpdatePresentationRequest{
			Requests: []*slidespb.Request{transformRequest(input.ElementID, transform)},
		}
		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, ElementPosition{}, middleware.HandleGoogleAPIError(err)
		}

		output := ElementPosition{
			ElementID:    input.ElementID,
			XInches:      units.EMUToInches(newX),
			YInches:      units.EMUToInches(newY),
			WidthInches:  units.EMUToInches(newWidth),
			HeightInches: units.EMUToInches(newHeight),
		}

		rb := response.New()
		rb.Header("Element Positioned")
		rb.KeyValue("Element", input.ElementID)
		rb.KeyValue("Position", fmt.Sprintf("%.2f\" x %.2f\"", output.XInches, output.YInches))
		rb.KeyValue("Size", fmt.Sprintf("%.2f\" x %.2f\"", output.WidthInches, output.HeightInches))

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, output, nil
	}
}

// --- align_elements ---

type AlignElementsInput struct {
	UserEmail      string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	ElementIDs     []string `json:"element_ids" jsonschema:"required" jsonschema_description:"Object IDs of the elements to align"`
	Alignment      string   `json:"alignment" jsonschema:"required,enum=left,enum=center,enum=right,enum=top,enum=middle,enum=bottom" jsonschema_description:"Edge or center to align: left/center/right (horizontal) or top/middle/bottom (vertical)"`
	Reference      string   `json:"reference,omitempty" jsonschema:"enum=first,enum=last,enum=slide" jsonschema_description:"What to align to: first element (default), last element, or slide boundaries"`
}

type AlignElementsOutput struct {
	Elements []ElementPosition `json:"elements"`
}

func createAlignElementsHandler(factory *services.Factory) mcp.ToolHandlerFor[AlignElementsInput, AlignElementsOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input AlignElementsInput) (*mcp.CallToolResult, AlignElementsOutput, error) {
		if len(input.ElementIDs) == 0 {
			return nil, AlignElementsOutput{}, fmt.Errorf("element_ids must not be empty")
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, AlignElementsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, AlignElementsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		elements, err := resolveElements(pres, input.ElementIDs)
		if err != nil {
			return nil, AlignElementsOutput{}, err
		}

		slide := geometry.ResolveSlideSize(pres.PageSize)

		var ref geometry.Bounds
		switch input.Reference {
		case "", "first":
			ref = elements[0].Bounds
		case "last":
			ref = elements[len(elements)-1].Bounds
		case "slide":
			ref = geometry.Bounds{X: 0, Y: 0, Width: slide.Width, Height: slide.Height}
		default:
			return nil, AlignElementsOutput{}, fmt.Errorf("invalid reference %q: use first, last, or slide", input.Reference)
		}

		requests := make([]*slidespb.Request, 0, len(elements))
		positions := make([]ElementPosition, 0, len(elements))
		for _, elem := range elements {
			newX, newY, err := alignTarget(elem.Bounds, ref, input.Alignment)
			if err != nil {
				return nil, AlignElementsOutput{}, err
			}

			transform, err := geometry.AbsoluteTransform(newX, newY, 1, 1, 0)
			if err != nil {
				return nil, AlignElementsOutput{}, err
			}
			requests = append(requests, transformRequest(elem.ID, transform))
			positions = append(positions, ElementPosition{
				ElementID: elem.ID,
				XInches:   units.EMUToInches(newX),
				YInches:   units.EMUToInches(newY),
			})
		}

		batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, AlignElementsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Elements Aligned")
		rb.KeyValue("Alignment", input.Alignment)
		rb.KeyValue("Elements", len(positions))
		rb.Blank()
		for _, p := range positions {
			rb.Item("%s -> (%.2f\", %.2f\")", p.ElementID, p.XInches, p.YInches)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, AlignElementsOutput{Elements: positions}, nil
	}
}

// --- distribute_elements ---

type DistributeElementsInput struct {
	UserEmail      string   `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string   `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	ElementIDs     []string `json:"element_ids" jsonschema:"required" jsonschema_description:"Object IDs of the elements to distribute; layout follows this order"`
	Direction      string   `json:"direction" jsonschema:"required,enum=horizontal,enum=vertical" jsonschema_description:"Distribution direction"`
	SpacingInches  *float64 `json:"spacing_inches,omitempty" jsonschema_description:"Fixed spacing in inches between elements; omit for even distribution across the slide"`
}

type DistributeElementsOutput struct {
	Elements []ElementPosition `json:"elements"`
}

func createDistributeElementsHandler(factory *services.Factory) mcp.ToolHandlerFor[DistributeElementsInput, DistributeElementsOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input DistributeElementsInput) (*mcp.CallToolResult, DistributeElementsOutput, error) {
		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, DistributeElementsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		pres, err := srv.Presentations.Get(input.PresentationID).Context(ctx).Do()
		if err != nil {
			return nil, DistributeElementsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		// Missing ids are skipped here rather than failing the call, but
		// distribution needs at least two resolved elements to mean anything.
		elements := make([]placedElement, 0, len(input.ElementIDs))
		for _, id := range input.ElementIDs {
			el, err := findElement(pres, id)
			if err != nil {
				continue
			}
			bounds, err := geometry.ExtractBounds(el)
			if err != nil {
				return nil, DistributeElementsOutput{}, fmt.Errorf("element %s: %w", id, err)
			}
			elements = append(elements, placedElement{ID: id, Bounds: bounds})
		}
		if len(elements) < 2 {
			return nil, DistributeElementsOutput{}, fmt.Errorf("need at least 2 elements to distribute, resolved %d", len(elements))
		}

		slide := geometry.ResolveSlideSize(pres.PageSize)

		horizontal := input.Direction == "horizontal"
		if !horizontal && input.Direction != "vertical" {
			return nil, DistributeElementsOutput{}, fmt.Errorf("invalid direction %q: use horizontal or vertical", input.Direction)
		}

		var slideExtent, totalExtent int64
		for _, e := range elements {
			if horizontal {
				totalExtent += e.Bounds.Width
			} else {
				totalExtent += e.Bounds.Height
			}
		}
		if horizontal {
			slideExtent = slide.Width
		} else {
			slideExtent = slide.Height
		}

		var gap int64
		if input.SpacingInches != nil {
			gap = units.InchesToEMU(*input.SpacingInches)
		} else {
			gap = evenGap(slideExtent, totalExtent, len(elements))
		}

		placed := layoutSequential(elements, horizontal, gap)

		requests := make([]*slidespb.Request, 0, len(elements))
		positions := make([]ElementPosition, 0, len(elements))
		for i, elem := range elements {
			transform, err := geometry.AbsoluteTransform(placed[i].X, placed[i].Y, 1, 1, 0)
			if err != nil {
				return nil, DistributeElementsOutput{}, err
			}
			requests = append(requests, transformRequest(elem.ID, transform))
			positions = append(positions, ElementPosition{
				ElementID: elem.ID,
				XInches:   units.EMUToInches(placed[i].X),
				YInches:   units.EMUToInches(placed[i].Y),
			})
		}

		batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
		if _, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do(); err != nil {
			return nil, DistributeElementsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Elements Distributed")
		rb.KeyValue("Direction", input.Direction)
		rb.KeyValue("Elements", len(positions))
		rb.KeyValue("Gap", fmt.Sprintf("%.2f\"", units.EMUToInches(gap)))
		rb.Blank()
		for _, p := range positions {
			rb.Item("%s -> (%.2f\", %.2f\")", p.ElementID, p.XInches, p.YInches)
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, DistributeElementsOutput{Elements: positions}, nil
	}
}
