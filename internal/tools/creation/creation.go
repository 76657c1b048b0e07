// Package creation implements tools that add slides and page elements.
// Callers position elements in inches; all conversion to EMU happens here.
package creation

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/google-slides-mcp-go/internal/pkg/ptr"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

var serviceIcons = []mcp.Icon{{
	Source:   "https://www.gstatic.com/images/branding/product/1x/slides_2020q4_48dp.png",
	MIMEType: "image/png",
	Sizes:    []string{"48x48"},
}}

// Register registers all creation tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_slide",
		Icons:       serviceIcons,
		Description: "Create a new slide with a predefined layout. Returns the new slide's ID and a map of its placeholder types to element IDs for follow-up content updates.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Create Slide",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createCreateSlideHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_text_box",
		Icons:       serviceIcons,
		Description: "Add a styled text box to a slide. Position and size are in inches from the top-left corner.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Add Text Box",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createAddTextBoxHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_image",
		Icons:       serviceIcons,
		Description: "Add an image from a public URL. Position with inches, or use horizontal/vertical alignment keywords to skip coordinate math.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Add Image",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createAddImageHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_shape",
		Icons:       serviceIcons,
		Description: "Add a shape (RECTANGLE, ELLIPSE, TRIANGLE, STAR_5, ...) with optional fill and outline colors.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Add Shape",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createAddShapeHandler(factory))
}
