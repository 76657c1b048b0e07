// Package utility implements inspection tools: slide listings, element
// details in inches, and slide thumbnails.
package utility

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

// Register registers all utility tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_slides",
		Icons:       serviceIcons,
		Description: "List all slides with their IDs, titles, and element counts. The usual first step before updating content.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "List Slides",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createListSlidesHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_element_info",
		Icons:       serviceIcons,
		Description: "Get a page element's position, size, text, and type-specific details. Coordinates are reported in inches.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Get Element Info",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createGetElementInfoHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_thumbnail",
		Icons:       serviceIcons,
		Description: "Generate a thumbnail image of a slide and return its temporary content URL.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Export Thumbnail",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createExportThumbnailHandler(factory))
}
