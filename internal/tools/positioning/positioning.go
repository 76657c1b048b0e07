// Package positioning implements semantic element positioning tools. Callers
// work in inches and alignment keywords; the handlers compile those into
// absolute EMU transforms and submit one atomic batch per invocation.
package positioning

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

// Register registers all positioning tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "position_element",
		Icons:       serviceIcons,
		Description: "Position and size a slide element using inches and alignment keywords. Standard slide is 10 x 5.625 inches. Absolute coordinates, alignment, or both can be given; explicit coordinates override alignment per axis.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Position Element",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createPositionElementHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "align_elements",
		Icons:       serviceIcons,
		Description: "Align multiple elements to the first element, the last element, or the slide boundaries. Alignment keywords: left, center, right, top, middle, bottom.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Align Elements",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createAlignElementsHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "distribute_elements",
		Icons:       serviceIcons,
		Description: "Distribute elements evenly or with fixed spacing along the horizontal or vertical axis. Elements are laid out in the order their IDs are supplied.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Distribute Elements",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createDistributeElementsHandler(factory))
}
