// Package content implements semantic text update and styling tools. Text is
// targeted by placeholder type rather than object id, and every mutating
// invocation submits exactly one atomic batch.
package content

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

// Register registers all content tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_slide_content",
		Icons:       serviceIcons,
		Description: "Update slide text by placeholder type (TITLE, SUBTITLE, BODY). No element IDs needed. For multiple slides prefer update_presentation_content, which uses a single API call.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Update Slide Content",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createUpdateSlideContentHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_presentation_content",
		Icons:       serviceIcons,
		Description: "Update text across multiple slides in one call. Each slide spec maps placeholder types to new text; unmatched slides or placeholders are reported, not fatal.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Update Presentation Content",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createUpdatePresentationContentHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply_text_style",
		Icons:       serviceIcons,
		Description: "Apply styling to all elements of a placeholder type across slides. Only supplied properties change; omitted ones are left untouched.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Apply Text Style",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createApplyTextStyleHandler(factory))
}
