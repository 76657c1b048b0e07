// Package analysis implements the presentation analyzer: a deep dive over a
// deck that extracts its color palette, typography, placeholder patterns, and
// a categorized slide inventory for template-driven generation.
package analysis

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

// Register registers the analysis tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_presentation",
		Icons:       serviceIcons,
		Description: "Analyze a presentation's structure, colors, fonts, and placeholder patterns. Use this to understand a template before copying it, or to extract a style guide for consistent deck generation.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Analyze Presentation",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createAnalyzePresentationHandler(factory))
}
