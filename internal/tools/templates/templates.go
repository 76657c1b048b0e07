// Package templates implements the template-driven workflow: copy an existing
// deck, swap its {{placeholder}} text and images, and find or export decks in
// Drive.
package templates

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

// RegisterSlidesTools registers the placeholder substitution tools. They
// belong to the template workflow but run entirely on the Slides API, so they
// are gated with the slides service, not drive.
func RegisterSlidesTools(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "replace_placeholders",
		Icons:       serviceIcons,
		Description: "Replace placeholder text like {{client_name}} across an entire presentation. Matching is case-sensitive. Returns per-placeholder replacement counts.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Replace Placeholders",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createReplacePlaceholdersHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "replace_placeholder_with_image",
		Icons:       serviceIcons,
		Description: "Replace all shapes containing the given placeholder text with an image fetched from a public URL.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Replace Placeholder With Image",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createReplaceWithImageHandler(factory))
}

// Register registers the Drive-backed template tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "copy_template",
		Icons:       serviceIcons,
		Description: "Copy a presentation to use as a template. PowerPoint files are converted to Google Slides format when convert_to_slides is set.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Copy Template",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createCopyTemplateHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_presentations",
		Icons:       serviceIcons,
		Description: "Search Drive for presentations by name, optionally within a folder. Includes PowerPoint files so they can be converted with copy_template.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Search Presentations",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createSearchPresentationsHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_presentation",
		Icons:       serviceIcons,
		Description: "Export a presentation to PDF or PowerPoint format and return a download URL.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Export Presentation",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createExportPresentationHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_pptx_text",
		Icons:       serviceIcons,
		Description: "Extract the raw text from a PowerPoint file stored in Drive without converting it. Useful for inspecting a .pptx template before copy_template.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Get PowerPoint Text",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createGetPptxTextHandler(factory))
}
