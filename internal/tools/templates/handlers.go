package templates

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/drive/v3"
	slidespb "google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/format"
	"github.com/evert/google-slides-mcp-go/internal/pkg/office"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/pkg/validate"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

// --- copy_template ---

type CopyTemplateInput struct {
	UserEmail       string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	TemplateID      string `json:"template_id" jsonschema:"required" jsonschema_description:"Drive file ID of the template presentation (Google Slides or .pptx)"`
	NewName         string `json:"new_name" jsonschema:"required" jsonschema_description:"Name for the copied presentation"`
	FolderID        string `json:"folder_id,omitempty" jsonschema_description:"Destination folder ID. Omit to copy into My Drive root."`
	ConvertToSlides bool   `json:"convert_to_slides,omitempty" jsonschema_description:"Convert a PowerPoint template to Google Slides format during the copy"`
}

type CopyTemplateOutput struct {
	PresentationID string `json:"presentation_id"`
	Name           string `json:"name"`
	MimeType       string `json:"mime_type"`
	URL            string `json:"url"`
}

func createCopyTemplateHandler(factory *services.Factory) mcp.ToolHandlerFor[CopyTemplateInput, CopyTemplateOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CopyTemplateInput) (*mcp.CallToolResult, CopyTemplateOutput, error) {
		if err := validate.DriveID(input.TemplateID); err != nil {
			return nil, CopyTemplateOutput{}, err
		}
		if input.FolderID != "" {
			if err := validate.DriveID(input.FolderID); err != nil {
				return nil, CopyTemplateOutput{}, err
			}
		}

		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, CopyTemplateOutput{}, middleware.HandleGoogleAPIError(err)
		}

		body := &drive.File{Name: input.NewName}
		if input.FolderID != "" {
			body.Parents = []string{input.FolderID}
		}
		if input.ConvertToSlides {
			body.MimeType = mimeSlides
		}

		created, err := srv.Files.Copy(input.TemplateID, body).
			Fields("id, name, mimeType").
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		if err != nil {
			return nil, CopyTemplateOutput{}, middleware.HandleGoogleAPIError(err)
		}

		output := CopyTemplateOutput{
			PresentationID: created.Id,
			Name:           created.Name,
			MimeType:       created.MimeType,
			URL:            presentationURL(created.Id),
		}

		rb := response.New()
		rb.Header("Template Copied")
		rb.KeyValue("Name", created.Name)
		rb.KeyValue("Presentation ID", created.Id)
		rb.KeyValue("URL", output.URL)
		if input.ConvertToSlides {
			rb.KeyValue("Converted", "PowerPoint -> Google Slides")
		}

		return rb.TextResult(), output, nil
	}
}

// --- replace_placeholders ---

type ReplacePlaceholdersInput struct {
	UserEmail      string            `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string            `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	Mappings       map[string]string `json:"mappings" jsonschema:"required" jsonschema_description:"Map of placeholder text to replacement, e.g. {\"{{client_name}}\": \"Acme Corp\"}. Matching is case-sensitive."`
}

type ReplacePlaceholdersOutput struct {
	Replacements      map[string]int64 `json:"replacements"`
	TotalReplacements int64            `json:"total_replacements"`
}

func createReplacePlaceholdersHandler(factory *services.Factory) mcp.ToolHandlerFor[ReplacePlaceholdersInput, ReplacePlaceholdersOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReplacePlaceholdersInput) (*mcp.CallToolResult, ReplacePlaceholdersOutput, error) {
		if len(input.Mappings) == 0 {
			return nil, ReplacePlaceholdersOutput{}, fmt.Errorf("mappings must contain at least one placeholder")
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ReplacePlaceholdersOutput{}, middleware.HandleGoogleAPIError(err)
		}

		// One replaceAllText request per mapping so each reply carries that
		// placeholder's occurrence count.
		placeholders := make([]string, 0, len(input.Mappings))
		requests := make([]*slidespb.Request, 0, len(input.Mappings))
		for placeholder, replacement := range input.Mappings {
			placeholders = append(placeholders, placeholder)
			requests = append(requests, &slidespb.Request{
				ReplaceAllText: &slidespb.ReplaceAllTextRequest{
					ContainsText: &slidespb.SubstringMatchCriteria{
						Text:      placeholder,
						MatchCase: true,
					},
					ReplaceText: replacement,
				},
			})
		}

		batch := &slidespb.BatchUpdatePresentationRequest{Requests: requests}
		result, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do()
		if err != nil {
			return nil, ReplacePlaceholdersOutput{}, middleware.HandleGoogleAPIError(err)
		}

		// Counts come from the API replies, never from local guessing.
		counts := make(map[string]int64, len(placeholders))
		var total int64
		for i, reply := range result.Replies {
			if i >= len(placeholders) || reply.ReplaceAllText == nil {
				continue
			}
			counts[placeholders[i]] = reply.ReplaceAllText.OccurrencesChanged
			total += reply.ReplaceAllText.OccurrencesChanged
		}

		rb := response.New()
		rb.Header("Placeholders Replaced")
		rb.KeyValue("Total replacements", total)
		rb.Blank()
		for _, p := range placeholders {
			rb.Item("%s: %d occurrence(s)", p, counts[p])
		}

		return rb.TextResult(), ReplacePlaceholdersOutput{Replacements: counts, TotalReplacements: total}, nil
	}
}

// --- replace_placeholder_with_image ---

type ReplaceWithImageInput struct {
	UserEmail       string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID  string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	PlaceholderText string `json:"placeholder_text" jsonschema:"required" jsonschema_description:"Shapes containing this text are replaced, e.g. {{logo}}"`
	ImageURL        string `json:"image_url" jsonschema:"required" jsonschema_description:"Publicly accessible image URL (https)"`
	ReplaceMethod   string `json:"replace_method,omitempty" jsonschema:"enum=CENTER_INSIDE,enum=CENTER_CROP" jsonschema_description:"How the image fills the shape bounds (default CENTER_INSIDE)"`
}

type ReplaceWithImageOutput struct {
	ShapesReplaced int64 `json:"shapes_replaced"`
}

func createReplaceWithImageHandler(factory *services.Factory) mcp.ToolHandlerFor[ReplaceWithImageInput, ReplaceWithImageOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReplaceWithImageInput) (*mcp.CallToolResult, ReplaceWithImageOutput, error) {
		if u, err := url.Parse(input.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return nil, ReplaceWithImageOutput{}, fmt.Errorf("image_url must be an http(s) URL")
		}
		method := input.ReplaceMethod
		if method == "" {
			method = "CENTER_INSIDE"
		}

		srv, err := factory.Slides(ctx, input.UserEmail)
		if err != nil {
			return nil, ReplaceWithImageOutput{}, middleware.HandleGoogleAPIError(err)
		}

		batch := &slidespb.BatchUpdatePresentationRequest{
			Requests: []*slidespb.Request{{
				ReplaceAllShapesWithImage: &slidespb.ReplaceAllShapesWithImageRequest{
					ContainsText: &slidespb.SubstringMatchCriteria{
						Text:      input.PlaceholderText,
						MatchCase: true,
					},
					ImageUrl:           input.ImageURL,
					ImageReplaceMethod: method,
				},
			}},
		}

		result, err := srv.Presentations.BatchUpdate(input.PresentationID, batch).Context(ctx).Do()
		if err != nil {
			return nil, ReplaceWithImageOutput{}, middleware.HandleGoogleAPIError(err)
		}

		var replaced int64
		if len(result.Replies) > 0 && result.Replies[0].ReplaceAllShapesWithImage != nil {
			replaced = result.Replies[0].ReplaceAllShapesWithImage.OccurrencesChanged
		}

		rb := response.New()
		rb.Header("Placeholder Replaced With Image")
		rb.KeyValue("Placeholder", input.PlaceholderText)
		rb.KeyValue("Shapes replaced", replaced)
		rb.KeyValue("Method", method)

		return rb.TextResult(), ReplaceWithImageOutput{ShapesReplaced: replaced}, nil
	}
}

// --- search_presentations ---

type SearchPresentationsInput struct {
	UserEmail   string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	Name        string `json:"name,omitempty" jsonschema_description:"Match presentations whose name contains this text"`
	FolderID    string `json:"folder_id,omitempty" jsonschema_description:"Restrict the search to a folder"`
	IncludePptx bool   `json:"include_pptx,omitempty" jsonschema_description:"Also match PowerPoint (.pptx) files (default false)"`
	PageSize    int64  `json:"page_size,omitempty" jsonschema_description:"Maximum number of results (1-100, default 10)"`
	PageToken   string `json:"page_token,omitempty" jsonschema_description:"Token from a previous page of results"`
}

type SearchPresentationsOutput struct {
	Presentations []PresentationSummary `json:"presentations"`
	NextPageToken string                `json:"next_page_token,omitempty"`
	ResultCount   int                   `json:"result_count"`
}

func createSearchPresentationsHandler(factory *services.Factory) mcp.ToolHandlerFor[SearchPresentationsInput, SearchPresentationsOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SearchPresentationsInput) (*mcp.CallToolResult, SearchPresentationsOutput, error) {
		if input.FolderID != "" {
			if err := validate.DriveID(input.FolderID); err != nil {
				return nil, SearchPresentationsOutput{}, err
			}
		}

		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, SearchPresentationsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		query := buildSearchQuery(input.Name, input.FolderID, input.IncludePptx)
		call := srv.Files.List().
			Q(query).
			PageSize(clampPageSize(input.PageSize)).
			Fields(searchFields).
			SupportsAllDrives(true).
			IncludeItemsFromAllDrives(true).
			Context(ctx)
		if input.PageToken != "" {
			call = call.PageToken(input.PageToken)
		}

		result, err := call.Do()
		if err != nil {
			return nil, SearchPresentationsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		found := make([]PresentationSummary, 0, len(result.Files))
		for _, f := range result.Files {
			found = append(found, fileToPresentationSummary(f))
		}

		rb := response.New()
		rb.Header("Presentation Search Results")
		rb.KeyValue("Results", len(found))
		if result.NextPageToken != "" {
			rb.KeyValue("Next page token", result.NextPageToken)
		}
		rb.Blank()
		for _, p := range found {
			rb.Item("%s", p.Name)
			if p.MimeType == mimePptx {
				rb.Line("    Format: PowerPoint (convert with copy_template)")
			}
			if p.Owner != "" {
				rb.Line("    Owner: %s | Modified: %s", p.Owner, p.ModifiedTime)
			} else {
				rb.Line("    Modified: %s", p.ModifiedTime)
			}
			rb.Line("    ID: %s", p.ID)
			rb.Line("    URL: %s", p.URL)
		}

		output := SearchPresentationsOutput{
			Presentations: found,
			NextPageToken: result.NextPageToken,
			ResultCount:   len(found),
		}

		return rb.TextResult(), output, nil
	}
}

// --- export_presentation ---

type ExportPresentationInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	Format         string `json:"format,omitempty" jsonschema:"enum=pdf,enum=pptx" jsonschema_description:"Export format (default pdf)"`
}

type ExportPresentationOutput struct {
	DownloadURL string `json:"download_url"`
	FileName    string `json:"file_name"`
	Format      string `json:"format"`
	SizeBytes   int64  `json:"size_bytes"`
}

func createExportPresentationHandler(factory *services.Factory) mcp.ToolHandlerFor[ExportPresentationInput, ExportPresentationOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExportPresentationInput) (*mcp.CallToolResult, ExportPresentationOutput, error) {
		if err := validate.DriveID(input.PresentationID); err != nil {
			return nil, ExportPresentationOutput{}, err
		}
		exportMime := exportMimeFor(input.Format)
		if exportMime == "" {
			return nil, ExportPresentationOutput{}, fmt.Errorf("unsupported export format %q — use pdf or pptx", input.Format)
		}

		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, ExportPresentationOutput{}, middleware.HandleGoogleAPIError(err)
		}

		file, err := srv.Files.Get(input.PresentationID).
			Fields("id, name, mimeType").
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		if err != nil {
			return nil, ExportPresentationOutput{}, middleware.HandleGoogleAPIError(err)
		}
		if file.MimeType != mimeSlides {
			return nil, ExportPresentationOutput{}, fmt.Errorf("file %q is %s, not a Google Slides presentation", file.Name, file.MimeType)
		}

		// Run the export to confirm it succeeds and learn the output size; the
		// bytes themselves stay out of the response.
		resp, err := srv.Files.Export(input.PresentationID, exportMime).Context(ctx).Download()
		if err != nil {
			return nil, ExportPresentationOutput{}, middleware.HandleGoogleAPIError(err)
		}
		defer resp.Body.Close()
		size, err := io.Copy(io.Discard, io.LimitReader(resp.Body, office.MaxFileSize))
		if err != nil {
			return nil, ExportPresentationOutput{}, fmt.Errorf("reading exported content: %w", err)
		}

		formatName := strings.ToLower(input.Format)
		if formatName == "" {
			formatName = "pdf"
		}
		output := ExportPresentationOutput{
			DownloadURL: fmt.Sprintf("https://www.googleapis.com/drive/v3/files/%s/export?mimeType=%s", input.PresentationID, url.QueryEscape(exportMime)),
			FileName:    fmt.Sprintf("%s.%s", file.Name, formatName),
			Format:      formatName,
			SizeBytes:   size,
		}

		rb := response.New()
		rb.Header("Presentation Exported")
		rb.KeyValue("File", output.FileName)
		rb.KeyValue("Size", format.ByteSize(size))
		rb.KeyValue("Download URL", output.DownloadURL)

		return rb.TextResult(), output, nil
	}
}

// --- get_pptx_text ---

type GetPptxTextInput struct {
	UserEmail string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	FileID    string `json:"file_id" jsonschema:"required" jsonschema_description:"Drive file ID of a PowerPoint (.pptx) file"`
}

type GetPptxTextOutput struct {
	Text     string `json:"text"`
	FileName string `json:"file_name"`
}

func createGetPptxTextHandler(factory *services.Factory) mcp.ToolHandlerFor[GetPptxTextInput, GetPptxTextOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GetPptxTextInput) (*mcp.CallToolResult, GetPptxTextOutput, error) {
		if err := validate.DriveID(input.FileID); err != nil {
			return nil, GetPptxTextOutput{}, err
		}

		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, GetPptxTextOutput{}, middleware.HandleGoogleAPIError(err)
		}

		file, err := srv.Files.Get(input.FileID).
			Fields("id, name, mimeType").
			SupportsAllDrives(true).
			Context(ctx).
			Do()
		if err != nil {
			return nil, GetPptxTextOutput{}, middleware.HandleGoogleAPIError(err)
		}
		if file.MimeType != mimePptx {
			return nil, GetPptxTextOutput{}, fmt.Errorf("file %q is %s, not a PowerPoint file — use get_presentation for Google Slides", file.Name, file.MimeType)
		}

		resp, err := srv.Files.Get(input.FileID).
			SupportsAllDrives(true).
			Context(ctx).
			Download()
		if err != nil {
			return nil, GetPptxTextOutput{}, middleware.HandleGoogleAPIError(err)
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(io.LimitReader(resp.Body, office.MaxFileSize))
		if err != nil {
			return nil, GetPptxTextOutput{}, fmt.Errorf("downloading file: %w", err)
		}

		text, err := office.ExtractText(data, file.MimeType)
		if err != nil {
			return nil, GetPptxTextOutput{}, fmt.Errorf("extracting text: %w", err)
		}

		rb := response.New()
		rb.Header("PowerPoint Text")
		rb.KeyValue("File", file.Name)
		rb.Blank()
		rb.Raw(text)

		return rb.TextResult(), GetPptxTextOutput{Text: text, FileName: file.Name}, nil
	}
}
