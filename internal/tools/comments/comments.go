// Package comments implements presentation comment tools. The Slides API has
// no comment surface of its own; comments on a presentation are managed
// through the Drive API like any other Drive file.
package comments

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/api/drive/v3"

	"github.com/evert/google-slides-mcp-go/internal/middleware"
	"github.com/evert/google-slides-mcp-go/internal/pkg/ptr"
	"github.com/evert/google-slides-mcp-go/internal/pkg/response"
	"github.com/evert/google-slides-mcp-go/internal/services"
)

// CommentSummary is a compact representation of a Drive comment.
type CommentSummary struct {
	ID        string         `json:"id"`
	Author    string         `json:"author"`
	Content   string         `json:"content"`
	CreatedAt string         `json:"created_at"`
	Resolved  bool           `json:"resolved"`
	Replies   []ReplySummary `json:"replies,omitempty"`
}

// ReplySummary is a compact representation of a comment reply.
type ReplySummary struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// --- Input/Output types ---

type ReadCommentsInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
}

type ReadCommentsOutput struct {
	Comments []CommentSummary `json:"comments"`
}

type CreateCommentInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	Content        string `json:"content" jsonschema:"required" jsonschema_description:"Comment text content"`
}

type ReplyToCommentInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	CommentID      string `json:"comment_id" jsonschema:"required" jsonschema_description:"The comment ID to reply to"`
	Content        string `json:"content" jsonschema:"required" jsonschema_description:"Reply text content"`
}

type ResolveCommentInput struct {
	UserEmail      string `json:"user_google_email" jsonschema:"required" jsonschema_description:"The user's Google email address"`
	PresentationID string `json:"presentation_id" jsonschema:"required" jsonschema_description:"The Google Slides presentation ID"`
	CommentID      string `json:"comment_id" jsonschema:"required" jsonschema_description:"The comment ID to resolve"`
}

var serviceIcons = []mcp.Icon{{
	Source:   "https://www.gstatic.com/images/branding/product/1x/slides_2020q4_48dp.png",
	MIMEType: "image/png",
	Sizes:    []string{"48x48"},
}}

// Register registers presentation comment tools with the MCP server.
func Register(server *mcp.Server, factory *services.Factory) {
	icons := serviceIcons
	mcp.AddTool(server, &mcp.Tool{
		Name:        "read_presentation_comments",
		Icons:       icons,
		Description: "Read all comments from a Google Slides presentation including replies and resolution status.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Read Presentation Comments",
			ReadOnlyHint:  true,
			OpenWorldHint: ptr.Bool(true),
		},
	}, createReadCommentsHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_presentation_comment",
		Icons:       icons,
		Description: "Add a new comment to a Google Slides presentation.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Create Presentation Comment",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createCreateCommentHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "reply_to_presentation_comment",
		Icons:       icons,
		Description: "Reply to an existing comment on a Google Slides presentation.",
		Annotations: &mcp.ToolAnnotations{
			Title:         "Reply to Presentation Comment",
			OpenWorldHint: ptr.Bool(true),
		},
	}, createReplyToCommentHandler(factory))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_presentation_comment",
		Icons:       icons,
		Description: "Mark a comment on a Google Slides presentation as resolved.",
		Annotations: &mcp.ToolAnnotations{
			Title:          "Resolve Presentation Comment",
			IdempotentHint: true,
			OpenWorldHint:  ptr.Bool(true),
		},
	}, createResolveCommentHandler(factory))
}

// --- Handler factories ---

func createReadCommentsHandler(factory *services.Factory) mcp.ToolHandlerFor[ReadCommentsInput, ReadCommentsOutput] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReadCommentsInput) (*mcp.CallToolResult, ReadCommentsOutput, error) {
		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, ReadCommentsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		result, err := srv.Comments.List(input.PresentationID).
			Fields("comments(id, content, author(displayName), createdTime, resolved, replies(id, content, author(displayName), createdTime))").
			Context(ctx).
			Do()
		if err != nil {
			return nil, ReadCommentsOutput{}, middleware.HandleGoogleAPIError(err)
		}

		comments := make([]CommentSummary, 0, len(result.Comments))
		rb := response.New()
		rb.Header("Comments")
		rb.KeyValue("Count", len(result.Comments))
		rb.Blank()

		for _, c := range result.Comments {
			cs := commentToSummary(c)
			comments = append(comments, cs)

			status := "open"
			if cs.Resolved {
				status = "resolved"
			}
			rb.Item("[%s] %s — %s", status, cs.Author, cs.Content)
			rb.Line("    ID: %s | Created: %s", cs.ID, cs.CreatedAt)
			for _, r := range cs.Replies {
				rb.Line("      ↳ %s — %s", r.Author, r.Content)
			}
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, ReadCommentsOutput{Comments: comments}, nil
	}
}

func createCreateCommentHandler(factory *services.Factory) mcp.ToolHandlerFor[CreateCommentInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CreateCommentInput) (*mcp.CallToolResult, any, error) {
		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, nil, middleware.HandleGoogleAPIError(err)
		}

		comment := &drive.Comment{
			Content: input.Content,
		}

		created, err := srv.Comments.Create(input.PresentationID, comment).
			Fields("id, content, author(displayName), createdTime").
			Context(ctx).
			Do()
		if err != nil {
			return nil, nil, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Comment Created")
		rb.KeyValue("Content", created.Content)
		rb.KeyValue("ID", created.Id)
		rb.KeyValue("Author", created.Author.DisplayName)

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, nil, nil
	}
}

func createReplyToCommentHandler(factory *services.Factory) mcp.ToolHandlerFor[ReplyToCommentInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ReplyToCommentInput) (*mcp.CallToolResult, any, error) {
		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, nil, middleware.HandleGoogleAPIError(err)
		}

		reply := &drive.Reply{
			Content: input.Content,
		}

		created, err := srv.Replies.Create(input.PresentationID, input.CommentID, reply).
			Fields("id, content, author(displayName), createdTime").
			Context(ctx).
			Do()
		if err != nil {
			return nil, nil, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Reply Created")
		rb.KeyValue("Content", created.Content)
		rb.KeyValue("Reply ID", created.Id)
		rb.KeyValue("Comment ID", input.CommentID)

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, nil, nil
	}
}

func createResolveCommentHandler(factory *services.Factory) mcp.ToolHandlerFor[ResolveCommentInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ResolveCommentInput) (*mcp.CallToolResult, any, error) {
		srv, err := factory.Drive(ctx, input.UserEmail)
		if err != nil {
			return nil, nil, middleware.HandleGoogleAPIError(err)
		}

		comment := &drive.Comment{
			Resolved: true,
		}

		_, err = srv.Comments.Update(input.PresentationID, input.CommentID, comment).
			Fields("id, resolved").
			Context(ctx).
			Do()
		if err != nil {
			return nil, nil, middleware.HandleGoogleAPIError(err)
		}

		rb := response.New()
		rb.Header("Comment Resolved")
		rb.KeyValue("Comment ID", input.CommentID)
		rb.KeyValue("Presentation ID", input.PresentationID)

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: rb.Build()}},
		}, nil, nil
	}
}

// --- Helper functions ---

func commentToSummary(c *drive.Comment) CommentSummary {
	replies := make([]ReplySummary, 0, len(c.Replies))
	for _, r := range c.Replies {
		replies = append(replies, ReplySummary{
			ID:        r.Id,
			Author:    r.Author.DisplayName,
			Content:   r.Content,
			CreatedAt: r.CreatedTime,
		})
	}

	author := ""
	if c.Author != nil {
		author = c.Author.DisplayName
	}

	return CommentSummary{
		ID:        c.Id,
		Author:    author,
		Content:   c.Content,
		CreatedAt: c.CreatedTime,
		Resolved:  c.Resolved,
		Replies:   replies,
	}
}
