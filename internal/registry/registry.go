package registry

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/evert/google-slides-mcp-go/internal/auth"
	"github.com/evert/google-slides-mcp-go/internal/config"
	"github.com/evert/google-slides-mcp-go/internal/services"
	"github.com/evert/google-slides-mcp-go/internal/tools/analysis"
	authtools "github.com/evert/google-slides-mcp-go/internal/tools/auth"
	"github.com/evert/google-slides-mcp-go/internal/tools/comments"
	"github.com/evert/google-slides-mcp-go/internal/tools/content"
	"github.com/evert/google-slides-mcp-go/internal/tools/creation"
	"github.com/evert/google-slides-mcp-go/internal/tools/positioning"
	"github.com/evert/google-slides-mcp-go/internal/tools/slides"
	"github.com/evert/google-slides-mcp-go/internal/tools/templates"
	"github.com/evert/google-slides-mcp-go/internal/tools/utility"
)

// toolNameRE enforces SEP-986: tool names must match ^[a-zA-Z0-9_-]{1,64}$
var toolNameRE = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// ValidateToolName checks that a tool name complies with SEP-986.
func ValidateToolName(name string) error {
	if !toolNameRE.MatchString(name) {
		return fmt.Errorf("tool name %q does not match SEP-986 pattern ^[a-zA-Z0-9_-]{1,64}$", name)
	}
	return nil
}

// serviceEnabled returns true if the service is enabled (or no filter is set).
func serviceEnabled(cfg *config.Config, service string) bool {
	if len(cfg.EnabledServices) == 0 {
		return true
	}
	for _, s := range cfg.EnabledServices {
		if s == service {
			return true
		}
	}
	return false
}

// RegisterAll registers all tool packages with the server, applying tier, service, and mode filters.
// Each service package exposes Register(server, factory) which adds its tools.
func RegisterAll(server *mcp.Server, factory *services.Factory, cfg *config.Config, tierMap map[string]config.ToolInfo, oauthMgr *auth.OAuthManager) {
	slog.Info("registering tools",
		"tier", cfg.ToolTier,
		"services", cfg.EnabledServices,
		"readOnly", cfg.ReadOnly,
	)

	_ = tierMap // TODO: per-tool tier filtering will be added when we have more tools per service

	// Slides API tools: low-level passthrough plus the semantic layers.
	if serviceEnabled(cfg, "slides") {
		slides.Register(server, factory)
		content.Register(server, factory)
		positioning.Register(server, factory)
		creation.Register(server, factory)
		utility.Register(server, factory)
		analysis.Register(server, factory)
		templates.RegisterSlidesTools(server, factory)
		slog.Info("registered service", "service", "slides")
	}

	// Drive-backed tools: template copy/search/export plus comments.
	if serviceEnabled(cfg, "drive") {
		templates.Register(server, factory)
		comments.Register(server, factory)
		slog.Info("registered service", "service", "drive")
	}

	authtools.Register(server, oauthMgr)
	slog.Info("registered service", "service", "auth")
}

// ShouldIncludeTool checks whether a tool should be registered based on the current config.
func ShouldIncludeTool(toolName string, cfg *config.Config, tierMap map[string]config.ToolInfo, annotations *mcp.ToolAnnotations) bool {
	info, ok := tierMap[toolName]
	if !ok {
		slog.Warn("tool not found in tier config, skipping", "tool", toolName)
		return false
	}

	// Filter by tier level
	if config.TierLevel(info.Tier) > config.TierLevel(cfg.ToolTier) {
		return false
	}

	// Filter by enabled services
	if len(cfg.EnabledServices) > 0 {
		found := false
		for _, svc := range cfg.EnabledServices {
			if svc == info.Service {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Filter by read-only mode: exclude tools that are not read-only
	if cfg.ReadOnly && annotations != nil && !annotations.ReadOnlyHint {
		return false
	}

	return true
}
