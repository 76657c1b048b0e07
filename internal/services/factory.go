package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/slides/v1"

	"github.com/evert/google-slides-mcp-go/internal/auth"
)

// Factory manages authenticated Google API service clients per user email.
// Clients are cached with ReuseTokenSource for concurrency-safe auto-refresh.
type Factory struct {
	oauthConfig *oauth2.Config
	tokenStore  auth.TokenStore
	mu          sync.RWMutex
	clients     map[string]*http.Client

	// tokenManager, when set, serves every request regardless of user email
	// (single-user mode). It guards refresh with its own dedupe.
	tokenManager *auth.TokenManager
}

// NewFactory creates a service factory backed by the given OAuth manager.
func NewFactory(oauthMgr *auth.OAuthManager) *Factory {
	return &Factory{
		oauthConfig: oauthMgr.Config(),
		tokenStore:  oauthMgr.TokenStore(),
		clients:     make(map[string]*http.Client),
	}
}

// UseTokenManager switches the factory to single-user mode: all clients are
// built from the manager's token source instead of per-email stored tokens.
func (f *Factory) UseTokenManager(tm *auth.TokenManager) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenManager = tm
}

// clientFor returns a cached, auto-refreshing HTTP client for the user.
// IMPORTANT: Uses context.Background() for the cached HTTP client/token source
// so they outlive any single request context. Individual API calls pass their
// own request context via .Context(ctx) on each Google API call.
func (f *Factory) clientFor(ctx context.Context, userEmail string) (*http.Client, error) {
	// Fast path: check cache
	f.mu.RLock()
	client, ok := f.clients[userEmail]
	f.mu.RUnlock()
	if ok {
		return client, nil
	}

	// Slow path: create new client
	f.mu.Lock()
	defer f.mu.Unlock()

	// Double-check after acquiring write lock
	if client, ok := f.clients[userEmail]; ok {
		return client, nil
	}

	token, err := f.tokenStore.Load(userEmail)
	if err != nil {
		return nil, err
	}

	// Use context.Background() for the token source and HTTP client so they
	// outlive the originating request. Each Google API call passes its own
	// request-scoped context via .Context(ctx).Do(), which correctly controls
	// the lifetime of individual HTTP requests.
	bgCtx := context.Background()
	baseSource := f.oauthConfig.TokenSource(bgCtx, token)
	reuseSource := oauth2.ReuseTokenSource(token, &auth.PersistingTokenSource{
		Base:      baseSource,
		Store:     f.tokenStore,
		UserEmail: userEmail,
	})

	client = oauth2.NewClient(bgCtx, reuseSource)
	f.clients[userEmail] = client
	return client, nil
}

// InvalidateClient removes the cached HTTP client for a user, forcing the
// next API call to rebuild it from the latest persisted token. Call this
// after re-authentication to ensure fresh credentials are picked up.
func (f *Factory) InvalidateClient(userEmail string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.clients, userEmail)
}

// Slides returns a Slides service client for the given user.
func (f *Factory) Slides(ctx context.Context, userEmail string) (*slides.Service, error) {
	if tm := f.manager(); tm != nil {
		return SlidesForTokenSource(ctx, tm)
	}
	client, err := f.clientFor(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("slides client for %s: %w", userEmail, err)
	}
	return slides.NewService(ctx, option.WithHTTPClient(client))
}

// Drive returns a Drive service client for the given user.
func (f *Factory) Drive(ctx context.Context, userEmail string) (*drive.Service, error) {
	if tm := f.manager(); tm != nil {
		return DriveForTokenSource(ctx, tm)
	}
	client, err := f.clientFor(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("drive client for %s: %w", userEmail, err)
	}
	return drive.NewService(ctx, option.WithHTTPClient(client))
}

func (f *Factory) manager() *auth.TokenManager {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tokenManager
}

// SlidesForTokenSource builds a Slides client directly from a token source,
// bypassing the per-user cache. Used for sessions that carry their own
// tokens, guarded by an auth.TokenManager.
func SlidesForTokenSource(ctx context.Context, ts oauth2.TokenSource) (*slides.Service, error) {
	return slides.NewService(ctx, option.WithTokenSource(ts))
}

// DriveForTokenSource builds a Drive client directly from a token source.
func DriveForTokenSource(ctx context.Context, ts oauth2.TokenSource) (*drive.Service, error) {
	return drive.NewService(ctx, option.WithTokenSource(ts))
}
