package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/sync/singleflight"
)

// GoogleTokenEndpoint is the OAuth 2.0 token endpoint used for refresh grants.
const GoogleTokenEndpoint = "https://oauth2.googleapis.com/token"

// refreshBuffer is how long before the stored expiry a token is considered
// expired, so a refresh happens proactively rather than mid-request.
const refreshBuffer = 5 * time.Minute

// ErrNoRefreshToken reports that a refresh was required but no refresh token
// is configured for the session.
var ErrNoRefreshToken = errors.New("access token expired and no refresh token is configured")

// RefreshError reports a failed upstream token refresh, carrying the
// response body so the caller can see the provider's reason.
type RefreshError struct {
	StatusCode int
	Body       string
}

func (e *RefreshError) Error() string {
	return fmt.Sprintf("token refresh failed with status %d: %s", e.StatusCode, e.Body)
}

// TokenManagerConfig holds the OAuth token state for one session.
// It is mutated in place by a successful refresh.
type TokenManagerConfig struct {
	AccessToken  string
	RefreshToken string
	// ExpiresAt is the access token's expiry. The zero value means the
	// expiry is unknown, which is treated as NOT expired: the token is
	// used optimistically and the API call fails naturally if it is
	// stale. Switching to pessimistic refresh here would change the
	// observable number of refresh calls.
	ExpiresAt    time.Time
	ClientID     string
	ClientSecret string
}

// TokenManager guards a session's access token, deduplicating concurrent
// refresh attempts against a single upstream call. Some OAuth providers
// invalidate a refresh token shortly after first use, so two racing
// refreshes with the same refresh token can lock the session out — all
// concurrent callers must share one in-flight refresh result.
//
// TokenManager implements oauth2.TokenSource so it plugs directly into
// oauth2.NewClient for per-session API clients.
type TokenManager struct {
	mu  sync.Mutex
	cfg TokenManagerConfig

	group    singleflight.Group
	endpoint string
	client   *http.Client
	now      func() time.Time
}

// NewTokenManager creates a token manager for one session's token state.
func NewTokenManager(cfg TokenManagerConfig) *TokenManager {
	return &TokenManager{
		cfg:      cfg,
		endpoint: GoogleTokenEndpoint,
		client:   http.DefaultClient,
		now:      time.Now,
	}
}

// AccessToken returns a valid access token, refreshing it first when the
// stored expiry is within the refresh buffer. Concurrent callers during a
// refresh all receive the same in-flight result.
func (m *TokenManager) AccessToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	if !m.expiredLocked() {
		token := m.cfg.AccessToken
		m.mu.Unlock()
		return token, nil
	}
	m.mu.Unlock()

	v, err, _ := m.group.Do("refresh", func() (any, error) {
		return m.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// Token implements oauth2.TokenSource.
func (m *TokenManager) Token() (*oauth2.Token, error) {
	token, err := m.AccessToken(context.Background())
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	expiry := m.cfg.ExpiresAt
	m.mu.Unlock()
	return &oauth2.Token{AccessToken: token, TokenType: "Bearer", Expiry: expiry}, nil
}

// expiredLocked reports whether the stored token needs a refresh.
// Callers must hold m.mu. An unknown expiry counts as not expired.
func (m *TokenManager) expiredLocked() bool {
	if m.cfg.ExpiresAt.IsZero() {
		return false
	}
	return m.now().Add(refreshBuffer).After(m.cfg.ExpiresAt)
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// refresh performs one upstream refresh-grant call and stores the result.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	m.mu.Lock()
	refreshToken := m.cfg.RefreshToken
	clientID := m.cfg.ClientID
	clientSecret := m.cfg.ClientSecret
	m.mu.Unlock()

	if refreshToken == "" {
		return "", ErrNoRefreshToken
	}

	form := url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling token endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &RefreshError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", &RefreshError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	m.mu.Lock()
	m.cfg.AccessToken = tr.AccessToken
	m.cfg.ExpiresAt = m.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	m.mu.Unlock()

	return tr.AccessToken, nil
}
