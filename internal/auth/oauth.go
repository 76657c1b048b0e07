package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// OAuthManager handles OAuth2 configuration and token exchange.
type OAuthManager struct {
	config     *oauth2.Config
	tokenStore TokenStore
}

// NewOAuthManager creates an OAuth manager with the given credentials.
func NewOAuthManager(clientID, clientSecret, redirectURL string, scopes []string, store TokenStore) *OAuthManager {
	return &OAuthManager{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		tokenStore: store,
	}
}

// GetAuthURL returns the URL for the user to authenticate. The user's email
// rides along as the OAuth state parameter, HMAC-signed so the callback can
// trust it.
func (m *OAuthManager) GetAuthURL(userEmail string) string {
	return m.config.AuthCodeURL(m.signState(userEmail), oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// signState produces "email:signature" for the OAuth state parameter.
func (m *OAuthManager) signState(email string) string {
	return email + ":" + m.hmacSign(email)
}

func (m *OAuthManager) hmacSign(email string) string {
	mac := hmac.New(sha256.New, []byte(m.config.ClientSecret))
	mac.Write([]byte(email))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyAndExtractEmail validates a signed state parameter and returns the
// email it was issued for. The signature is keyed on the client secret, so a
// state forged or tampered with in transit fails verification.
func (m *OAuthManager) VerifyAndExtractEmail(state string) (string, bool) {
	idx := strings.LastIndex(state, ":")
	if idx <= 0 {
		return "", false
	}
	email, sig := state[:idx], state[idx+1:]
	expected := m.hmacSign(email)
	if subtle.ConstantTimeCompare([]byte(sig), []byte(expected)) != 1 {
		return "", false
	}
	return email, true
}

// ExchangeCode exchanges an authorization code for a token and persists it.
func (m *OAuthManager) ExchangeCode(ctx context.Context, code, userEmail string) (*oauth2.Token, error) {
	token, err := m.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging auth code: %w", err)
	}
	if err := m.tokenStore.Save(userEmail, token); err != nil {
		return nil, fmt.Errorf("saving token for %s: %w", userEmail, err)
	}
	return token, nil
}

// Config returns the underlying oauth2.Config for building token sources.
func (m *OAuthManager) Config() *oauth2.Config {
	return m.config
}

// TokenStore returns the underlying token store.
func (m *OAuthManager) TokenStore() TokenStore {
	return m.tokenStore
}
