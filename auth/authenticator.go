package auth

// GitHub OAuth2 Device Authorization Flow logic

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zalando/go-keyring"
	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"github.com/ucsb-cs156/frontiers-tui/config"
	"github.com/ucsb-cs156/frontiers-tui/logging"
)

// ErrNoStoredToken indicates no stored token was found
var ErrNoStoredToken = errors.New("no stored token found")

const (
	// tokenKey is not a credential but a key name for storing tokens in the system keyring
	tokenKey = "oauth2-token" // #nosec G101
	// backupTokenKey stores a duplicate token for resilience against sporadic key loss
	backupTokenKey = "oauth2-token-backup" // #nosec G101
)

// baseServiceName is the base service name for keyring storage (may be namespaced via env for tests/dev).
const baseServiceName = "frontiers-tui"

// Default GitHub device flow endpoints; overridable for tests.
const (
	defaultDeviceEndpoint = "https://github.com/login/device/code"
	defaultTokenEndpoint  = "https://github.com/login/oauth/access_token"
)

// keyringServiceName resolves the effective keyring service name, allowing isolation in tests/dev.
// Precedence:
// 1) FRONTIERS_KEYRING_SERVICE (full override)
// 2) FRONTIERS_KEYRING_NAMESPACE (suffix appended to base)
// 3) baseServiceName
func keyringServiceName() string {
	if v := strings.TrimSpace(os.Getenv("FRONTIERS_KEYRING_SERVICE")); v != "" {
		return v
	}
	if ns := strings.TrimSpace(os.Getenv("FRONTIERS_KEYRING_NAMESPACE")); ns != "" {
		return baseServiceName + "-" + ns
	}
	return baseServiceName
}

// KeyringEntryInfo returns the effective keyring service and key used to store the token.
// This is exported for diagnostics only.
func KeyringEntryInfo() (service, key string) {
	return keyringServiceName(), tokenKey
}

// AuthState represents the current authentication state
type AuthState int

const (
	AuthStateUnknown AuthState = iota
	AuthStateRequired
	AuthStateInProgress
	AuthStateCompleted
	AuthStateFailed
)

// DeviceCodeResponse represents the response from the device authorization endpoint
type DeviceCodeResponse struct {
	DeviceCode      string `json:"device_code"`
	UserCode        string `json:"user_code"`
	VerificationURI string `json:"verification_uri"`
	ExpiresIn       int    `json:"expires_in"`
	Interval        int    `json:"interval"`
}

// Authenticator manages OAuth2 authentication against GitHub
type Authenticator struct {
	config       config.OAuth2Config
	oauth2Config *oauth2.Config
	httpClient   *http.Client

	deviceEndpoint string
	tokenEndpoint  string
}

// NewAuthenticator creates a new authenticator instance
func NewAuthenticator(cfg config.OAuth2Config) *Authenticator {
	oauth2Config := &oauth2.Config{
		ClientID: cfg.ClientID,
		Scopes:   cfg.Scopes,
		Endpoint: oauthgithub.Endpoint,
	}

	return &Authenticator{
		config:         cfg,
		oauth2Config:   oauth2Config,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		deviceEndpoint: defaultDeviceEndpoint,
		tokenEndpoint:  defaultTokenEndpoint,
	}
}

// HasValidToken checks if there's a valid stored token
func (a *Authenticator) HasValidToken() bool {
	logging.Debug("Checking for valid stored token")
	token, err := a.getStoredToken()
	if err != nil {
		logging.Debug("No stored token found", "error", err.Error())
		return false
	}
	// GitHub OAuth app tokens have no expiry; Valid() covers expiring GitHub App tokens.
	if token.Valid() || (token.AccessToken != "" && token.Expiry.IsZero()) {
		logging.Debug("Token validation result", "valid", strconv.FormatBool(true))
		return true
	}
	// A refresh token alone is enough to defer interactive login.
	if strings.TrimSpace(token.RefreshToken) != "" {
		logging.Debug("Access token expired but refresh token is available; interactive login not required")
		return true
	}
	logging.Debug("No valid access token and no refresh token available")
	return false
}

// InitiateDeviceFlow starts the device authorization flow
func (a *Authenticator) InitiateDeviceFlow(ctx context.Context) (*DeviceCodeResponse, error) {
	logging.Info("Initiating device authorization flow")
	if strings.TrimSpace(a.config.ClientID) == "" {
		return nil, fmt.Errorf("no GitHub client id configured; set githubClientId first")
	}
	logging.Debug("Device endpoint", "url", a.deviceEndpoint)

	data := url.Values{}
	data.Set("client_id", a.config.ClientID)
	data.Set("scope", strings.Join(a.config.Scopes, " "))
	logging.Info("Requesting device flow scopes", "scopes", strings.Join(a.config.Scopes, " "))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.deviceEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create device code request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request device code: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device code request failed with status %d", resp.StatusCode)
	}

	var deviceResp DeviceCodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&deviceResp); err != nil {
		return nil, fmt.Errorf("failed to decode device code response: %w", err)
	}
	if deviceResp.Interval <= 0 {
		deviceResp.Interval = 5
	}

	return &deviceResp, nil
}

// PollForToken polls the token endpoint until authentication is complete
func (a *Authenticator) PollForToken(ctx context.Context, deviceCode string, interval int) (*oauth2.Token, error) {
	if interval <= 0 {
		interval = 5
	}
	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			token, err := a.pollOnce(ctx, deviceCode)
			if err != nil {
				if strings.Contains(err.Error(), "authorization_pending") {
					continue // Keep polling
				}
				if strings.Contains(err.Error(), "slow_down") {
					// GitHub asks for a larger interval; back off by 5s as documented
					ticker.Reset(time.Duration(interval+5) * time.Second)
					continue
				}
				return nil, err
			}
			return token, nil
		}
	}
}

// pollOnce performs a single token request
func (a *Authenticator) pollOnce(ctx context.Context, deviceCode string) (*oauth2.Token, error) {
	data := url.Values{}
	data.Set("grant_type", "urn:ietf:params:oauth:grant-type:device_code")
	data.Set("client_id", a.config.ClientID)
	data.Set("device_code", deviceCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request token: %w", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}

	// GitHub reports pending/denied via an error field on a 200 response
	if errCode, ok := result["error"].(string); ok && errCode != "" {
		return nil, fmt.Errorf("token request failed: %s", errCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}

	token := parseTokenResponse(result)
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token response contained no access token")
	}
	logging.Info("Received device flow token", "expires", formatExpiry(token))

	return token, nil
}

// parseTokenResponse builds an oauth2.Token from a decoded token endpoint payload.
func parseTokenResponse(result map[string]interface{}) *oauth2.Token {
	token := &oauth2.Token{}
	if accessToken, ok := result["access_token"].(string); ok {
		token.AccessToken = accessToken
	}
	if refreshToken, ok := result["refresh_token"].(string); ok {
		token.RefreshToken = refreshToken
	}
	if expiresIn, ok := result["expires_in"].(float64); ok && expiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	return token
}

func formatExpiry(token *oauth2.Token) string {
	if token.Expiry.IsZero() {
		return "never"
	}
	return token.Expiry.Format(time.RFC3339)
}

// SaveTokenSecurely stores the token in the OS credential manager
func (a *Authenticator) SaveTokenSecurely(token *oauth2.Token) error {
	logging.Info("Saving authentication token securely")
	if token == nil || strings.TrimSpace(token.AccessToken) == "" {
		return fmt.Errorf("no access token to store")
	}

	payload, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := keyring.Set(keyringServiceName(), tokenKey, string(payload)); err != nil {
		logging.Error("Failed to store token in keyring", "error", err.Error())
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}

	// Best-effort: write a backup copy to mitigate intermittent credential loss on some systems
	if err := keyring.Set(keyringServiceName(), backupTokenKey, string(payload)); err != nil {
		logging.Warn("Failed to store backup token in keyring", "error", err.Error())
		// Non-fatal: continue, primary was saved
	}

	logging.Info("Token saved successfully to secure storage (with backup)")
	return nil
}

// getStoredToken retrieves the stored token from the OS credential manager
func (a *Authenticator) getStoredToken() (*oauth2.Token, error) {
	logging.Debug("Retrieving stored token from keyring")
	tokenJSON, err := keyring.Get(keyringServiceName(), tokenKey)
	if err != nil {
		if err == keyring.ErrNotFound {
			logging.Info("No stored token found in primary keyring entry; attempting backup")
			backupJSON, bErr := keyring.Get(keyringServiceName(), backupTokenKey)
			if bErr != nil {
				if bErr == keyring.ErrNotFound {
					logging.Info("No stored token found in backup keyring entry")
					return nil, ErrNoStoredToken
				}
				logging.Error("Failed to retrieve token from backup keyring", "error", bErr.Error())
				return nil, fmt.Errorf("failed to get token from backup keyring: %w", bErr)
			}
			// Self-heal: restore primary from backup (best-effort)
			if setErr := keyring.Set(keyringServiceName(), tokenKey, backupJSON); setErr != nil {
				logging.Warn("Failed to restore primary keyring entry from backup", "error", setErr.Error())
			} else {
				logging.Info("Restored primary keyring entry from backup")
			}
			tokenJSON = backupJSON
		} else {
			logging.Error("Failed to retrieve token from keyring", "error", err.Error())
			return nil, fmt.Errorf("failed to get token from keyring: %w", err)
		}
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(tokenJSON), &token); err == nil && token.AccessToken != "" {
		logging.Debug("Successfully retrieved stored token")
		return &token, nil
	}

	// Backward compatibility: treat the stored value as a raw access token
	raw := strings.TrimSpace(tokenJSON)
	if raw == "" {
		logging.Warn("Stored token entry is empty after trimming")
		return nil, ErrNoStoredToken
	}
	logging.Debug("Successfully retrieved stored access token (raw)")
	return &oauth2.Token{AccessToken: raw}, nil
}

// GetValidToken returns a valid token, refreshing if necessary
func (a *Authenticator) GetValidToken(ctx context.Context) (*oauth2.Token, error) {
	logging.Debug("Getting valid token (with refresh if needed)")
	token, err := a.getStoredToken()
	if err != nil {
		return nil, err
	}

	// Non-expiring tokens and still-valid tokens are used as-is
	if token.Valid() || (token.AccessToken != "" && token.Expiry.IsZero()) {
		return token, nil
	}

	if token.RefreshToken == "" {
		logging.Warn("No refresh token available, re-authentication required")
		return nil, fmt.Errorf("token expired and no refresh token available, re-authentication required")
	}

	logging.Debug("Refreshing token using refresh token")
	tokenSource := a.oauth2Config.TokenSource(ctx, token)
	newToken, err := tokenSource.Token()
	if err != nil {
		logging.Error("Failed to refresh token", "error", err.Error())
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	if err := a.SaveTokenSecurely(newToken); err != nil {
		logging.Error("Failed to save refreshed token", "error", err.Error())
		return nil, fmt.Errorf("failed to save refreshed token: %w", err)
	}

	logging.Info("Token successfully refreshed and saved")
	return newToken, nil
}

// StoredTokenPresent returns true if a token is present in secure storage.
// It avoids logging secrets and is intended for diagnostics.
func (a *Authenticator) StoredTokenPresent() (bool, error) {
	_, err := a.getStoredToken()
	if err != nil {
		if errors.Is(err, ErrNoStoredToken) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ClearToken removes the stored token
func (a *Authenticator) ClearToken() error {
	logging.Info("Clearing stored authentication token")
	var firstErr error
	for _, key := range []string{tokenKey, backupTokenKey} {
		if err := keyring.Delete(keyringServiceName(), key); err != nil {
			if err == keyring.ErrNotFound {
				logging.Info("Keyring entry not found during clear", "key", key)
				continue
			}
			logging.Warn("Failed to delete token from keyring", "key", key, "error", err.Error())
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return fmt.Errorf("failed to clear one or more keyring entries: %w", firstErr)
	}
	logging.Info("Token successfully cleared from secure storage")
	return nil
}
