// Package auth handles OAuth2 authentication for the Street View Publish API,
// including cached token reuse, in-place refresh and an interactive console
// authorization-code grant.
package auth

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// oob_redirect_uri is the out-of-band redirect for installed applications: the
// authorization code is displayed to the user to paste back on the console.
const oob_redirect_uri string = "urn:ietf:wg:oauth:2.0:oob"

// AuthenticateOptions defines configuration details for deriving an authenticated session.
type AuthenticateOptions struct {
	// Config is the OAuth2 (installed application) client configuration.
	Config *oauth2.Config
	// Store is where token material is loaded from and persisted to.
	Store TokenStore
	// Reader is where the interactive grant reads the authorization code from.
	// If nil os.Stdin is used.
	Reader io.Reader
	// Writer is where the interactive grant prints its instructions. If nil
	// os.Stderr is used.
	Writer io.Writer
}

// Session wraps a refreshable token source derived from a completed authentication flow.
type Session struct {
	source oauth2.TokenSource
}

// Client returns an HTTP client that injects (and transparently refreshes) the
// session's access token.
func (s *Session) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, s.source)
}

// Token returns the session's current access token material.
func (s *Session) Token() (*oauth2.Token, error) {
	return s.source.Token()
}

// NewConfigFromFile derives an OAuth2 client configuration from a Google client
// secrets ("credentials.json") document, granting 'scopes'.
func NewConfigFromFile(path string, scopes ...string) (*oauth2.Config, error) {

	body, err := os.ReadFile(path)

	if err != nil {
		return nil, fmt.Errorf("Failed to read client secrets file %s, %w", path, err)
	}

	root := gjson.GetBytes(body, "installed")

	if !root.Exists() {
		root = gjson.GetBytes(body, "web")
	}

	if !root.Exists() {
		return nil, fmt.Errorf("Failed to parse client secrets file %s, missing 'installed' or 'web' block", path)
	}

	client_id := root.Get("client_id").String()
	client_secret := root.Get("client_secret").String()

	if client_id == "" || client_secret == "" {
		return nil, fmt.Errorf("Failed to parse client secrets file %s, missing client ID or secret", path)
	}

	conf := &oauth2.Config{
		ClientID:     client_id,
		ClientSecret: client_secret,
		Endpoint:     google.Endpoint,
		RedirectURL:  oob_redirect_uri,
		Scopes:       scopes,
	}

	return conf, nil
}

// Authenticate derives an authenticated session. A persisted token is reused if it
// is still valid, refreshed in place if it is expired but refreshable and replaced
// through an interactive authorization-code grant otherwise. The resulting token is
// persisted back to the store after any refresh or grant. Publishing is impossible
// without credentials so every failure here is fatal to the caller.
func Authenticate(ctx context.Context, opts *AuthenticateOptions) (*Session, error) {

	logger := slog.Default()
	logger = logger.With("action", "authenticate")

	tok, err := opts.Store.Load(ctx)

	if err != nil && err != ErrNoToken {
		return nil, fmt.Errorf("Failed to load stored token, %w", err)
	}

	switch {
	case tok != nil && tok.Valid():

		logger.Debug("Reusing stored access token")

	case tok != nil && tok.RefreshToken != "":

		logger.Info("Refreshing authentication token")

		refreshed, refresh_err := opts.Config.TokenSource(ctx, tok).Token()

		if refresh_err != nil {
			return nil, fmt.Errorf("Failed to refresh token, %w", refresh_err)
		}

		err = opts.Store.Save(ctx, refreshed)

		if err != nil {
			return nil, fmt.Errorf("Failed to save refreshed token, %w", err)
		}

		tok = refreshed

	default:

		logger.Info("Starting authentication flow")

		granted, grant_err := interactiveGrant(ctx, opts)

		if grant_err != nil {
			return nil, fmt.Errorf("Failed to complete authentication flow, %w", grant_err)
		}

		err = opts.Store.Save(ctx, granted)

		if err != nil {
			return nil, fmt.Errorf("Failed to save token, %w", err)
		}

		tok = granted
	}

	s := &Session{
		source: opts.Config.TokenSource(ctx, tok),
	}

	return s, nil
}

func interactiveGrant(ctx context.Context, opts *AuthenticateOptions) (*oauth2.Token, error) {

	rd := opts.Reader

	if rd == nil {
		rd = os.Stdin
	}

	wr := opts.Writer

	if wr == nil {
		wr = os.Stderr
	}

	auth_url := opts.Config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)

	fmt.Fprintf(wr, "Go to the following link in your browser then type the authorization code:\n%s\n", auth_url)

	scanner := bufio.NewScanner(rd)

	if !scanner.Scan() {

		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("Failed to read authorization code, %w", err)
		}

		return nil, fmt.Errorf("Failed to read authorization code, empty input")
	}

	code := strings.TrimSpace(scanner.Text())

	if code == "" {
		return nil, fmt.Errorf("Failed to read authorization code, empty input")
	}

	tok, err := opts.Config.Exchange(ctx, code)

	if err != nil {
		return nil, fmt.Errorf("Failed to exchange authorization code, %w", err)
	}

	return tok, nil
}
