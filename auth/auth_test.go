package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// memoryStore is a TokenStore for exercising the authentication flow without disk state.
type memoryStore struct {
	tok   *oauth2.Token
	saves int
}

func (s *memoryStore) Load(ctx context.Context) (*oauth2.Token, error) {

	if s.tok == nil {
		return nil, ErrNoToken
	}

	return s.tok, nil
}

func (s *memoryStore) Save(ctx context.Context, tok *oauth2.Token) error {
	s.tok = tok
	s.saves += 1
	return nil
}

func TestAuthenticateWithValidStoredToken(t *testing.T) {

	ctx := context.Background()

	store := &memoryStore{
		tok: &oauth2.Token{
			AccessToken: "stored-token",
			Expiry:      time.Now().Add(time.Hour),
		},
	}

	opts := &AuthenticateOptions{
		Config: &oauth2.Config{ClientID: "id", ClientSecret: "secret"},
		Store:  store,
	}

	s, err := Authenticate(ctx, opts)

	if err != nil {
		t.Fatalf("Failed to authenticate, %v", err)
	}

	tok, err := s.Token()

	if err != nil {
		t.Fatalf("Failed to derive token, %v", err)
	}

	if tok.AccessToken != "stored-token" {
		t.Fatalf("Expected stored token to be reused, got '%s'", tok.AccessToken)
	}

	if store.saves != 0 {
		t.Fatalf("Expected no writes for a valid stored token, got %d", store.saves)
	}
}

func TestAuthenticateRefreshesExpiredToken(t *testing.T) {

	ctx := context.Background()

	token_endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if r.FormValue("grant_type") != "refresh_token" {
			t.Errorf("Expected a refresh_token grant, got '%s'", r.FormValue("grant_type"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":3600}`))
	}))

	defer token_endpoint.Close()

	store := &memoryStore{
		tok: &oauth2.Token{
			AccessToken:  "stale-token",
			RefreshToken: "refresh-me",
			Expiry:       time.Now().Add(-time.Hour),
		},
	}

	opts := &AuthenticateOptions{
		Config: &oauth2.Config{
			ClientID:     "id",
			ClientSecret: "secret",
			Endpoint:     oauth2.Endpoint{TokenURL: token_endpoint.URL},
		},
		Store: store,
	}

	s, err := Authenticate(ctx, opts)

	if err != nil {
		t.Fatalf("Failed to authenticate, %v", err)
	}

	tok, err := s.Token()

	if err != nil {
		t.Fatalf("Failed to derive token, %v", err)
	}

	if tok.AccessToken != "fresh-token" {
		t.Fatalf("Expected refreshed token, got '%s'", tok.AccessToken)
	}

	if store.saves != 1 {
		t.Fatalf("Expected refreshed token to be persisted once, got %d writes", store.saves)
	}
}

func TestAuthenticateInteractiveGrant(t *testing.T) {

	ctx := context.Background()

	token_endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		if r.FormValue("code") != "auth-code" {
			t.Errorf("Unexpected authorization code, got '%s'", r.FormValue("code"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"granted-token","token_type":"Bearer","refresh_token":"rt","expires_in":3600}`))
	}))

	defer token_endpoint.Close()

	store := &memoryStore{}

	var prompts strings.Builder

	opts := &AuthenticateOptions{
		Config: &oauth2.Config{
			ClientID:     "id",
			ClientSecret: "secret",
			Endpoint: oauth2.Endpoint{
				AuthURL:  "https://localhost/auth",
				TokenURL: token_endpoint.URL,
			},
		},
		Store:  store,
		Reader: strings.NewReader("auth-code\n"),
		Writer: &prompts,
	}

	s, err := Authenticate(ctx, opts)

	if err != nil {
		t.Fatalf("Failed to authenticate, %v", err)
	}

	tok, err := s.Token()

	if err != nil {
		t.Fatalf("Failed to derive token, %v", err)
	}

	if tok.AccessToken != "granted-token" {
		t.Fatalf("Expected granted token, got '%s'", tok.AccessToken)
	}

	if store.saves != 1 {
		t.Fatalf("Expected granted token to be persisted, got %d writes", store.saves)
	}

	if !strings.Contains(prompts.String(), "https://localhost/auth") {
		t.Fatalf("Expected authorization URL in prompt, got '%s'", prompts.String())
	}
}

func TestFileStoreRoundTrip(t *testing.T) {

	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "token.json")

	store := NewFileStore(path)

	_, err := store.Load(ctx)

	if err != ErrNoToken {
		t.Fatalf("Expected ErrNoToken for a missing file, got %v", err)
	}

	tok := &oauth2.Token{
		AccessToken:  "a",
		RefreshToken: "r",
		Expiry:       time.Now().Add(time.Hour),
	}

	err = store.Save(ctx, tok)

	if err != nil {
		t.Fatalf("Failed to save token, %v", err)
	}

	loaded, err := store.Load(ctx)

	if err != nil {
		t.Fatalf("Failed to load token, %v", err)
	}

	if loaded.AccessToken != "a" || loaded.RefreshToken != "r" {
		t.Fatalf("Unexpected token after round trip, %+v", loaded)
	}
}

func TestFileStorePreservesRefreshToken(t *testing.T) {

	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "token.json")

	store := NewFileStore(path)

	err := store.Save(ctx, &oauth2.Token{
		AccessToken:  "first",
		RefreshToken: "keep-me",
	})

	if err != nil {
		t.Fatalf("Failed to save initial token, %v", err)
	}

	// A refresh response does not include a refresh token.

	err = store.Save(ctx, &oauth2.Token{
		AccessToken: "second",
	})

	if err != nil {
		t.Fatalf("Failed to save refreshed token, %v", err)
	}

	body, err := os.ReadFile(path)

	if err != nil {
		t.Fatalf("Failed to read token file, %v", err)
	}

	if gjson.GetBytes(body, "refresh_token").String() != "keep-me" {
		t.Fatalf("Expected refresh token to be preserved, got '%s'", string(body))
	}

	loaded, err := store.Load(ctx)

	if err != nil {
		t.Fatalf("Failed to load token, %v", err)
	}

	if loaded.AccessToken != "second" {
		t.Fatalf("Unexpected access token, got '%s'", loaded.AccessToken)
	}

	if loaded.RefreshToken != "keep-me" {
		t.Fatalf("Expected preserved refresh token, got '%s'", loaded.RefreshToken)
	}
}
