package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"golang.org/x/oauth2"
)

// FileStore persists token material as a single JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore returns a TokenStore reading and writing token material at 'path'.
func NewFileStore(path string) TokenStore {
	return &FileStore{
		path: path,
	}
}

func (s *FileStore) Load(ctx context.Context) (*oauth2.Token, error) {

	body, err := os.ReadFile(s.path)

	if os.IsNotExist(err) {
		return nil, ErrNoToken
	}

	if err != nil {
		return nil, fmt.Errorf("Failed to read token file %s, %w", s.path, err)
	}

	var tok *oauth2.Token

	err = json.Unmarshal(body, &tok)

	if err != nil {
		return nil, fmt.Errorf("Failed to unmarshal token file %s, %w", s.path, err)
	}

	return tok, nil
}

func (s *FileStore) Save(ctx context.Context, tok *oauth2.Token) error {

	body, err := json.Marshal(tok)

	if err != nil {
		return fmt.Errorf("Failed to marshal token, %w", err)
	}

	// Google only issues a refresh token on the initial grant so a refreshed
	// token arrives without one. Carry the stored value forward rather than
	// losing the ability to refresh on the next run.

	if tok.RefreshToken == "" {

		if prev, read_err := os.ReadFile(s.path); read_err == nil {

			prev_rt := gjson.GetBytes(prev, "refresh_token")

			if prev_rt.Exists() && prev_rt.String() != "" {

				body, err = sjson.SetBytes(body, "refresh_token", prev_rt.String())

				if err != nil {
					return fmt.Errorf("Failed to preserve refresh token, %w", err)
				}
			}
		}
	}

	err = os.WriteFile(s.path, body, 0600)

	if err != nil {
		return fmt.Errorf("Failed to write token file %s, %w", s.path, err)
	}

	return nil
}
