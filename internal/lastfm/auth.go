package lastfm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Session is an authenticated web service session. Session keys have an
// infinite lifetime; users can revoke them from their settings page.
type Session struct {
	Name       string
	Key        string
	Subscriber bool
}

func (s *Session) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name       string   `json:"name"`
		Key        string   `json:"key"`
		Subscriber flexBool `json:"subscriber"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Name = raw.Name
	s.Key = raw.Key
	s.Subscriber = bool(raw.Subscriber)
	return nil
}

// AuthService provides the auth.* operations.
type AuthService struct {
	client *Client
}

// GetToken fetches an unauthorized request token. The user must approve it
// at the URL from Client.AuthURL before it can be exchanged for a session.
// Tokens expire after 60 minutes.
func (s *AuthService) GetToken(ctx context.Context) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := s.client.getSigned(ctx, "auth.getToken", P{}, &resp); err != nil {
		return "", fmt.Errorf("auth.getToken: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("auth.getToken: empty token")
	}
	return resp.Token, nil
}

// GetSession exchanges an authorized request token for a session and
// stores the session key on the client.
func (s *AuthService) GetSession(ctx context.Context, token string) (*Session, error) {
	var resp struct {
		Session *Session `json:"session"`
	}
	if err := s.client.getSigned(ctx, "auth.getSession", P{"token": token}, &resp); err != nil {
		return nil, fmt.Errorf("auth.getSession: %w", err)
	}
	if resp.Session == nil {
		return nil, fmt.Errorf("auth.getSession: empty response")
	}
	s.client.SetSessionKey(resp.Session.Key)
	return resp.Session, nil
}

// GetMobileSession authenticates directly with the user's credentials and
// stores the session key on the client. passwordHash is the MD5 hex digest
// of the password; the plaintext never goes on the wire.
func (s *AuthService) GetMobileSession(ctx context.Context, username, passwordHash string) (*Session, error) {
	var resp struct {
		Session *Session `json:"session"`
	}
	params := P{"username": username, "authToken": AuthToken(username, passwordHash)}
	if err := s.client.post(ctx, "auth.getMobileSession", params, false, &resp); err != nil {
		return nil, fmt.Errorf("auth.getMobileSession: %w", err)
	}
	if resp.Session == nil {
		return nil, fmt.Errorf("auth.getMobileSession: empty response")
	}
	s.client.SetSessionKey(resp.Session.Key)
	return resp.Session, nil
}

// AuthToken derives the mobile-session authentication token from a
// username and the MD5 hex digest of the password.
func AuthToken(username, passwordHash string) string {
	return md5hex(username + passwordHash)
}
