package rolodexsdk

import (
	"context"
	"fmt"
	"net/http"
)

// Session is an authenticated view of the API holding a bearer token. It is
// safe for concurrent use; the token is immutable for the session's life.
type Session struct {
	client      *SDKClient
	accessToken string
}

func newSession(c *SDKClient, tok *TokenResponse) *Session {
	return &Session{client: c, accessToken: tok.AccessToken}
}

// AccessToken exposes the raw bearer token, mainly for tests that need to
// tamper with it.
func (s *Session) AccessToken() string {
	return s.accessToken
}

// Me returns the account behind this session's token.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/me", nil)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateContact adds a contact to the caller's rolodex.
func (s *Session) CreateContact(ctx context.Context, req ContactRequest) (*ContactResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/v1/contacts", req)
	if err != nil {
		return nil, err
	}

	var contact ContactResponse
	if err := decodeJSON(resp, &contact, http.StatusCreated); err != nil {
		return nil, err
	}
	return &contact, nil
}

// GetContact fetches one of the caller's contacts by ID.
func (s *Session) GetContact(ctx context.Context, id string) (*ContactResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/v1/contacts/"+id, nil)
	if err != nil {
		return nil, err
	}

	var contact ContactResponse
	if err := decodeJSON(resp, &contact, http.StatusOK); err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListContacts pages through the caller's contacts, newest first. Zero
// values fall back to the server defaults.
func (s *Session) ListContacts(ctx context.Context, limit, offset int) (*ContactListResponse, error) {
	path := "/v1/contacts"
	if limit > 0 || offset > 0 {
		path = fmt.Sprintf("%s?limit=%d&offset=%d", path, limit, offset)
	}

	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var list ContactListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateContact replaces the editable fields of a contact.
func (s *Session) UpdateContact(ctx context.Context, id string, req ContactRequest) (*ContactResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/v1/contacts/"+id, req)
	if err != nil {
		return nil, err
	}

	var contact ContactResponse
	if err := decodeJSON(resp, &contact, http.StatusOK); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes a contact from the caller's rolodex.
func (s *Session) DeleteContact(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/v1/contacts/"+id, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
