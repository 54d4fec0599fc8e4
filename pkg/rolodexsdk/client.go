package rolodexsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the rolodex contacts service. It provides the
// unauthenticated operations (register, login, health) and creates
// authenticated Sessions for everything behind the bearer check.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client for a service at baseURL.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/register", req)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges email+password for an access token and wraps it in an
// authenticated Session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	tok, err := c.Token(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return newSession(c, tok), nil
}

// Token exchanges email+password for a raw token response. Most callers
// want Login instead.
func (c *SDKClient) Token(ctx context.Context, email, password string) (*TokenResponse, error) {
	resp, err := c.postJSON(ctx, "/v1/token", TokenRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	var tok TokenResponse
	if err := decodeJSON(resp, &tok, http.StatusOK); err != nil {
		return nil, err
	}
	return &tok, nil
}

// Livez checks the liveness endpoint.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/livez")
}

// Readyz checks the readiness endpoint.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	return c.health(ctx, "/readyz")
}

func (c *SDKClient) health(ctx context.Context, path string) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := decodeJSON(resp, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}
