package rolodexsdk

// ErrorResponse is the JSON shape of every error body. It mirrors APIError
// and exists so callers can unmarshal error responses directly.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// RegisterRequest is the body of POST /v1/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// UserResponse is the public view of a user. The password hash is never
// part of any response.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	CreatedAt string `json:"created_at"`
}

// TokenRequest is the body of POST /v1/token.
type TokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned from POST /v1/token on a successful login.
type TokenResponse struct {
	// AccessToken is the JWT used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`
}

// ContactRequest is the editable portion of a contact, used for both
// create and update.
type ContactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ContactResponse is the public view of a contact.
type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ContactListResponse is returned from GET /v1/contacts.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// HealthChecks reports the status of individual dependencies in a
// readiness response.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned from the /livez and /readyz endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
