package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/lanternworks/rolodex/internal/service"
	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
	"github.com/lanternworks/rolodex/pkg/slogx"
)

// TokenHandler serves POST /v1/token.
type TokenHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Exchanges an email and password for a bearer access token. Unknown email and wrong password produce the same error.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		rolodexsdk.TokenRequest		true	"email and password"
//	@Success		200		{object}	rolodexsdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	rolodexsdk.ErrorResponse	"invalid request or invalid credentials"
//	@Failure		500		{object}	rolodexsdk.ErrorResponse	"internal server error"
//	@Header			200		{string}	Cache-Control				"no-store"
//	@Router			/v1/token [post].
func (h *TokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rolodexsdk.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rolodexsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		rolodexsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, expiresIn, err := h.TokenService.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			rolodexsdk.ErrInvalidGrant.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, rolodexsdk.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(expiresIn.Seconds()),
	})
}
