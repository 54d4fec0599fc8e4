package http

import (
	"net/http"
	"time"

	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
)

// MeHandler serves GET /v1/me.
type MeHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Get the current account
//	@Description	Returns the account behind the presented access token.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	rolodexsdk.UserResponse		"the authenticated account"
//	@Failure		401	{object}	rolodexsdk.ErrorResponse	"invalid or missing access token"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromCtx(r.Context())
	if !ok {
		rolodexsdk.ErrInvalidToken.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, rolodexsdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	})
}
