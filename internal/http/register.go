package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lanternworks/rolodex/internal/service"
	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
	"github.com/lanternworks/rolodex/pkg/slogx"
)

// RegisterHandler serves POST /v1/register.
type RegisterHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Register a new account
//	@Description	Creates an account from an email and password. The email doubles as the login identifier and must not already be registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		rolodexsdk.RegisterRequest	true	"email, password, optional full_name"
//	@Success		201		{object}	rolodexsdk.UserResponse		"the created account"
//	@Failure		400		{object}	rolodexsdk.ErrorResponse	"invalid request or email already registered"
//	@Failure		500		{object}	rolodexsdk.ErrorResponse	"internal server error"
//	@Router			/v1/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req rolodexsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rolodexsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		rolodexsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	u, err := h.UserService.Register(ctx, req.Email, req.Password, strings.TrimSpace(req.FullName))
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			rolodexsdk.ErrEmailTaken.WriteError(w)
			return
		}
		log.Error("registration failed", "err", err)
		rolodexsdk.ErrServerError.WriteError(w)
		return
	}

	log.Info("user registered", "user_id", u.ID)

	httpx.WriteJSON(w, http.StatusCreated, rolodexsdk.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	})
}
