package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/lanternworks/rolodex/internal/domain"
	"github.com/lanternworks/rolodex/internal/service"
	"github.com/lanternworks/rolodex/pkg/httpx"
	"github.com/lanternworks/rolodex/pkg/rolodexsdk"
	"github.com/lanternworks/rolodex/pkg/slogx"
)

type userCtxKey struct{}

// UserFromCtx returns the resolved account for the request, or false when
// the request never passed RequireUser.
func UserFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userCtxKey{}).(domain.User)
	return u, ok
}

// RequireUser resolves the verified token subject to a user record and
// injects it into the context. It runs after httpx.AuthnMiddleware, so the
// signature is already trusted; this step catches tokens whose subject no
// longer maps to an account.
func RequireUser(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			subject := httpx.SubjectFromCtx(ctx)
			if subject == "" {
				httpx.WriteBearerError(w, "missing token subject")
				return
			}

			u, err := users.ResolveSubject(ctx, subject)
			if err != nil {
				if errors.Is(err, service.ErrUnknownSubject) {
					httpx.WriteBearerError(w, "token subject is not a known user")
					return
				}
				log.Error("failed to resolve token subject", "err", err)
				rolodexsdk.ErrServerError.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, userCtxKey{}, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
