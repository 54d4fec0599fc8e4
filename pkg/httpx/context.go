package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject carries the token subject (the authenticated email).
	CtxKeySubject ctxKey = "subject"

	// CtxKeyClaims carries the full verified jwtx.Claims.
	CtxKeyClaims ctxKey = "claims"
)

// SubjectFromCtx returns the authenticated token subject, or "" when the
// request never passed AuthnMiddleware.
func SubjectFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySubject).(string); ok {
		return v
	}
	return ""
}
