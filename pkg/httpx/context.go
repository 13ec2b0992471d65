package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyEmail  ctxKey = "email"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims when needed
)

// ActorID returns the authenticated user ID attached by AuthnMiddleware.
func ActorID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	return v, ok && v != ""
}

// ActorEmail returns the authenticated user's email, when the identity
// provider included one in the token.
func ActorEmail(ctx context.Context) string {
	v, _ := ctx.Value(CtxKeyEmail).(string)
	return v
}
