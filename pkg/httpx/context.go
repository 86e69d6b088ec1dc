package httpx

import "context"

type ctxKey string

const (
	// CtxKeySubject holds the verified token subject (user email).
	CtxKeySubject ctxKey = "subject"
	// CtxKeyClaims holds the full jwtx.Claims when needed downstream.
	CtxKeyClaims ctxKey = "claims"
)

// SubjectFromCtx returns the verified token subject, or "".
func SubjectFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeySubject).(string); ok {
		return v
	}
	return ""
}
