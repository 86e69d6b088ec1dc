package http

import (
	"context"
	"net/http"

	"github.com/victorygp/portal/internal/portal/domain"
	"github.com/victorygp/portal/internal/portal/service"
	"github.com/victorygp/portal/pkg/httpx"
	"github.com/victorygp/portal/pkg/portalapi"
	"github.com/victorygp/portal/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "portal_user"

// RequireUser resolves the verified token subject (an email) to its account
// and stashes it in the context. Runs after httpx.AuthnMiddleware; a token
// whose subject no longer exists is treated as invalid.
func RequireUser(users *service.UserService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			subject := httpx.SubjectFromCtx(ctx)
			if subject == "" {
				portalapi.ErrUnauthorized.WriteError(w)
				return
			}

			user, err := users.GetUserByEmail(ctx, subject)
			if err != nil {
				log.Warn("token subject has no account", "subject", subject, "err", err)
				portalapi.ErrUnauthorized.WriteError(w)
				return
			}

			ctx = context.WithValue(ctx, ctxKeyUser, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route to admin accounts. Must run after RequireUser.
func RequireAdmin() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromCtx(r.Context())
			if !ok || !user.IsAdmin() {
				portalapi.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFromCtx returns the resolved account placed by RequireUser.
func UserFromCtx(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}
