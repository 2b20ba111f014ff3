// Package api filters HTTP requests through an auth strategy before
// they reach the actual handlers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/mtavares/gatekeeper/auth"
	"github.com/mtavares/gatekeeper/internal/httpjson"
	"github.com/mtavares/gatekeeper/internal/logutil"
	"github.com/mtavares/gatekeeper/user"
)

type (
	Gatekeeper struct {
		strategy auth.Strategy
		excluded []string
	}

	ctxKey byte
)

var (
	userKey = ctxKey(1)
)

func NewGatekeeper(strategy auth.Strategy, excluded ...string) *Gatekeeper {
	return &Gatekeeper{
		strategy: strategy,
		excluded: excluded,
	}
}

// Protect runs the auth checks before every request:
// excluded paths pass through untouched, a missing or undecodable
// Authorization header answers 401, well-formed credentials that match
// no user answer 403. On success the resolved user rides along in the
// request context.
func (g *Gatekeeper) Protect(sensitive http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.RequiresAuth(r.URL.Path, g.excluded) {
			sensitive.ServeHTTP(w, r)
			return
		}
		if _, ok := auth.AuthorizationHeader(r); !ok {
			httpjson.Error(w, http.StatusUnauthorized)
			return
		}
		u, err := g.strategy.CurrentUser(r)
		if err != nil {
			log := logutil.GetOrDefault(r.Context())
			log.Debug().Str("req.path", r.URL.Path).Msg("Request credentials rejected")
			if errors.Is(err, auth.ErrNoCredentials) {
				httpjson.Error(w, http.StatusUnauthorized)
				return
			}
			httpjson.Error(w, http.StatusForbidden)
			return
		}
		sensitive.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userKey, u)
}

// UserFrom returns the authenticated user put in place by Protect.
func UserFrom(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userKey).(*user.User)
	return u, ok && u != nil
}
