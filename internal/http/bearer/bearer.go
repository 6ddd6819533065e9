// Package bearer authenticates API requests from their Authorization header
// and gates routes by session role.
package bearer

import (
	"context"
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/valueplus/internal/apperr"
	"github.com/MrJamesThe3rd/valueplus/internal/http/respond"
	"github.com/MrJamesThe3rd/valueplus/internal/session"
	"github.com/MrJamesThe3rd/valueplus/internal/token"
)

type Parser interface {
	Parse(raw string) (*token.Claims, error)
}

type claimsKey struct{}

// Authenticate attaches the claims of a valid bearer token to the request
// context. Requests without a token pass through anonymously; a token that
// does not verify is rejected with 401.
func Authenticate(p Parser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := FromHeader(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := p.Parse(raw)
			if err != nil {
				respond.Error(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

// Require rejects requests whose role may not open v.
func Require(v session.View) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := session.Authorize(Role(r.Context()), v); err != nil {
				respond.Error(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := Claims(r.Context()); !ok {
			respond.Error(w, apperr.Auth("not logged in", nil))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func Claims(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return c, ok
}

// Role is the role carried by the request's token, or RoleNone.
func Role(ctx context.Context) session.Role {
	if c, ok := Claims(ctx); ok {
		return c.Role
	}

	return session.RoleNone
}

// FromHeader extracts the token from "Authorization: Bearer <token>".
func FromHeader(r *http.Request) (string, bool) {
	scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	raw = strings.TrimSpace(raw)

	return raw, raw != ""
}
