package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
	"github.com/openshowcase/showcase/pkg/showcase"
)

type contextKey int

const (
	identityKey contextKey = iota
	contentKey
)

// WithIdentity returns a copy of ctx carrying the authenticated identity.
// An outer auth layer (see RequireIdentity) normally sets this.
func WithIdentity(ctx context.Context, identity showcase.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom returns the identity attached to ctx, if any.
func IdentityFrom(ctx context.Context) (showcase.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(showcase.Identity)
	return identity, ok
}

// RequireIdentity ensures an authenticated identity is attached to the
// request context. When none is present yet it resolves one from the JWT
// claims verified by an outer jwtauth.Verifier; requests without a valid
// token are rejected.
func RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFrom(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			renderError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		identity, err := identityFromClaims(claims)
		if err != nil {
			renderError(w, r, http.StatusUnauthorized, "unauthorized", "authentication required")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// identityFromClaims maps verified token claims onto an Identity. The
// subject claim must be a well-formed id; a missing role defaults to user.
func identityFromClaims(claims map[string]interface{}) (showcase.Identity, error) {
	sub, _ := claims["sub"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return showcase.Identity{}, fmt.Errorf("invalid subject claim: %w", err)
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = showcase.RoleUser
	}
	name, _ := claims["name"].(string)

	return showcase.Identity{ID: id, Name: name, Role: role}, nil
}
