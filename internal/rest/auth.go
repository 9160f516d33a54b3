package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/didi-digest/backend/internal/digests"
)

type identityKey struct{}

// NewAuthMiddleware authenticates every request from a bearer token signed by
// the identity provider. Claims carry the user id and the staff flag; the
// resulting identity is stored on the request context so both the REST and RPC
// layers can read it. Anonymous requests are rejected.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}

			claims := jwt.MapClaims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			userID, ok := claims["user_id"].(float64)
			if !ok || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			isStaff, _ := claims["is_staff"].(bool)

			ident := digests.Identity{
				UserID:  int(userID),
				IsStaff: isStaff,
			}

			ctx := context.WithValue(c.Request().Context(), identityKey{}, ident)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// RequireStaff guards admin-only mutations.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !identity(c).IsStaff {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "staff access required"})
		}
		return next(c)
	}
}

// IdentityFromContext returns the authenticated caller stored by the auth
// middleware.
func IdentityFromContext(ctx context.Context) (digests.Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(digests.Identity)
	return ident, ok
}

// WithIdentity returns a context carrying the given identity. Used by tests
// and by the RPC layer helpers.
func WithIdentity(ctx context.Context, ident digests.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

func identity(c echo.Context) digests.Identity {
	ident, _ := IdentityFromContext(c.Request().Context())
	return ident
}
