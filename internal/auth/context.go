package auth

import (
	"context"

	"github.com/labstack/echo/v4"
)

// ContextKey is the echo context key under which verified claims are stored.
const ContextKey = "user"

type claimsContextKey struct{}

// WithClaims returns a new context with the verified claims attached.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext retrieves the claims, returning nil if not present.
func ClaimsFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsContextKey{}).(*Claims)
	return claims
}

// CurrentClaims returns the claims the gateway attached to this request.
func CurrentClaims(c echo.Context) *Claims {
	if claims, ok := c.Get(ContextKey).(*Claims); ok {
		return claims
	}
	return ClaimsFromContext(c.Request().Context())
}
