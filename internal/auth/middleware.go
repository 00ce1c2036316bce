package auth

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "contactbook/internal/errors"
)

// Middleware guards protected routes. A request without an Authorization
// header is rejected with 401; a header that does not carry a verifiable
// "Bearer <token>" is rejected with 403. On success the claims are stored in
// both the echo context and the request context.
func Middleware(verifier TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ContextKey:  ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			claims, err := verifier.Verify(token)
			if err != nil {
				return nil, err
			}
			req := c.Request()
			c.SetRequest(req.WithContext(WithClaims(req.Context(), claims)))
			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return reject(apperrors.ErrUnauthenticated)
			}
			return reject(apperrors.ErrForbidden)
		},
	})
}

func reject(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}
