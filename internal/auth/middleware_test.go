package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "contactbook/internal/errors"
)

func newProtectedEcho(verifier TokenVerifier) *echo.Echo {
	e := echo.New()
	g := e.Group("", Middleware(verifier))
	g.GET("/whoami", func(c echo.Context) error {
		claims := CurrentClaims(c)
		fromCtx := ClaimsFromContext(c.Request().Context())
		return c.JSON(http.StatusOK, map[string]string{
			"username":     claims.Username,
			"ctx_username": fromCtx.Username,
		})
	})
	return e
}

func serve(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_ValidToken(t *testing.T) {
	svc := NewJWTService(testSecret, 0)
	e := newProtectedEcho(svc)
	token, err := svc.Issue(uuid.New(), "ada")
	require.NoError(t, err)

	rec := serve(e, "Bearer "+token)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ada", body["username"])
	assert.Equal(t, "ada", body["ctx_username"])
}

func TestMiddleware_Rejections(t *testing.T) {
	svc := NewJWTService(testSecret, 0)
	e := newProtectedEcho(svc)
	valid, err := svc.Issue(uuid.New(), "ada")
	require.NoError(t, err)
	foreign, err := NewJWTService("other-secret", 0).Issue(uuid.New(), "mallory")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{"missing header", "", http.StatusUnauthorized, "UNAUTHENTICATED"},
		{"garbage token", "Bearer garbage", http.StatusForbidden, "FORBIDDEN"},
		{"foreign signature", "Bearer " + foreign, http.StatusForbidden, "FORBIDDEN"},
		{"wrong scheme", "Basic " + valid, http.StatusForbidden, "FORBIDDEN"},
		{"scheme without token", "Bearer ", http.StatusForbidden, "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}
