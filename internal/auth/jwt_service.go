package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification. Malformed
// tokens, bad signatures and expired tokens are deliberately not distinguished.
var ErrInvalidToken = errors.New("invalid token")

// Claims represents JWT claims.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IdentityID returns the subject identity as a UUID.
func (c *Claims) IdentityID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// TokenVerifier verifies bearer tokens.
type TokenVerifier interface {
	Verify(tokenString string) (*Claims, error)
}

// JWTService handles JWT token generation and validation.
// Tokens carry no expiry unless a positive ttl is configured, and there is no
// revocation: a token stays valid for as long as the secret does.
type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ TokenVerifier = (*JWTService)(nil)

// NewJWTService creates a new JWT service with the given secret. A ttl of zero
// issues non-expiring tokens.
func NewJWTService(secret string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue generates a signed token for the identity.
func (s *JWTService) Issue(userID uuid.UUID, username string) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates a JWT token and returns the claims.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.IdentityID(); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
