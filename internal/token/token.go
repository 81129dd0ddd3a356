// Package token implements the session-token primitive: issuing and
// verifying signed bearer tokens that bind a user id to a validity window.
// Tokens are stateless; possession of a valid token is the sole authorization
// proof and logout is purely client-side.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the validity window for a session token.
const DefaultTTL = 7 * 24 * time.Hour

// Verification failure reasons. Callers may distinguish them for logging but
// must surface the same message to clients either way.
var (
	ErrExpired = errors.New("token expired")
	ErrInvalid = errors.New("token invalid")
)

// Manager issues and verifies HS256-signed session tokens.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
}

// NewManager creates a Manager signing with the given secret.
func NewManager(secret []byte) *Manager {
	return &Manager{secret: secret, issuer: "fittrack-api", audience: "fittrack-client"}
}

// Issue returns an opaque bearer token for the user, valid for ttl.
func (m *Manager) Issue(userID uint, ttl time.Duration) (string, error) {
	if len(m.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": m.issuer,
		"aud": m.audience,
		"exp": now.Add(ttl).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses the token and returns the embedded user id. It returns
// ErrExpired when the token's validity window has passed and ErrInvalid for
// every other failure (bad signature, malformed claims, wrong algorithm).
func (m *Manager) Verify(raw string) (uint, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	if !parsed.Valid {
		return 0, ErrInvalid
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, ErrInvalid
	}
	id, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrInvalid
	}
	return uint(id), nil
}
