package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// =====================================================
// TOKEN MANAGER
// =====================================================

// TokenKind separates the short-lived access token from the refresh
// token, so one can never be presented where the other is expected.
type TokenKind string

const (
	KindAccess  TokenKind = "access"
	KindRefresh TokenKind = "refresh"
)

const issuer = "newsportal"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrWrongKind    = errors.New("unexpected token kind")
)

// Claims carries the portal identity baked into a token. Role is a
// snapshot from issuance time; privileged operations re-check the
// stored role instead of trusting it.
type Claims struct {
	UserID string    `json:"user_id"`
	Email  string    `json:"email,omitempty"`
	Role   string    `json:"role,omitempty"`
	Kind   TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// Manager signs and validates the portal's token pair.
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager creates a token manager. Non-positive TTLs fall back to
// 24h access / 72h refresh.
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 72 * time.Hour
	}
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken issues an access token carrying the caller's
// email and role snapshot.
func (m *Manager) GenerateAccessToken(userID, email, role string) (string, error) {
	return m.sign(Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Kind:   KindAccess,
	}, m.accessTTL)
}

// GenerateRefreshToken issues a refresh token identifying only the
// account; profile data is reloaded when the pair is refreshed.
func (m *Manager) GenerateRefreshToken(userID string) (string, error) {
	return m.sign(Claims{
		UserID: userID,
		Kind:   KindRefresh,
	}, m.refreshTTL)
}

func (m *Manager) sign(claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   claims.UserID,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// ValidateAccessToken parses and verifies an access token.
func (m *Manager) ValidateAccessToken(tokenString string) (*Claims, error) {
	return m.parse(tokenString, KindAccess)
}

// ValidateRefreshToken parses and verifies a refresh token.
func (m *Manager) ValidateRefreshToken(tokenString string) (*Claims, error) {
	return m.parse(tokenString, KindRefresh)
}

func (m *Manager) parse(tokenString string, kind TokenKind) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		},
		jwt.WithIssuer(issuer),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Kind != kind {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrWrongKind, kind, claims.Kind)
	}

	return claims, nil
}
