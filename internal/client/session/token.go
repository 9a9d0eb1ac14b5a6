package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what the client can read from its own bearer token. The
// signature is not verified, so it is for display only.
type TokenInfo struct {
	Subject   string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry that is before now.
func (t TokenInfo) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && now.After(t.ExpiresAt)
}

var ErrMissingToken = errors.New("no stored token")

// TokenInfo decodes the stored token's claims.
func (m *Manager) TokenInfo(ctx context.Context) (*TokenInfo, error) {
	raw, ok := m.store.GetToken(ctx)
	if !ok {
		return nil, ErrMissingToken
	}
	return ParseTokenInfo(raw)
}

func ParseTokenInfo(raw string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}

	info := &TokenInfo{}
	info.Subject, _ = claims.GetSubject()
	if exp, _ := claims.GetExpirationTime(); exp != nil {
		info.ExpiresAt = exp.Time
	}
	if iat, _ := claims.GetIssuedAt(); iat != nil {
		info.IssuedAt = iat.Time
	}
	if id, ok := claims["id"].(string); ok {
		info.UserID = id
	} else {
		info.UserID = info.Subject
	}
	return info, nil
}
