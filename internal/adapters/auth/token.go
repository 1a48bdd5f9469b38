package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quizreg/internal/domain"
)

type hs256Tokens struct {
	secret []byte
}

// NewHS256Tokens returns a TokenIssuer/TokenVerifier pair backed by HS256 JWTs
// signed with the shared operator secret.
func NewHS256Tokens(secret string) interface {
	domain.TokenIssuer
	domain.TokenVerifier
} {
	return &hs256Tokens{secret: []byte(secret)}
}

func (t *hs256Tokens) Issue(subject string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (t *hs256Tokens) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	return claims.Subject, nil
}
