package domain

import "time"

// TokenIssuer issues bearer tokens for the manual trigger endpoint.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a bearer token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
