package auth

import (
	"context"
	"fmt"

	"github.com/lshigami/mockprep/internal/domain"
)

// Authenticator accepts tokens that verify and have not been logged out.
type Authenticator struct {
	tokens   *Tokens
	sessions *Sessions
}

func NewAuthenticator(tokens *Tokens, sessions *Sessions) *Authenticator {
	return &Authenticator{tokens: tokens, sessions: sessions}
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Claims, error) {
	claims, err := a.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	revoked, err := a.sessions.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token was logged out", domain.ErrAuth)
	}
	return claims, nil
}
