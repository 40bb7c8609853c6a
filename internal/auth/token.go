package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lshigami/mockprep/internal/domain"
)

// Claims is the payload of an access token. The registered ID (jti) doubles
// as the login session id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a new HS256 token for the user.
func (t *Tokens) Issue(userID uuid.UUID, email string) (string, *Claims, error) {
	now := t.now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

// Verify checks signature and expiry; exp is mandatory. Every failure wraps domain.ErrAuth.
func (t *Tokens) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("%w: invalid token", domain.ErrAuth)
	}
	return claims, nil
}

// DecodeExpiry reads the exp claim without checking the signature, the way a
// client inspects its own token. A token that cannot be decoded or carries no
// exp wraps domain.ErrDecode.
func DecodeExpiry(token string) (time.Time, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("%w: missing exp claim", domain.ErrDecode)
	}
	return claims.ExpiresAt.Time, nil
}

// Expired compares exp (whole seconds) with now in milliseconds.
func Expired(exp, now time.Time) bool {
	return exp.Unix()*1000 < now.UnixMilli()
}

var ErrMissingBearer = errors.New("missing bearer token")

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", ErrMissingBearer
	}
	return strings.TrimSpace(header[len(prefix):]), nil
}
