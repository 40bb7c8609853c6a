package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/auth"
	"github.com/lshigami/mockprep/internal/domain"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	ContextUserID = "userID"
	ContextClaims = "claims"
	ContextToken  = "token"
)

type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Claims, error)
}

// RequireAuth rejects requests without a valid, non-revoked bearer token and
// stores the caller's identity on the gin context.
func RequireAuth(authn TokenAuthenticator) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := auth.BearerToken(ctx.GetHeader("Authorization"))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}

		claims, err := authn.Authenticate(ctx.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domain.ErrAuth) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
				return
			}
			log.Error().Err(err).Msg("Authentication check failed")
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{Message: "Authentication is temporarily unavailable"})
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Token subject is not a user id"})
			return
		}

		ctx.Set(ContextUserID, userID)
		ctx.Set(ContextClaims, claims)
		ctx.Set(ContextToken, token)
		ctx.Next()
	}
}

// UserID returns the id stored by RequireAuth.
func UserID(ctx *gin.Context) (uuid.UUID, bool) {
	v, ok := ctx.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func Claims(ctx *gin.Context) (*auth.Claims, bool) {
	v, ok := ctx.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	c, ok := v.(*auth.Claims)
	return c, ok
}

func Token(ctx *gin.Context) string {
	return ctx.GetString(ContextToken)
}
