package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/lshigami/mockprep/internal/auth"
	"github.com/lshigami/mockprep/internal/domain"
)

type stubAuthenticator struct {
	claims *auth.Claims
	err    error
}

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	return s.claims, s.err
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()
	good := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: userID.String(), ID: "sid"}}

	tests := []struct {
		name   string
		header string
		authn  stubAuthenticator
		want   int
	}{
		{name: "missing header", header: "", authn: stubAuthenticator{claims: good}, want: http.StatusUnauthorized},
		{name: "rejected token", header: "Bearer t", authn: stubAuthenticator{err: domain.ErrAuth}, want: http.StatusUnauthorized},
		{name: "revocation store down", header: "Bearer t", authn: stubAuthenticator{err: errors.New("redis down")}, want: http.StatusServiceUnavailable},
		{name: "bad subject", header: "Bearer t", authn: stubAuthenticator{claims: &auth.Claims{}}, want: http.StatusUnauthorized},
		{name: "ok", header: "Bearer t", authn: stubAuthenticator{claims: good}, want: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/me", RequireAuth(tc.authn), func(ctx *gin.Context) {
				id, ok := UserID(ctx)
				if !ok || id != userID || Token(ctx) != "t" {
					ctx.Status(http.StatusTeapot)
					return
				}
				ctx.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}
