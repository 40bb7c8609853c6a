package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/mockprep/internal/auth"
	"github.com/lshigami/mockprep/internal/dto"
	"github.com/lshigami/mockprep/internal/model"
	"github.com/lshigami/mockprep/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.Tokens
	sessions *auth.Sessions
}

func NewAuthService(userRepo repository.UserRepository, tokens *auth.Tokens, sessions *auth.Sessions) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, sessions: sessions}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	_, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error checking email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         req.Name,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, &user); err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to create user")
		return nil, fmt.Errorf("database error creating user: %w", err)
	}
	log.Info().Str("userID", user.ID.String()).Msg("User registered")

	var resp dto.UserResponse
	if err := copier.CopyWithOption(&resp, &user, copyOptions); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error finding user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	if _, err := s.sessions.Register(token, claims); err != nil {
		return nil, fmt.Errorf("register session: %w", err)
	}
	log.Info().Str("userID", user.ID.String()).Str("sessionID", claims.ID).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.sessions.Logout(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		log.Error().Err(err).Str("sessionID", claims.ID).Msg("Failed to revoke token on logout")
		return fmt.Errorf("logout: %w", err)
	}
	log.Info().Str("sessionID", claims.ID).Msg("User logged out")
	return nil
}
