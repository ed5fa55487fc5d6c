package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"summer-success/tracker/config"
	"summer-success/tracker/internal/dto"
	"summer-success/tracker/pkg/jwt"
)

var (
	ErrInvalidCredentials = errors.New("password is incorrect")
	ErrAuthNotConfigured  = errors.New("no parent password is configured")
)

// TokenBlacklist revoked token store, satisfied by *redis.Client
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// AuthService parent sessions
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Logout revokes the token identified by jti until expiresAt
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
}

type authService struct {
	cfg       *config.AuthConfig
	jwtMgr    *jwt.Manager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewAuthService creates an AuthService. A nil blacklist makes Logout a
// no-op; tokens then stay valid until they expire.
func NewAuthService(
	cfg *config.AuthConfig,
	jwtMgr *jwt.Manager,
	blacklist TokenBlacklist,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:       cfg,
		jwtMgr:    jwtMgr,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 1. configured?
	if s.cfg.ParentPasswordHash == "" {
		return nil, ErrAuthNotConfigured
	}

	// 2. verify password (bcrypt)
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.ParentPasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("parent login rejected")
		return nil, ErrInvalidCredentials
	}

	// 3. issue token
	token, _, err := s.jwtMgr.GenerateAccessToken()
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("parent logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		ExpiresIn:   int(s.jwtMgr.AccessTokenTTL().Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.blacklist == nil || jti == "" {
		return nil
	}
	if err := s.blacklist.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}
	s.logger.Info("parent logged out", zap.String("jti", jti))
	return nil
}

// HashPassword bcrypt-hashes a parent password for auth.parent_password_hash
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
