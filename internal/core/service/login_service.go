package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

// LoginService authenticates administrators and hands out session tokens.
type LoginService struct {
	repo   ports.UserAdminRepository
	tokens *TokenService
	logger zerolog.Logger
}

func NewLoginService(repo ports.UserAdminRepository, tokens *TokenService, logger zerolog.Logger) *LoginService {
	return &LoginService{repo: repo, tokens: tokens, logger: logger}
}

// Login verifies the credentials and returns a signed token plus the
// principal. Unknown usernames, wrong passwords and deactivated accounts
// are indistinguishable to the caller.
func (s *LoginService) Login(ctx context.Context, username, password string) (string, *domain.UserAdmin, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.Active {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		// A stale last_login is not worth failing a valid login over.
		s.logger.Warn().Err(err).Int64("user_id", user.ID).Msg("failed to record last login")
	} else {
		user.LastLogin = &now
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", user.Username).Msg("admin logged in")
	return token, user, nil
}
