package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

func seedLoginUser(t *testing.T, repo *stubUserAdminRepo, username, password string, active bool) *domain.UserAdmin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.UserAdmin{
		Name:         "Test Admin",
		Username:     username,
		PasswordHash: string(hash),
		Email:        username + "@example.com",
		Role:         domain.RoleAdmin,
		Active:       active,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginService_Success(t *testing.T) {
	repo := newStubUserAdminRepo()
	seedLoginUser(t, repo, "carol", "s3cret", true)
	tokens := NewTokenService("secret", time.Hour)
	svc := NewLoginService(repo, tokens, zerolog.Nop())

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if user.LastLogin == nil {
		t.Fatalf("expected last login to be recorded")
	}

	actor, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if actor.Role != domain.RoleAdmin || actor.Username != "carol" {
		t.Fatalf("unexpected claims: %+v", actor)
	}
}

func TestLoginService_WrongPassword(t *testing.T) {
	repo := newStubUserAdminRepo()
	seedLoginUser(t, repo, "dave", "goodpass", true)
	svc := NewLoginService(repo, NewTokenService("secret", time.Hour), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginService_UnknownUser(t *testing.T) {
	svc := NewLoginService(newStubUserAdminRepo(), NewTokenService("secret", time.Hour), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginService_InactiveUser(t *testing.T) {
	repo := newStubUserAdminRepo()
	seedLoginUser(t, repo, "erin", "s3cret", false)
	svc := NewLoginService(repo, NewTokenService("secret", time.Hour), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "erin", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive user, got %v", err)
	}
}

func TestLoginService_EmptyCredentials(t *testing.T) {
	svc := NewLoginService(newStubUserAdminRepo(), NewTokenService("secret", time.Hour), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
