package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenService issues and verifies HS256 session tokens. Verification
// failures are never distinguished to the caller: malformed, expired and
// forged tokens all come back as domain.ErrUnauthorized.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a session token embedding the principal's id, username and
// role. Tokens cannot be revoked before expiry.
func (s *TokenService) Issue(u *domain.UserAdmin) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       u.ID,
		"username": u.Username,
		"roles":    u.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded actor.
func (s *TokenService) Verify(token string) (*domain.Actor, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthorized
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	username, _ := claims["username"].(string)
	role, _ := claims["roles"].(string)

	return &domain.Actor{ID: int64(id), Username: username, Role: role}, nil
}
