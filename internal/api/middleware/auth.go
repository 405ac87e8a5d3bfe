package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/partnerhub/admin-api/internal/api/metrics"
	"github.com/partnerhub/admin-api/internal/core/domain"
)

// actorKey is the echo context key the gate stores the decoded principal
// under. Handlers read it back with handler.Actor.
const actorKey = "actor"

// TokenVerifier verifies a session token and returns the embedded actor.
type TokenVerifier interface {
	Verify(token string) (*domain.Actor, error)
}

// AdminGate admits a request only when it carries a valid admin token
// and its concrete path matches the allow-list. Every rejection is the
// same 401 with the same message, so a caller cannot tell which check
// failed. On admission the decoded actor is stored in the context; no
// later stage decodes the token again.
func AdminGate(tokens TokenVerifier, allowlist []string) echo.MiddlewareFunc {
	patterns := make([][]string, len(allowlist))
	for i, p := range allowlist {
		patterns[i] = splitPath(p)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get("Authorization")
			if token == "" {
				return reject("missing_token")
			}
			if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
				token = token[7:]
			}

			actor, err := tokens.Verify(token)
			if err != nil {
				return reject("invalid_token")
			}
			if actor.Role != domain.RoleAdmin {
				return reject("not_admin")
			}

			if !matchAny(patterns, splitPath(c.Request().URL.Path)) {
				return reject("route_not_allowed")
			}

			c.Set(actorKey, *actor)
			return next(c)
		}
	}
}

// ActorFrom returns the principal stored by AdminGate.
func ActorFrom(c echo.Context) (domain.Actor, bool) {
	actor, ok := c.Get(actorKey).(domain.Actor)
	return actor, ok
}

// reject records the internal reason and returns the uniform response.
func reject(reason string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

func splitPath(p string) []string {
	return strings.Split(strings.Trim(p, "/"), "/")
}

func matchAny(patterns [][]string, path []string) bool {
	for _, pattern := range patterns {
		if matchPattern(pattern, path) {
			return true
		}
	}
	return false
}

// matchPattern compares a path against a route pattern segment by
// segment. A ":param" segment matches exactly one non-empty segment;
// there is no prefix or substring matching.
func matchPattern(pattern, path []string) bool {
	if len(pattern) != len(path) {
		return false
	}
	for i, seg := range pattern {
		if strings.HasPrefix(seg, ":") {
			if path[i] == "" {
				return false
			}
			continue
		}
		if seg != path[i] {
			return false
		}
	}
	return true
}
