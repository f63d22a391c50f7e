package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	pasetotoken "github.com/hongik-triple/acnelog_backend/pkg/paseto"
	"github.com/hongik-triple/acnelog_backend/pkg/reqctx"
)

// AuthRequired validates a Bearer PASETO access token and checks the session in Redis.
// On success, stores *pasetotoken.Claims in c.Locals(pasetotoken.CtxKeyClaims).
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, err := verifyBearer(c, mgr)
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// Revoked sessions fail even with a valid token.
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

// AuthOptional attaches claims when a valid access token is present and
// continues anonymously otherwise. Diagnosis submission and public listings
// accept both kinds of callers.
func AuthOptional(mgr *pasetotoken.Manager, rdb *redis.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, err := verifyBearer(c, mgr)
		if err != nil || claims.Type != pasetotoken.TokenTypeAccess {
			return c.Next()
		}

		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return c.Next()
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.SetContext(reqctx.WithClaims(c.Context(), claims))
		return c.Next()
	}
}

func verifyBearer(c fiber.Ctx, mgr *pasetotoken.Manager) (*pasetotoken.Claims, error) {
	h := c.Get("Authorization")
	if h == "" {
		return nil, fiber.ErrUnauthorized
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, fiber.ErrUnauthorized
	}

	return mgr.Verify(strings.TrimSpace(parts[1]))
}
