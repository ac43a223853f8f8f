package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/adrnf/langganin/internal/pkg/access"
	jwtpkg "github.com/adrnf/langganin/internal/pkg/jwt"
	"github.com/adrnf/langganin/internal/pkg/models"
	"github.com/adrnf/langganin/internal/utils"
)

const actorContextKey = "actor"

// JWTAuthMiddleware creates a middleware for JWT authentication. On
// success the request carries an access.Actor with a parsed role, so
// downstream code never dispatches on raw role strings.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			roleStr, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			role, err := access.ParseRole(fmt.Sprintf("%v", roleStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: unknown role")
			}

			c.Set("user_id", userID)
			c.Set(actorContextKey, access.Actor{ID: userID, Role: role})

			return next(c)
		}
	}
}

// ActorFromContext extracts the authenticated actor set by JWTAuthMiddleware.
func ActorFromContext(c echo.Context) (access.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(access.Actor)
	return actor, ok
}

// SetActor stores an actor on the context. Exposed for handler tests.
func SetActor(c echo.Context, actor access.Actor) {
	c.Set("user_id", actor.ID)
	c.Set(actorContextKey, actor)
}
