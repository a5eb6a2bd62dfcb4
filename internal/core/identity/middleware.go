package identity

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// localsKey is where the middleware stores the caller identity on the request.
const localsKey = "caller_identity"

// Middleware authenticates requests from a Bearer JWT signed with the shared
// secret. Requests without an Authorization header proceed as anonymous; the
// domain layer decides which operations anonymous callers may perform.
// A token that is present but fails verification is rejected outright.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			c.Locals(localsKey, Anonymous)
			return c.Next()
		}

		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return unauthorized(c, "authorization header must be a Bearer token")
		}

		var claims jwt.RegisteredClaims
		_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			return unauthorized(c, "invalid token")
		}

		if claims.Subject == "" {
			return unauthorized(c, "token has no subject")
		}

		c.Locals(localsKey, ID(claims.Subject))
		return c.Next()
	}
}

// FromCtx returns the caller identity set by the middleware, or Anonymous
// when the middleware did not run.
func FromCtx(c *fiber.Ctx) ID {
	id, ok := c.Locals(localsKey).(ID)
	if !ok {
		return Anonymous
	}
	return id
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": msg,
	})
}
