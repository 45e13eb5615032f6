package webui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"github.com/mudler/xlog"
)

// SessionCookie is the cookie holding the signed session token.
const SessionCookie = "session-token"

type SessionClaims struct {
	Email      string `json:"email"`
	Expiration int64  `json:"exp"`
}

func (c *SessionClaims) Valid() error {
	if c.Email == "" {
		return errors.New("email claim is required")
	}
	if c.Expiration > 0 && c.Expiration < time.Now().Unix() {
		return errors.New("token is expired")
	}
	return nil
}

// RequireUser verifies the session token and resolves the caller to a User
// row, creating one on first sight. Identity lands in c.Locals; handlers
// never see unauthenticated requests.
func (a *App) RequireUser() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		tokenStr := c.Cookies(SessionCookie)
		if tokenStr == "" {
			if auth := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(auth, "Bearer ") {
				tokenStr = strings.TrimPrefix(auth, "Bearer ")
			}
		}
		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(a.config.AuthSecret), nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		user, err := a.config.Users.FindOrCreateByEmail(c.Context(), claims.Email)
		if err != nil {
			xlog.Error("Failed to resolve session user", "email", claims.Email, "error", err)
			return errorJSONMessage(c, "DB error while fetching user")
		}

		c.Locals("id", user.ID.String())
		c.Locals("email", user.Email)

		return c.Next()
	}
}
