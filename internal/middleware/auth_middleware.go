package middleware

import (
	"strings"

	"github.com/SWATISONAWANE63/resume-ai-matchmaker-29/internal/apperror"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const UserIDKey = "userID"

// Auth resolves the bearer credential to the calling principal and stores the
// user id in the request locals. The token subject must be the user's uuid.
func Auth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return apperror.New(apperror.Unauthorized, "missing bearer token")
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return apperror.Wrap(apperror.Unauthorized, "invalid token", err)
		}

		subject, err := token.Claims.GetSubject()
		if err != nil {
			return apperror.Wrap(apperror.Unauthorized, "invalid token subject", err)
		}
		userID, err := uuid.Parse(subject)
		if err != nil {
			return apperror.Wrap(apperror.Unauthorized, "invalid token subject", err)
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated caller set by Auth.
func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	userID, ok := c.Locals(UserIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, apperror.New(apperror.Unauthorized, "unauthorized")
	}
	return userID, nil
}
