package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// Header is where clients send the API key.
const Header = "X-API-Key"

// Config holds the expected API key. An empty key disables the check.
type Config struct {
	ApiKey string
}

// New protects every route behind it with the configured API key.
func New(cfg Config) fiber.Handler {
	if cfg.ApiKey == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	expected := []byte(cfg.ApiKey)
	return keyauth.New(keyauth.Config{
		KeyLookup: "header:" + Header,
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			if subtle.ConstantTimeCompare([]byte(key), expected) == 1 {
				return true, nil
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing API key"})
		},
	})
}
