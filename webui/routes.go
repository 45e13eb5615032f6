package webui

import (
	"crypto/subtle"
	"errors"

	"github.com/dave-gray101/v2keyauth"
	fiber "github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

func (a *App) registerRoutes(webapp *fiber.App) {
	if len(a.config.ApiKeys) > 0 {
		kaConfig, err := GetKeyAuthConfig(a.config.ApiKeys)
		if err != nil || kaConfig == nil {
			panic(err)
		}
		webapp.Use(v2keyauth.New(*kaConfig))
	}

	webapp.Post("/chat", a.RequireUser(), a.PostChat())
	webapp.Get("/chat", requireChatID(), a.RequireUser(), a.GetChat())
	webapp.Delete("/chat", requireChatID(), a.RequireUser(), a.DeleteChat())
	webapp.Get("/history", a.RequireUser(), a.History())

	webapp.Get("/reservation", a.RequireUser(), a.GetReservation())
	webapp.Patch("/reservation", a.RequireUser(), a.CompletePayment())
}

// requireChatID rejects chat lookups without an id before any session check:
// a missing id is 404 even for unauthenticated callers.
func requireChatID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Query("id") == "" {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		return c.Next()
	}
}

// GetKeyAuthConfig builds the optional static API key layer used by
// service-to-service callers. Session auth still applies behind it.
func GetKeyAuthConfig(apiKeys []string) (*v2keyauth.Config, error) {
	customLookup, err := v2keyauth.MultipleKeySourceLookup([]string{"header:Authorization", "header:x-api-key"}, keyauth.ConfigDefault.AuthScheme)
	if err != nil {
		return nil, err
	}

	return &v2keyauth.Config{
		CustomKeyLookup: customLookup,
		Next:            func(c *fiber.Ctx) bool { return false },
		Validator:       getApiKeyValidationFunction(apiKeys),
		ErrorHandler:    getApiKeyErrorHandler(apiKeys),
		AuthScheme:      "Bearer",
	}, nil
}

func getApiKeyErrorHandler(apiKeys []string) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		if errors.Is(err, v2keyauth.ErrMissingOrMalformedAPIKey) {
			if len(apiKeys) == 0 {
				return ctx.Next() // if no keys are set up, any error we get here is not an error.
			}
			ctx.Set("WWW-Authenticate", "Bearer")
			return ctx.SendStatus(401)
		}
		return err
	}
}

func getApiKeyValidationFunction(apiKeys []string) func(*fiber.Ctx, string) (bool, error) {
	return func(ctx *fiber.Ctx, apiKey string) (bool, error) {
		if len(apiKeys) == 0 {
			return true, nil // If no keys are setup, accept everything
		}
		for _, validKey := range apiKeys {
			if subtle.ConstantTimeCompare([]byte(apiKey), []byte(validKey)) == 1 {
				return true, nil
			}
		}
		return false, v2keyauth.ErrMissingOrMalformedAPIKey
	}
}
