package webui

import (
	"encoding/json"
	"net/http"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sain-Biswas/gemini-bot/core/session"
	"github.com/Sain-Biswas/gemini-bot/core/types"
	"github.com/Sain-Biswas/gemini-bot/services"
)

type App struct {
	config     *Config
	controller *session.Controller
	*fiber.App
}

func NewApp(opts ...Option) *App {
	config := NewConfig(opts...)

	webapp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	tools := services.Tools(config.Reservations, config.WeatherURL)

	a := &App{
		config: config,
		controller: session.NewController(
			config.Client,
			config.Model,
			config.SystemPrompt,
			tools,
			config.Chats,
			config.Usage,
		),
		App: webapp,
	}

	a.registerRoutes(webapp)

	return a
}

func errorJSONMessage(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusInternalServerError).JSON(struct {
		Error string `json:"error"`
	}{Error: message})
}

func statusJSONMessage(c *fiber.Ctx, message string) error {
	return c.JSON(struct {
		Status string `json:"status"`
	}{Status: message})
}

func mustStringify(data interface{}) string {
	b, _ := json.Marshal(data)
	return string(b)
}

// currentUser reads the identity stashed by RequireUser.
func currentUser(c *fiber.Ctx) (types.UserRef, bool) {
	idStr, ok := c.Locals("id").(string)
	if !ok || idStr == "" {
		return types.UserRef{}, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return types.UserRef{}, false
	}
	email, _ := c.Locals("email").(string)
	return types.UserRef{ID: id, Email: email}, true
}
