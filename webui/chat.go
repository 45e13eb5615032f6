package webui

import (
	"context"
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/mudler/xlog"

	"github.com/Sain-Biswas/gemini-bot/core/sse"
	"github.com/Sain-Biswas/gemini-bot/core/types"
)

// PostChat runs one chat turn and streams the model's progress as
// server-sent events. Persistence happens after the stream completes; a
// client abort cancels the turn and skips the save.
func (a *App) PostChat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		var payload struct {
			ID       string         `json:"id"`
			Messages types.Messages `json:"messages"`
		}
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}
		if payload.ID == "" {
			return c.Status(fiber.StatusBadRequest).SendString("Chat id is required")
		}

		controller := a.controller
		chatID := payload.ID
		messages := payload.Messages

		sse.Stream(c, func(ctx context.Context, send func(sse.Envelope)) {
			emit := func(event string, data interface{}) {
				send(sse.NewMessage(mustStringify(data)).WithEvent(event))
			}
			if err := controller.Run(ctx, user, chatID, messages, emit); err != nil {
				xlog.Error("Chat turn failed", "chat", chatID, "error", err)
			}
		})
		return nil
	}
}

// GetChat returns a transcript to its owner. The id presence is guaranteed
// by the requireChatID guard on the route.
func (a *App) GetChat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")

		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		chat, err := a.config.Chats.Get(c.Context(), id)
		if errors.Is(err, types.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}
		if chat.UserID != user.ID {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		return c.JSON(chat)
	}
}

// History lists the caller's chats, newest first.
func (a *App) History() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		chats, err := a.config.Chats.ByUser(c.Context(), user.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}
		return c.JSON(chats)
	}
}

// DeleteChat removes a transcript. Only the owner may delete; the
// requireChatID guard on the route answers 404 for a missing id before the
// session is even looked at.
func (a *App) DeleteChat() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id := c.Query("id")

		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		chat, err := a.config.Chats.Get(c.Context(), id)
		if errors.Is(err, types.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}
		if chat.UserID != user.ID {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		if err := a.config.Chats.Delete(c.Context(), id); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}

		return c.SendString("Chat deleted")
	}
}
