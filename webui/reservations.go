package webui

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mudler/xlog"

	"github.com/Sain-Biswas/gemini-bot/core/types"
)

// GetReservation returns a reservation to its owner. verifyPayment inside
// the chat reads the same row; this endpoint serves the payment UI.
func (a *App) GetReservation() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Query("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}

		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		reservation, err := a.config.Reservations.Get(c.Context(), id)
		if errors.Is(err, types.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}
		if reservation.UserID != user.ID {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		return c.JSON(reservation)
	}
}

// CompletePayment is the out-of-band payment callback: it flips the payment
// flag and nothing else. The chat flow observes the change through
// verifyPayment on its next call.
func (a *App) CompletePayment() func(c *fiber.Ctx) error {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Query("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}

		user, ok := currentUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		reservation, err := a.config.Reservations.Get(c.Context(), id)
		if errors.Is(err, types.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Not Found")
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}
		if reservation.UserID != user.ID {
			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		if err := a.config.Reservations.CompletePayment(c.Context(), id); err != nil {
			xlog.Error("Failed to complete payment", "reservation", id, "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while processing your request")
		}

		xlog.Info("Payment completed", "reservation", id, "user", user.ID)
		return statusJSONMessage(c, "ok")
	}
}
