package handlers

import (
	"errors"

	"game-event-system/services"

	"github.com/gofiber/fiber/v2"
)

// statusForError maps service errors onto HTTP statuses. Anything unmapped is
// a 500 — including ErrUnsupportedEventType, which is a wiring bug we want to
// show up in monitoring, not a client mistake.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrRewardNotFound),
		errors.Is(err, services.ErrRewardRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrDuplicateRewardRequest):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrLoginStreakExceeded),
		errors.Is(err, services.ErrMonsterIDRequired):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}
