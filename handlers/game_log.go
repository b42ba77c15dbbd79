// handlers/game_log.go
package handlers

import (
	"strconv"

	"game-event-system/middleware"
	"game-event-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupGameLogRoutes(app *fiber.App, gameLogService *services.GameLogService) {
	securedGroup := app.Group("/game-logs", middleware.UserContextMiddleware())

	// Game servers submit logs on behalf of the authenticated user
	securedGroup.Post("/", func(c *fiber.Ctx) error {
		var req services.CreateLogInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.UserID == "" {
			req.UserID = c.Locals("user_id").(string)
		}

		entry, err := gameLogService.CreateLog(req)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(entry)
	})

	auditGroup := securedGroup.Group("/", middleware.RequireRoles(
		middleware.RoleOperator, middleware.RoleAuditor, middleware.RoleAdmin,
	))

	auditGroup.Get("/", func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "0"))
		size, _ := strconv.Atoi(c.Query("size", "20"))

		logs, err := gameLogService.FindAll(page, size)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list game logs",
				"cause": err.Error(),
			})
		}
		return c.JSON(logs)
	})
}
