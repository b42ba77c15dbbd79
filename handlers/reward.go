// handlers/reward.go
package handlers

import (
	"game-event-system/middleware"
	"game-event-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRewardRoutes(app *fiber.App, rewardService *services.RewardService) {
	securedGroup := app.Group("/rewards", middleware.UserContextMiddleware())

	securedGroup.Get("/:id", func(c *fiber.Ctx) error {
		reward, err := rewardService.FindByID(c.Params("id"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(reward)
	})

	opGroup := securedGroup.Group("/", middleware.RequireRoles(middleware.RoleOperator, middleware.RoleAdmin))

	opGroup.Post("/", func(c *fiber.Ctx) error {
		var req services.CreateRewardInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}

		reward, err := rewardService.Create(req)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(reward)
	})
}
