// handlers/reward_request.go
package handlers

import (
	"strconv"

	"game-event-system/middleware"
	"game-event-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRewardRequestRoutes(app *fiber.App, rewardRequestService *services.RewardRequestService) {
	securedGroup := app.Group("/reward-requests", middleware.UserContextMiddleware())

	// Submit a claim. The response is always the PENDING record — the
	// eligibility check settles in the background and clients poll for it.
	securedGroup.Post("/", func(c *fiber.Ctx) error {
		var req struct {
			EventID  string `json:"event_id"`
			RewardID string `json:"reward_id"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		if req.EventID == "" || req.RewardID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "event_id and reward_id are required"})
		}

		userID := c.Locals("user_id").(string)
		request, err := rewardRequestService.Submit(userID, req.EventID, req.RewardID)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(request)
	})

	securedGroup.Get("/me", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)
		requests, err := rewardRequestService.FindByUser(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list reward requests",
				"cause": err.Error(),
			})
		}
		return c.JSON(requests)
	})

	securedGroup.Get("/:id", func(c *fiber.Ctx) error {
		request, err := rewardRequestService.FindByID(c.Params("id"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(request)
	})

	// Full listing is for back-office roles only
	auditGroup := securedGroup.Group("/", middleware.RequireRoles(
		middleware.RoleOperator, middleware.RoleAuditor, middleware.RoleAdmin,
	))

	auditGroup.Get("/", func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "0"))
		size, _ := strconv.Atoi(c.Query("size", "20"))
		filterType := c.Query("type")
		target := c.Query("target")

		requests, err := rewardRequestService.FindAll(page, size, filterType, target)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list reward requests",
				"cause": err.Error(),
			})
		}
		return c.JSON(requests)
	})
}
