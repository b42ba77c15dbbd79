// handlers/event.go
package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"

	"game-event-system/middleware"
	"game-event-system/services"
	"game-event-system/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func SetupEventRoutes(app *fiber.App, eventService *services.EventService, rewardService *services.RewardService) {
	securedGroup := app.Group("/events", middleware.UserContextMiddleware())

	// Any authenticated user can browse events
	securedGroup.Get("/", func(c *fiber.Ctx) error {
		page, _ := strconv.Atoi(c.Query("page", "0"))
		size, _ := strconv.Atoi(c.Query("size", "20"))

		events, err := eventService.FindAll(page, size)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list events",
				"cause": err.Error(),
			})
		}
		return c.JSON(events)
	})

	securedGroup.Get("/:id", func(c *fiber.Ctx) error {
		event, err := eventService.FindByID(c.Params("id"))
		if err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(event)
	})

	securedGroup.Get("/:id/rewards", func(c *fiber.Ctx) error {
		if _, err := eventService.FindByID(c.Params("id")); err != nil {
			return errorJSON(c, err)
		}
		rewards, err := rewardService.FindByEvent(c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to list rewards",
				"cause": err.Error(),
			})
		}
		return c.JSON(rewards)
	})

	// Creation and removal are operator/admin only
	opGroup := securedGroup.Group("/", middleware.RequireRoles(middleware.RoleOperator, middleware.RoleAdmin))

	opGroup.Post("/", func(c *fiber.Ctx) error {
		var req services.CreateEventInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
		}
		req.UserID = c.Locals("user_id").(string)

		event, err := eventService.Create(req)
		if err != nil {
			return errorJSON(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(event)
	})

	opGroup.Delete("/:id", func(c *fiber.Ctx) error {
		if err := eventService.Remove(c.Params("id")); err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(fiber.Map{"message": "event removed"})
	})

	// Banner image goes to R2; only the resulting CDN URL is stored
	opGroup.Post("/:id/banner", func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := eventService.FindByID(id); err != nil {
			return errorJSON(c, err)
		}

		fileHeader, err := c.FormFile("banner")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "banner file is required"})
		}

		key := fmt.Sprintf("events/%s/banner-%s%s", id, uuid.NewString(), filepath.Ext(fileHeader.Filename))
		url, err := utils.UploadToR2(c.Context(), key, fileHeader)
		if err != nil {
			log.Printf("❌ Banner upload failed for event %s: %v", id, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "banner upload failed"})
		}

		if err := eventService.SetBannerURL(id, url); err != nil {
			return errorJSON(c, err)
		}
		return c.JSON(fiber.Map{"banner_url": url})
	})
}
