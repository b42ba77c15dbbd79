package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"game-event-system/handlers"
	"game-event-system/middleware"
	"game-event-system/models"
	"game-event-system/services"
	"game-event-system/utils"
	"game-event-system/workers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // 20MB, banners are the largest payload
	})

	// 🔐 GLOBAL: Only Gateway requests allowed — no exceptions
	app.Use(middleware.GatewayAuthMiddleware())

	allowedOriginsEnv := os.Getenv("ALLOWED_ORIGINS")
	if allowedOriginsEnv == "" {
		log.Println("⚠️  ALLOWED_ORIGINS environment variable not set, using default: http://localhost:3000")
		allowedOriginsEnv = "http://localhost:3000"
	}
	allowedOriginsList := strings.Split(allowedOriginsEnv, ",")
	for i, origin := range allowedOriginsList {
		allowedOriginsList[i] = strings.TrimSpace(origin)
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(allowedOriginsList, ","),
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH,HEAD",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With, X-Request-ID, X-User-ID, X-User-Roles, X-Service-Token",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	if err := utils.InitR2(); err != nil {
		log.Fatal("failed to initialize R2 client:", err)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Event{},
		&models.GameLog{},
		&models.Reward{},
		&models.RewardRequest{},
		&models.UserMirror{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	gameLogService := services.NewGameLogService(db)
	eventService := services.NewEventService(db)
	rewardService := services.NewRewardService(db)
	checkerRegistry := services.NewCheckerRegistry(gameLogService)
	rewardRequestService := services.NewRewardRequestService(db, eventService, checkerRegistry)

	authServerURL := os.Getenv("AUTH_SERVER_URL")
	if authServerURL == "" {
		log.Fatal("AUTH_SERVER_URL environment variable not set")
	}
	serviceToken := os.Getenv("EVENT_SERVICE_TOKEN")
	if serviceToken == "" {
		log.Fatal("EVENT_SERVICE_TOKEN environment variable not set")
	}

	syncWorker := workers.NewUserSyncWorker(db, authServerURL, "/api/v1/public/users", serviceToken)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("Starting User Sync Worker...")
		syncWorker.Start(ctx)
	}()

	eventService.StartExpiryScheduler()

	handlers.SetupEventRoutes(app, eventService, rewardService)
	handlers.SetupRewardRoutes(app, rewardService)
	handlers.SetupGameLogRoutes(app, gameLogService)
	handlers.SetupRewardRequestRoutes(app, rewardRequestService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}

	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("✅ Event service running on http://localhost:%s", port)
	log.Println("✅ User Sync Worker running")
	log.Println("✅ Event expiry scheduler running (every 1m)")
	log.Println("✅ GatewayAuthMiddleware enforced globally — all requests must come from Gateway")

	<-ctx.Done()
	log.Println("Shutting down server...")
}
