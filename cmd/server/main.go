package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/worldscribe/worldscribe/internal/assets"
	"github.com/worldscribe/worldscribe/internal/config"
	"github.com/worldscribe/worldscribe/internal/database"
	"github.com/worldscribe/worldscribe/internal/handlers"
	"github.com/worldscribe/worldscribe/internal/middleware"
	"github.com/worldscribe/worldscribe/internal/types"

	_ "github.com/worldscribe/worldscribe/docs/api" // Swagger docs
)

// @title WorldScribe API
// @version 1.0.0
// @description Content graph service for world-building documents
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/worldscribe/worldscribe

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Image asset storage
	store, err := assets.NewStore(cfg.UploadDir, cfg.UploadPrefix)
	if err != nil {
		log.Fatalf("Failed to prepare asset storage: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("worldscribe")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Uploaded images are served directly off disk
	app.Static(cfg.UploadPrefix, cfg.UploadDir)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Cfg: cfg, Store: store}
	worldHandler := &handlers.WorldHandler{DB: db, Store: store}
	longreadHandler := &handlers.LongReadHandler{DB: db, Store: store}
	chapterHandler := &handlers.ChapterHandler{DB: db, Store: store}
	blockHandler := &handlers.BlockContentHandler{DB: db, Store: store}
	worldObjHandler := &handlers.WorldObjHandler{DB: db, Store: store}
	healthHandler := &handlers.HealthHandler{DB: db, Cfg: cfg}

	auth := middleware.RequireAuth(cfg)

	// Health
	api.Get("/health", healthHandler.GetHealth)

	// Identity routes
	api.Post("/auth/register", authHandler.Register)
	api.Post("/auth/login", authHandler.Login)
	api.Put("/auth/password", auth, authHandler.ChangePassword)
	api.Get("/auth/whoami", auth, authHandler.WhoAmI)
	api.Delete("/auth/user", auth, authHandler.DeleteUser)

	// World routes (public GET, owner-gated mutations)
	api.Get("/worlds", worldHandler.GetWorlds)
	api.Get("/worlds/:id", worldHandler.GetWorld)
	api.Post("/worlds", auth, worldHandler.CreateWorld)
	api.Put("/worlds/:id", auth, worldHandler.UpdateWorld)
	api.Delete("/worlds/:id", auth, worldHandler.DeleteWorld)
	api.Post("/worlds/:id/image", auth, worldHandler.EditWorldImage)

	// Longread routes
	api.Get("/longreads", longreadHandler.GetLongReads)
	api.Get("/worlds/:id/longreads", longreadHandler.GetWorldLongReads)
	api.Get("/longreads/:id", longreadHandler.GetLongRead)
	api.Get("/longreads/:id/map", longreadHandler.GetLongReadMap)
	api.Get("/longreads/:id/timeline", longreadHandler.GetLongReadTimeline)
	api.Post("/worlds/:id/longreads", auth, longreadHandler.CreateLongRead)
	api.Put("/longreads/:id", auth, longreadHandler.UpdateLongRead)
	api.Delete("/longreads/:id", auth, longreadHandler.DeleteLongRead)
	api.Post("/longreads/:id/image", auth, longreadHandler.EditLongReadImage)
	api.Post("/longreads/:id/map", auth, longreadHandler.EditLongReadMap)
	api.Post("/longreads/:id/timeline", auth, longreadHandler.EditLongReadTimeline)

	// Chapter routes
	api.Get("/longreads/:id/chapters", chapterHandler.GetLongReadChapters)
	api.Get("/chapters/:id", chapterHandler.GetChapter)
	api.Post("/longreads/:id/chapters", auth, chapterHandler.CreateChapter)
	api.Put("/chapters/:id", auth, chapterHandler.UpdateChapter)
	api.Delete("/chapters/:id", auth, chapterHandler.DeleteChapter)

	// Block content routes
	api.Get("/chapters/:id/blocks", blockHandler.GetChapterBlocks)
	api.Get("/longreads/:id/blocks", blockHandler.GetLongReadBlocks)
	api.Get("/blocks/:id", blockHandler.GetBlock)
	api.Post("/chapters/:id/blocks", auth, blockHandler.CreateBlock)
	api.Put("/blocks/:id", auth, blockHandler.UpdateBlock)
	api.Delete("/blocks/:id", auth, blockHandler.DeleteBlock)
	api.Put("/blocks/:id/event", auth, blockHandler.SetBlockEvent)
	api.Delete("/blocks/:id/event", auth, blockHandler.ClearBlockEvent)
	api.Post("/blocks/:id/image", auth, blockHandler.EditBlockImage)

	// Block to world object associations
	api.Get("/blocks/:id/worldobjs", blockHandler.GetBlockWorldObjs)
	api.Put("/blocks/:id/worldobjs/:worldobjId", auth, blockHandler.AttachWorldObj)
	api.Delete("/blocks/:id/worldobjs/:worldobjId", auth, blockHandler.DetachWorldObj)

	// World object routes
	api.Get("/worlds/:id/worldobjs", worldObjHandler.GetWorldWorldObjs)
	api.Get("/worldobjs/:id", worldObjHandler.GetWorldObj)
	api.Get("/worldobjs/:id/blocks", worldObjHandler.GetWorldObjBlocks)
	api.Post("/worlds/:id/worldobjs", auth, worldObjHandler.CreateWorldObj)
	api.Put("/worldobjs/:id", auth, worldObjHandler.UpdateWorldObj)
	api.Delete("/worldobjs/:id", auth, worldObjHandler.DeleteWorldObj)
	api.Post("/worldobjs/:id/image", auth, worldObjHandler.EditWorldObjImage)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var custom *types.CustomError
	if errors.As(err, &custom) {
		code = custom.Code
		message = custom.Message
		errorType = custom.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
