package api

import (
	"home-energy-advisor/docs"
	"home-energy-advisor/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	homeHandler *handlers.HomeHandler,
	adviceHandler *handlers.AdviceHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	// Swagger - importing docs registers the spec through init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Home Energy Advisor API",
			"docs":    "/swagger/index.html",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})
	app.Get("/health/llm", adviceHandler.LLMHealth)

	// API routes
	api := app.Group("/api")

	homes := api.Group("/homes")
	homes.Post("", homeHandler.CreateHome)
	homes.Get("/:id", homeHandler.GetHome)
	homes.Put("/:id", homeHandler.UpdateHome)
	homes.Delete("/:id", homeHandler.DeleteHome)
	homes.Post("/:id/advice", adviceHandler.GenerateAdvice)

	return app
}
