package routes

import (
	"time"

	"github.com/lostfound-vn/backend/internal/config"
	"github.com/lostfound-vn/backend/internal/handlers"
	"github.com/lostfound-vn/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	catalogHandler *handlers.CatalogHandler,
	postHandler *handlers.PostHandler,
	moderationHandler *handlers.ModerationHandler,
) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)
	api.Get("/packages", catalogHandler.ListPackages)

	// Public listings
	api.Get("/posts/public", postHandler.ListPublic)
	api.Get("/posts/found", postHandler.ListFound)
	api.Get("/posts/resolved", postHandler.ListResolved)

	// Post lifecycle (JWT required)
	jwt := middleware.JWTProtected(cfg)
	api.Post("/posts", jwt, postHandler.Create)
	api.Post("/posts/:id/upgrade", jwt, postHandler.Upgrade)
	api.Post("/posts/:id/renew", jwt, postHandler.Renew)
	api.Post("/posts/:id/boost", jwt, postHandler.Boost)
	api.Post("/posts/:id/resolve", jwt, postHandler.Resolve)
	api.Delete("/posts/:id", jwt, postHandler.Delete)

	// Account stats
	api.Get("/users/me/package-stats", jwt, postHandler.PackageStats)
	api.Get("/users/me/boost-stats", jwt, postHandler.BoostStats)

	// Admin moderation panel
	admin := api.Group("/admin", jwt, middleware.AdminRequired())
	admin.Get("/moderation/posts", moderationHandler.PendingPosts)
	admin.Get("/moderation/payments", moderationHandler.PendingPayments)
	admin.Put("/moderation/posts/:id", moderationHandler.Moderate)
}
