package cmd

import (
	"context"
	"log"
	"time"

	"creative-sync/core/loader"
	"creative-sync/core/logger"
	"creative-sync/core/metrics"
	"creative-sync/core/middleware/auth"
	"creative-sync/core/middleware/rayid"
	"creative-sync/feature/logo"
	"creative-sync/feature/processing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "creative-sync/docs/swagger"
)

// @title Creative Sync API
// @version 1.0
// @description Syncs a Google Sheet feed to DV360 native creatives and line items.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the creative sync server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Wire services. Clients outlive the signal so in-flight runs can drain.
		ctx := cmd.Context()
		prom := metrics.NewPrometheus()
		a, err := newApp(context.WithoutCancel(ctx), prom)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer a.Close()
		logg := a.logger
		zap.ReplaceGlobals(logg)

		if err := a.cfg.Server.Validate(); err != nil {
			logg.Fatal("Invalid server configuration", zap.Error(err))
		}

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(processing.NewFeature(a.feed))
		mgr.Register(logo.NewFeature(a.logo))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Metrics and Swagger (Public)
		mountPublic(app, prom, a.cfg.Metrics.Enabled)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		// 4. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			if err := app.Listen(a.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 6. Graceful Shutdown
		<-ctx.Done()
		logg.Info("Shutting down server...")
		timeout := time.Duration(a.cfg.Server.ShutdownTimeoutSeconds) * time.Second
		if err := app.ShutdownWithTimeout(timeout); err != nil {
			logg.Warn("Shutdown did not complete", zap.Error(err))
		}
	},
}

// mountPublic registers the routes served without an API key.
func mountPublic(app *fiber.App, prom *metrics.Prometheus, withMetrics bool) {
	if withMetrics {
		app.Get("/metrics", adaptor.HTTPHandler(prom.Handler()))
	}
	app.Get("/swagger/*", swagger.HandlerDefault)
}

func init() {
	RootCmd.AddCommand(startCmd)
}
