package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"orrery/core/config"
	"orrery/core/loader"
	"orrery/core/logger"
	"orrery/core/metrics"
	"orrery/core/middleware/rayid"
	"orrery/core/server"

	"orrery/feature/orrery"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the orrery web server",
	Long:  `Builds the solar system scene once and serves the page embedding it on GET /.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build the scene before accepting any connection
		svc, err := buildService(logg)
		if err != nil {
			logg.Fatal("Failed to build scene", zap.Error(err))
		}
		logg.Info("Scene built", zap.Int("traces", len(svc.Figure().Data)))

		collector := metrics.NewCollector()
		collector.SetSceneTraces(len(svc.Figure().Data))

		// 4. Initialize Fiber App
		app, err := newApp(cfg.Server, logg, svc, collector)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Start Servers
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		var metricsApp *fiber.App
		if cfg.Server.MetricsEnabled() {
			metricsApp = collector.NewApp()
			go func() {
				logg.Info("Starting metrics server", zap.String("port", cfg.Server.MetricsPort))
				if err := metricsApp.Listen(cfg.Server.MetricsAddr()); err != nil {
					logg.Fatal("Metrics server failed to start", zap.Error(err))
				}
			}()
		}

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		if metricsApp != nil {
			_ = metricsApp.Shutdown()
		}
	},
}

// buildService validates the catalog, builds the figure and renders the page.
func buildService(logg *zap.Logger) (*orrery.Service, error) {
	cat := orrery.SolarSystem()
	if err := orrery.Validate(cat); err != nil {
		return nil, err
	}
	return orrery.NewService(orrery.BuildScene(cat), logg)
}

// newApp wires middleware and features around an already built service.
func newApp(cfg server.Config, logg *zap.Logger, svc *orrery.Service, collector *metrics.Collector) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          server.ErrorHandler(cfg.Debug, logg),
	})

	// Recover outermost, then RayID so every later log line carries it
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Debug}))
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))
	app.Use(collector.Middleware())

	mgr := loader.NewManager(logg)
	mgr.Register(orrery.NewFeature(svc))
	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
}
