package routes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/btcwallet/btcwallet-service/internal/config"
	"github.com/btcwallet/btcwallet-service/internal/metrics"
	"github.com/btcwallet/btcwallet-service/internal/middleware"
	"github.com/btcwallet/btcwallet-service/internal/wallet"
)

// BasePath prefixes every wallet endpoint.
const BasePath = "/api/btcwallet"

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg     config.Config
	Store   wallet.Store
	Cache   *redis.Client
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.Store == nil {
		return fmt.Errorf("wallet store is required")
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(cors.Config{
		AllowOrigins: d.Cfg.AllowOrigins,
		AllowMethods: strings.Join([]string{fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions}, ","),
	}))
	if isDev(d.Cfg.AppEnv) {
		// Plain text access log in desired format: [HH:MM:SS] 200 -  145ms METHOD /path
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}
	app.Use(middleware.Audit(d.Logger))
	if d.Metrics != nil {
		app.Use(d.Metrics.Middleware())
		app.Get("/metrics", d.Metrics.Handler())
	}

	RegisterHealthRoutes(app, d)
	if err := RegisterDocsRoutes(app, d); err != nil {
		return err
	}

	api := app.Group(BasePath)
	if d.Cache != nil {
		api.Use(middleware.ResponseCache(d.Cache, d.Cfg.CacheTTL, d.Logger))
	}
	RegisterWalletRoutes(api, wallet.NewHandler(d.Store))

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local":
		return true
	default:
		return false
	}
}
