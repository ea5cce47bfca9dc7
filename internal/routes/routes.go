package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tracepoint/tracepoint/internal/auth"
	"github.com/tracepoint/tracepoint/internal/checkin"
	"github.com/tracepoint/tracepoint/internal/config"
	"github.com/tracepoint/tracepoint/internal/exposure"
	"github.com/tracepoint/tracepoint/internal/httpx"
	"github.com/tracepoint/tracepoint/internal/middleware"
	"github.com/tracepoint/tracepoint/internal/shop"
	"github.com/tracepoint/tracepoint/internal/user"
)

const (
	usersCollection    = "users"
	checkinsCollection = "checkins"
	shopsCollection    = "shops"
)

// Deps aggregates shared dependencies required to wire routes. A nil DB falls
// back to in-memory stores, allowed only in development and tests.
type Deps struct {
	Cfg    config.Config
	DB     *mongo.Database
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if d.DB == nil && !isDev(d.Cfg.Env) {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.Env)
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	var (
		userRepo    user.Repository
		checkinRepo checkin.Repository
		shopRepo    shop.Repository
	)
	if d.DB != nil {
		userRepo = user.NewMongoRepository(d.DB.Collection(usersCollection))
		checkinRepo = checkin.NewMongoRepository(d.DB.Collection(checkinsCollection))
		shopRepo = shop.NewMongoRepository(d.DB.Collection(shopsCollection))
	} else {
		userRepo = user.NewMemoryRepository()
		checkinRepo = checkin.NewMemoryRepository()
		shopRepo = shop.NewMemoryRepository()
	}

	tokens := auth.NewTokens(d.Cfg.JWTSecret, d.Cfg.TokenTTL)

	userSvc := user.NewService(userRepo, checkinRepo, tokens)
	checkinSvc := checkin.NewService(checkinRepo)
	shopSvc := shop.NewService(shopRepo)
	exposureSvc := exposure.NewService(userRepo, checkinRepo, d.Logger)

	userHandler := user.NewHandler(userSvc)
	checkinHandler := checkin.NewHandler(checkinSvc)
	shopHandler := shop.NewHandler(shopSvc)
	exposureHandler := exposure.NewHandler(exposureSvc)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{"message": "welcome"})
	})

	guard := middleware.BearerAuth(tokens)
	loginLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginPerMinute)

	RegisterUserRoutes(app, userHandler, exposureHandler, guard, loginLimiter)
	RegisterCheckInRoutes(app, checkinHandler, guard)
	RegisterShopRoutes(app, shopHandler, guard)

	// Unknown routes fall through to the shared error envelope.
	app.Use(func(c *fiber.Ctx) error {
		return httpx.NotFound("not found")
	})

	return nil
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}
