package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	activityHttp "herring/internal/activity/adapters/http/fiber"
	puzzlesHttp "herring/internal/puzzles/adapters/http/fiber"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

const pingTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Options struct {
	AllowOrigins string
}

type Handlers struct {
	Puzzles  *puzzlesHttp.PuzzleHandler
	Activity *activityHttp.ActivityHandler
}

// New returns a fiber app with the shared middleware stack and the health
// and docs endpoints. Feature routes are added with Register.
func New(logger *slog.Logger, db Pinger, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(accessLog(logger))
	app.Use(recover.New())
	if opts.AllowOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: opts.AllowOrigins,
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET, POST, OPTIONS",
		}))
	}

	app.Get("/healthz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", "error", err)
			return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/docs/*", fiberSwagger.WrapHandler)

	return app
}

func Register(app *fiber.App, h Handlers) {
	app.Get("/puzzles", h.Puzzles.ListPuzzles)
	app.Post("/puzzles/:id", h.Puzzles.UpdatePuzzle)
	app.Post("/rounds", h.Puzzles.CreateRound)
	app.Post("/rounds/:id/puzzles", h.Puzzles.CreatePuzzle)
	app.Get("/s/:id", h.Puzzles.Spreadsheet)

	app.Get("/puzzles/:slug/activity", h.Activity.GetActivity)
	app.Post("/puzzles/:slug/activity", h.Activity.RecordActivity)
	app.Post("/puzzles/:slug/members", h.Activity.UpdateMembership)
	app.Post("/activity/bulk", h.Activity.RecordActivityBulk)
}

func accessLog(logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = http.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		logger.Info("request completed",
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}

func errorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{
				"error":   "http_error",
				"message": fe.Message,
			})
		}

		logger.Error("unhandled error", "path", c.Path(), "error", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal_server_error",
		})
	}
}
