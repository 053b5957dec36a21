// Package server exposes the processed archive over a small JSON API the
// site's render layer consumes.
package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"photo_archive/internal/processor"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
}

// Server exposes the Fiber application over the archive holder.
type Server struct {
	app    *fiber.App
	holder *processor.Holder
	cfg    Config
	logger *slog.Logger
}

// New wires handlers and middleware.
func New(cfg Config, holder *processor.Holder, logger *slog.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	srv := &Server{app: app, holder: holder, cfg: cfg, logger: logger.With("component", "server")}
	srv.registerRoutes()
	return srv
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	s.logger.Info("archive api listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// App returns the underlying fiber application, used by handler tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Get("/days", s.handleDays)
	api.Get("/weeks", s.handleWeeks)
	api.Get("/sequence", s.handleSequence)
	api.Get("/stats", s.handleStats)
}

func (s *Server) handleDays(c *fiber.Ctx) error {
	archive := s.holder.Load()
	return c.JSON(fiber.Map{
		"data": archive.Days,
		"meta": fiber.Map{"count": len(archive.Days)},
	})
}

func (s *Server) handleWeeks(c *fiber.Ctx) error {
	archive := s.holder.Load()
	return c.JSON(fiber.Map{
		"data": archive.Weeks,
		"meta": fiber.Map{"count": len(archive.Weeks)},
	})
}

func (s *Server) handleSequence(c *fiber.Ctx) error {
	archive := s.holder.Load()
	return c.JSON(fiber.Map{
		"data": archive.Sequence,
		"meta": fiber.Map{"count": len(archive.Sequence)},
	})
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"data": s.holder.Stats(),
	})
}
