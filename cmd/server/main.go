package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/config"
	"github.com/example/jungleyourself/internal/database"
	"github.com/example/jungleyourself/internal/middleware"
	"github.com/example/jungleyourself/internal/routes"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	cat, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}

	db, err := database.Connect(cfg.CartDBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.CartDBPath).Msg("failed to open cart cache")
	}

	app := fiber.New(fiber.Config{
		AppName: "Jungle Yourself Backend",
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))

	if err := routes.Register(app, cat, db, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	log.Info().Str("port", cfg.AppPort).Msg("starting server")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatal().Err(err).Msg("fiber.Listen error")
	}
}
