package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cinemood/cinemood/internal/api"
	"github.com/cinemood/cinemood/internal/config"
	"github.com/cinemood/cinemood/internal/database"
	"github.com/cinemood/cinemood/internal/logger"
	"github.com/cinemood/cinemood/internal/suggest/factory"
	"github.com/cinemood/cinemood/internal/websocket"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	// API keys commonly live in a .env next to the binary
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Path:   cfg.Logging.Path,
	})
	defer log.Close()

	db, err := database.New(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	hub := websocket.NewHub()
	go hub.Run()
	log.Stream().SetHub(hub)

	suggester, err := factory.New(cfg.Suggest)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure suggestion provider")
	}
	if suggester == nil {
		log.Warn().Msg("No suggestion provider configured, search is disabled")
	}

	server, err := api.NewServer(db.Conn(), hub, cfg, log.Logger, log.Stream(), suggester)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create API server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Server.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("Server error")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down cleanly")
		}
	}
}
