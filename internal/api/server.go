// Package api wires the HTTP surface: echo server, middleware, and routes.
package api

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cinemood/cinemood/internal/config"
	"github.com/cinemood/cinemood/internal/discovery"
	"github.com/cinemood/cinemood/internal/kvstore"
	"github.com/cinemood/cinemood/internal/logger"
	"github.com/cinemood/cinemood/internal/metadata"
	"github.com/cinemood/cinemood/internal/metadata/mock"
	"github.com/cinemood/cinemood/internal/scheduler"
	"github.com/cinemood/cinemood/internal/suggest"
	"github.com/cinemood/cinemood/internal/watchlist"
	"github.com/cinemood/cinemood/internal/websocket"
)

// Server handles HTTP requests for the CineMood API.
type Server struct {
	echo   *echo.Echo
	hub    *websocket.Hub
	logger zerolog.Logger
	cfg    *config.Config
	stream *logger.Stream

	watchlistStore   *watchlist.Store
	metadataService  *metadata.Service
	discoveryService *discovery.Service
	scheduler        *scheduler.Scheduler
	suggester        suggest.Provider
}

// NewServer creates the API server and its services. suggester may be nil
// when no provider is configured; searches then degrade to "no suggestions".
func NewServer(db *sql.DB, hub *websocket.Hub, cfg *config.Config, log zerolog.Logger, stream *logger.Stream, suggester suggest.Provider) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		hub:       hub,
		logger:    log,
		cfg:       cfg,
		stream:    stream,
		suggester: suggester,
	}

	kv := kvstore.NewSQLite(db)
	s.watchlistStore = watchlist.NewStore(kv, log)

	if cfg.DeveloperMode {
		s.metadataService = metadata.NewServiceWithClient(mock.NewOMDBClient(), log)
	} else {
		s.metadataService = metadata.NewService(cfg.Metadata, log)
	}

	s.discoveryService = discovery.NewService(suggester, s.metadataService, log)

	sched, err := scheduler.New(log)
	if err != nil {
		return nil, err
	}
	s.scheduler = sched

	if err := sched.RegisterTask(scheduler.TaskConfig{
		ID:         "recommended-refresh",
		Name:       "Refresh recommendations",
		Cron:       "*/30 * * * *",
		Func:       s.discoveryService.RefreshRecommended,
		RunOnStart: true,
	}); err != nil {
		return nil, err
	}

	s.setupMiddleware()
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/ws", s.hub.HandleWebSocket)

	v1 := s.echo.Group("/api/v1")

	watchlist.NewHandlers(s.watchlistStore, s.hub).RegisterRoutes(v1.Group("/watchlist"))
	discovery.NewHandlers(s.discoveryService).RegisterRoutes(v1)

	system := v1.Group("/system")
	system.GET("/status", s.handleStatus)
	system.GET("/logs", s.handleLogs)
	system.GET("/tasks", s.handleTasks)
	system.POST("/tasks/:id/run", s.handleRunTask)
}

// Start runs the scheduler and the HTTP listener. It blocks until the
// server stops.
func (s *Server) Start(address string) error {
	s.scheduler.Start()
	s.logger.Info().Str("address", address).Msg("Starting API server")

	if err := s.echo.Start(address); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the scheduler and drains the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.scheduler.Stop(); err != nil {
		s.logger.Warn().Err(err).Msg("Failed to stop scheduler")
	}
	return s.echo.Shutdown(ctx)
}
