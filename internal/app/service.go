package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"records-service/internal/auth"
	"records-service/internal/config"
	"records-service/internal/http"
	"records-service/internal/repository/postgres"
)

// Service owns the wired-up application: configuration, database pool,
// and the HTTP server.
type Service struct {
	config *config.Config
	db     *postgres.DB
	server *http.Server
}

// NewService loads configuration and wires up all dependencies.
func NewService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare database schema: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authMiddleware := auth.NewMiddleware(jwtService)

	server := http.NewServer(&http.ServerDependencies{
		Config:         cfg,
		AccountRepo:    postgres.NewAccountRepository(db),
		RecordRepo:     postgres.NewRecordRepository(db),
		JWTService:     jwtService,
		AuthMiddleware: authMiddleware,
	})

	return &Service{
		config: cfg,
		db:     db,
		server: server,
	}, nil
}

// Start runs the HTTP server. Blocks until the server stops.
func (s *Service) Start() error {
	log.Printf("Starting records service on port %s", s.config.Server.Port)
	return s.server.Start(":" + s.config.Server.Port)
}

// Shutdown gracefully stops the HTTP server and closes the database pool.
func (s *Service) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	s.db.Close()
	return err
}

// ShutdownTimeout exposes the configured grace period for main.
func (s *Service) ShutdownTimeout() time.Duration {
	return s.config.Server.ShutdownTimeout
}
