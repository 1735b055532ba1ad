package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"records-service/internal/auth"
	"records-service/internal/config"
	"records-service/internal/http/handler"
	"records-service/internal/http/middleware"
	"records-service/internal/rbac"
	"records-service/internal/repository"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"
)

type ServerDependencies struct {
	Config         *config.Config
	AccountRepo    repository.AccountRepository
	RecordRepo     repository.RecordRepository
	JWTService     *auth.JWTService
	AuthMiddleware *auth.Middleware
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID first so all logs carry it.
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Tighter limits on credential endpoints.
	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.AccountRepo, deps.JWTService, deps.Config.Auth.BcryptCost)
	recordHandler := handler.NewRecordHandler(deps.RecordRepo)

	e.GET("/health", healthCheck)

	e.POST("/auth/register", authHandler.Register, strictRateLimiter.Middleware())
	e.POST("/auth/login", authHandler.Login, strictRateLimiter.Middleware())
	e.PUT("/auth/permissions/:id", authHandler.ChangePermissions,
		deps.AuthMiddleware.RequireJWT(), deps.AuthMiddleware.RequireAdmin())

	records := e.Group("/records", deps.AuthMiddleware.RequireJWT())
	records.GET("", recordHandler.List, deps.AuthMiddleware.RequirePermission(rbac.LevelRead))
	records.POST("", recordHandler.Create, deps.AuthMiddleware.RequirePermission(rbac.LevelWrite))
	records.PUT("/:id", recordHandler.Update, deps.AuthMiddleware.RequirePermission(rbac.LevelWrite))
	records.DELETE("/:id", recordHandler.Delete, deps.AuthMiddleware.RequirePermission(rbac.LevelDelete))

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
