package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/facilitydesk/core/docs"
	httpHandlers "github.com/facilitydesk/core/internal/adapters/http"
	"github.com/facilitydesk/core/internal/adapters/repository"
	"github.com/facilitydesk/core/internal/application/services"
	"github.com/facilitydesk/core/internal/infrastructure/config"
	"github.com/facilitydesk/core/internal/infrastructure/logger"
	"github.com/facilitydesk/core/internal/ports"
)

// Server represents the HTTP server
type Server struct {
	echo    *echo.Echo
	config  *config.Config
	logger  *logger.Logger
	catalog ports.CatalogRepository
	metrics *metrics
}

// New creates a new server instance serving the given catalog
func New(cfg *config.Config, catalog ports.CatalogRepository, appLogger *logger.Logger) (*Server, error) {
	e := echo.New()

	e.Validator = httpHandlers.NewValidator()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpHandlers.ErrorHandler(appLogger)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(cfg.Auth)

	// Initialize services
	authService, err := services.NewAuthService(accountRepo, cfg.JWT, appLogger)
	if err != nil {
		return nil, err
	}
	catalogService := services.NewCatalogService(catalog, catalog, catalog, appLogger)

	if !cfg.Auth.HashedPassword() {
		appLogger.Warnw("Login compares a plaintext password; set AUTH_PASSWORD_HASH to use a bcrypt hash instead",
			"email", cfg.Auth.Email,
		)
	}

	server := &Server{
		echo:    e,
		config:  cfg,
		logger:  appLogger,
		catalog: catalog,
	}

	var loginObserver httpHandlers.LoginObserver
	if cfg.Metrics.Enabled {
		server.metrics = newMetrics()
		loginObserver = server.metrics
	}

	// Initialize handlers
	authHandler := httpHandlers.NewAuthHandler(authService, loginObserver, appLogger)
	catalogHandler := httpHandlers.NewCatalogHandler(catalogService, appLogger)

	server.setupMiddleware()
	server.setupRoutes(authHandler, catalogHandler, authService)

	return server, nil
}

// setupMiddleware configures middleware
func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())

	s.echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRemoteIP:  true,
		LogUserAgent: true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, values middleware.RequestLoggerValues) error {
			requestLogger := s.logger.WithRequestID(values.RequestID)
			if subject := getSubjectFromContext(c); subject != "" {
				requestLogger = requestLogger.WithFields("subject", subject)
			}
			if values.Error != nil {
				requestLogger = requestLogger.WithFields("error", values.Error.Error())
			}

			requestLogger.LogHTTPRequest(
				values.Method,
				values.URI,
				values.UserAgent,
				values.RemoteIP,
				values.Status,
				float64(values.Latency.Nanoseconds())/1000000,
			)
			return nil
		},
	}))

	if s.metrics != nil {
		s.echo.Use(s.metrics.middleware())
	}

	// Single origin, every method and header, with credentials
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{s.config.Security.CORSAllowedOrigin},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowCredentials: true,
	}))

	s.echo.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	if s.config.Security.RateLimitRequests > 0 {
		s.echo.Use(middleware.RateLimiterWithConfig(s.rateLimiterConfig()))
	}
}

func (s *Server) rateLimiterConfig() middleware.RateLimiterConfig {
	sec := s.config.Security

	burst := sec.RateLimitBurst
	if burst <= 0 {
		burst = sec.RateLimitRequests
	}

	window := sec.RateLimitWindow
	if window <= 0 {
		window = time.Minute
	}

	return middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Every(window / time.Duration(sec.RateLimitRequests)),
			Burst:     burst,
			ExpiresIn: 3 * window,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "rate limit exceeded")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			s.logger.LogSecurityEvent("rate_limited", "", identifier, nil)
			return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
		},
	}
}

// setupRoutes configures all routes
func (s *Server) setupRoutes(authHandler *httpHandlers.AuthHandler, catalogHandler *httpHandlers.CatalogHandler, authService ports.AuthService) {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/ready", s.readinessCheck)

	if s.metrics != nil {
		s.echo.GET(s.config.Metrics.Path, s.metrics.handler())
	}

	if s.config.Docs.Enabled {
		s.echo.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	api := s.echo.Group("/api")
	api.POST("/login", authHandler.Login)

	// Read endpoints are open unless a token is explicitly required
	var readMiddleware []echo.MiddlewareFunc
	if s.config.Security.RequireToken {
		readMiddleware = append(readMiddleware, s.authMiddleware(authService))
	}

	api.GET("/services", catalogHandler.ListServices, readMiddleware...)
	api.GET("/checklists", catalogHandler.ListChecklists, readMiddleware...)
	api.GET("/tasks", catalogHandler.ListTasks, readMiddleware...)
}

func (s *Server) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) readinessCheck(c echo.Context) error {
	ctx := c.Request().Context()

	serviceList, err := s.catalog.ListServices(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "catalog_not_ready",
		})
	}
	checklists, err := s.catalog.ListChecklists(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "catalog_not_ready",
		})
	}
	tasks, err := s.catalog.ListTasks(ctx)
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "not_ready",
			"reason": "catalog_not_ready",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
		"collections": map[string]int{
			"services":   len(serviceList),
			"checklists": len(checklists),
			"tasks":      len(tasks),
		},
	})
}

// ServeHTTP lets the server be driven directly by net/http and httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start(address string) error {
	s.logger.Infow("Starting server", "address", address)
	return s.echo.Start(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server")
	return s.echo.Shutdown(ctx)
}
