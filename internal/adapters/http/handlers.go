package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/facilitydesk/core/internal/domain/entities"
	"github.com/facilitydesk/core/internal/infrastructure/logger"
	"github.com/facilitydesk/core/internal/ports"
)

// LoginObserver is notified of every login outcome
type LoginObserver interface {
	ObserveLogin(outcome string)
}

// Login outcomes reported to a LoginObserver
const (
	LoginSucceeded = "success"
	LoginRejected  = "invalid_credentials"
	LoginInvalid   = "invalid_request"
	LoginErrored   = "error"
)

type noopLoginObserver struct{}

func (noopLoginObserver) ObserveLogin(string) {}

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService ports.AuthService
	observer    LoginObserver
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler. observer may be nil.
func NewAuthHandler(authService ports.AuthService, observer LoginObserver, logger *logger.Logger) *AuthHandler {
	if observer == nil {
		observer = noopLoginObserver{}
	}

	return &AuthHandler{
		authService: authService,
		observer:    observer,
		logger:      logger,
	}
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		h.observer.ObserveLogin(LoginInvalid)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "Invalid request body").SetInternal(err)
	}

	if err := c.Validate(&req); err != nil {
		h.observer.ObserveLogin(LoginInvalid)
		return err
	}

	creds := req.Credentials()
	response, err := h.authService.Login(c.Request().Context(), creds)
	if err != nil {
		if errors.Is(err, entities.ErrInvalidCredentials) {
			h.observer.ObserveLogin(LoginRejected)
			h.logger.LogSecurityEvent("login_failed", creds.Email, c.RealIP(), nil)
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
		}

		h.observer.ObserveLogin(LoginErrored)
		h.logger.Errorw("Login failed", "error", err, "email", creds.Email)
		return err
	}

	h.observer.ObserveLogin(LoginSucceeded)
	return c.JSON(http.StatusOK, response)
}

// CatalogHandler serves the read-only facility collections
type CatalogHandler struct {
	catalogService ports.CatalogService
	logger         *logger.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService ports.CatalogService, logger *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// ListServices handles GET /api/services
func (h *CatalogHandler) ListServices(c echo.Context) error {
	services, err := h.catalogService.ListServices(c.Request().Context())
	if err != nil {
		h.logger.Errorw("List services failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, services)
}

// ListChecklists handles GET /api/checklists
func (h *CatalogHandler) ListChecklists(c echo.Context) error {
	checklists, err := h.catalogService.ListChecklists(c.Request().Context())
	if err != nil {
		h.logger.Errorw("List checklists failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, checklists)
}

// ListTasks handles GET /api/tasks
func (h *CatalogHandler) ListTasks(c echo.Context) error {
	tasks, err := h.catalogService.ListTasks(c.Request().Context())
	if err != nil {
		h.logger.Errorw("List tasks failed", "error", err)
		return err
	}

	return c.JSON(http.StatusOK, tasks)
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Detail interface{} `json:"detail"`
}
