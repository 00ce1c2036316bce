package router

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"contactbook/internal/auth"
	"contactbook/internal/config"
	"contactbook/internal/handler"
	"contactbook/internal/logging"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	logger *slog.Logger,
	verifier auth.TokenVerifier,
	healthHandler *handler.HealthHandler,
	authHandler *handler.AuthHandler,
	contactHandler *handler.ContactHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(logging.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", healthHandler.Live)
	e.GET("/healthz", healthHandler.Ready)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// Secured routes (require a bearer token)
	contacts := e.Group("/contacts", auth.Middleware(verifier))
	contacts.GET("", contactHandler.ListContacts)
	contacts.POST("", contactHandler.CreateContact)
	contacts.GET("/:id", contactHandler.GetContact)
	contacts.PATCH("/:id", contactHandler.UpdateContact)
	contacts.DELETE("/:id", contactHandler.DeleteContact)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
