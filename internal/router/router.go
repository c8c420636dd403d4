package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"propfinder/internal/config"
	"propfinder/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
	uploadHandler *handler.UploadHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		MaxAge:       3600,
	}))
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":  "healthy",
			"service": "propfinder",
			"version": "1.0.0",
		})
	})

	// User routes
	api.POST("/users", userHandler.CreateUser)
	api.GET("/users/:id/balance", userHandler.GetBalance)

	// Property routes
	api.GET("/properties", propertyHandler.ListProperties)
	api.POST("/search", propertyHandler.SearchProperties)
	api.POST("/upload-property", uploadHandler.UploadProperty)

	// Uploaded media and the SPA bundle. Registered as routes, so /api keeps
	// precedence.
	e.Static("/uploads", cfg.UploadDir)
	e.Static("/", cfg.StaticDir)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
