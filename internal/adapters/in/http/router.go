package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

const apiBaseURL = "/api/v1"

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// AllowedOrigins lists the CORS origins; empty allows every origin.
	AllowedOrigins []string
	// Swagger enables the /swagger/ UI.
	Swagger bool
	// LogLevel of echo's own logger; zero means WARN.
	LogLevel log.Lvl
}

// NewRouter assembles the echo instance serving server behind the request
// validator, and wraps it with CORS handling.
func NewRouter(server *Server, cfg RouterConfig, logger zerolog.Logger) (*echo.Echo, http.Handler, error) {
	doc, err := LoadSpec()
	if err != nil {
		return nil, nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	level := cfg.LogLevel
	if level == 0 {
		level = log.WARN
	}
	e.Logger.SetLevel(level)
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))
	e.Use(middleware.Recover())

	e.GET("/health", Health)
	if cfg.Swagger {
		if err := RegisterSwagger(e, doc); err != nil {
			return nil, nil, err
		}
	}

	v1 := e.Group("", validator)
	RegisterHandlers(v1, server, apiBaseURL)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	handler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type", "Idempotency-Key"},
	}).Handler(e)

	return e, handler, nil
}
