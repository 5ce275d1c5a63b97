package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/gamma/internal/config"
	"github.com/nfrund/gamma/internal/handlers"
	appmiddleware "github.com/nfrund/gamma/internal/middleware"
	"github.com/nfrund/gamma/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E              *echo.Echo
	Cfg            config.Provider
	homeHandler    *handlers.HomeHandler
	reserveHandler *handlers.ReserveHandler
}

// New creates a new Server with its middleware chain, renderer and error handling in place.
// Routes are added by RegisterRoutes.
func New(cfg config.Provider, renderer *rendering.UniversalRenderer, home *handlers.HomeHandler, reserve *handlers.ReserveHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.Logger)
	e.Use(appmiddleware.AccessLog())
	e.Use(middleware.Secure())
	e.Use(middleware.Gzip())

	e.Renderer = renderer
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	return &Server{
		E:              e,
		Cfg:            cfg,
		homeHandler:    home,
		reserveHandler: reserve,
	}
}
