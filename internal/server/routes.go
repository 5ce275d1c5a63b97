package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/gamma/internal/middleware"
	"github.com/nfrund/gamma/web"
	"github.com/nfrund/gamma/web/src/templates/components"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter(middleware.DefaultFragmentRate)

	s.E.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s.E.GET("/", s.homeHandler.HomeGet)
	s.E.GET("/sections/:name", s.homeHandler.SectionGet, rateLimiter)
	s.E.GET(components.ReservePath, s.reserveHandler.ReserveGet, rateLimiter)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
