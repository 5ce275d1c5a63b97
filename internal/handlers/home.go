package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/middleware"
	"github.com/nfrund/gamma/internal/rendering"
	"github.com/nfrund/gamma/web/src/templates/pages"
	"github.com/nfrund/gamma/web/src/templates/sections"
)

// PageSource supplies the current landing page content.
type PageSource interface {
	Page() *content.Page
}

// HomeHandler serves the landing page and its section fragments.
type HomeHandler struct {
	pages    PageSource
	renderer rendering.Renderer
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(pages PageSource, renderer rendering.Renderer) *HomeHandler {
	return &HomeHandler{pages: pages, renderer: renderer}
}

// HomeGet renders the full landing page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	return h.renderer.RenderPage(c, http.StatusOK, pages.Landing(h.pages.Page()))
}

// SectionGet renders one section on its own, for htmx swaps.
func (h *HomeHandler) SectionGet(c echo.Context) error {
	var req SectionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "section not found")
	}

	node, err := sections.ByName(h.pages.Page(), req.Name)
	if errors.Is(err, sections.ErrUnknownSection) {
		return echo.NewHTTPError(http.StatusNotFound, "section not found")
	}
	if err != nil {
		return err
	}

	middleware.FromContext(c.Request().Context()).Debug("Rendering section fragment", slog.String("section", req.Name))
	return h.renderer.RenderPage(c, http.StatusOK, node)
}
