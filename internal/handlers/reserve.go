package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/gamma/internal/rendering"
	"github.com/nfrund/gamma/web/src/templates/components"
)

// ReserveHandler serves the reservation contact panel opened by the call-to-action buttons.
type ReserveHandler struct {
	pages    PageSource
	renderer rendering.Renderer
	phone    string
	address  string
}

// NewReserveHandler creates a new ReserveHandler.
func NewReserveHandler(pages PageSource, renderer rendering.Renderer, phone, address string) *ReserveHandler {
	return &ReserveHandler{pages: pages, renderer: renderer, phone: phone, address: address}
}

// ReserveGet renders the panel fragment.
func (h *ReserveHandler) ReserveGet(c echo.Context) error {
	panel := components.ReservePanel(components.Contact{
		BusinessName: h.pages.Page().Hero.BusinessName,
		Phone:        h.phone,
		Address:      h.address,
	})
	return h.renderer.RenderPage(c, http.StatusOK, panel)
}
