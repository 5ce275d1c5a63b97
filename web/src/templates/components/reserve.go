package components

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/icons"
	"github.com/nfrund/gamma/internal/reveal"
	"github.com/nfrund/gamma/internal/style"
)

// Contact is what the reservation panel shows.
type Contact struct {
	BusinessName string
	Phone        string
	Address      string
}

// CloseLabel is the accessible name of the panel's dismiss button.
const CloseLabel = "סגירה"

// ReservePanel is the fragment loaded by the call-to-action buttons.
// Empty contact fields are left out. The close button empties the dialog region.
func ReservePanel(c Contact) g.Node {
	theme := style.Default
	return h.Div(
		h.Class(style.Classes("fixed inset-x-4 bottom-6 z-50 mx-auto max-w-md p-6 rounded-2xl bg-white/90 backdrop-blur-md", style.ShadowRaised)),
		h.Role("dialog"),
		h.Aria("label", c.BusinessName),
		h.Data("panel", "reserve"),
		reveal.FadeUp.On(reveal.OnMount).Attrs(),
		h.Div(
			h.Class("flex items-center justify-between mb-4"),
			h.H3(h.Class(style.Classes("text-xl font-bold", theme.TextPrimary())), g.Text(c.BusinessName)),
			icons.Icon("calendar-alt", theme.TextPrimary()),
			h.Button(
				h.Type("button"),
				h.Class("text-gray-500 hover:text-gray-800 text-2xl leading-none"),
				h.Aria("label", CloseLabel),
				h.Data("action", "close"),
				hx.On("click", "document.getElementById('"+DialogID+"').replaceChildren()"),
				g.Text("×"),
			),
		),
		g.If(c.Phone != "",
			h.P(h.Class("text-gray-700 mb-2"),
				h.A(h.Href("tel:"+c.Phone), h.Class("font-bold"), g.Text(c.Phone)),
			),
		),
		g.If(c.Address != "",
			h.P(h.Class("text-gray-700"), g.Text(c.Address)),
		),
	)
}
