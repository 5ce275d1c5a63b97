package components

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/icons"
	"github.com/nfrund/gamma/internal/style"
)

// ReservePath serves the reservation panel fragment.
const ReservePath = "/cta/reserve"

// DialogID is the element the reservation panel is swapped into.
const DialogID = "cta-dialog"

// reserve loads the reservation panel into the dialog region.
func reserve() g.Node {
	return g.Group{
		h.Type("button"),
		hx.Get(ReservePath),
		hx.Target("#" + DialogID),
		hx.Swap("innerHTML"),
	}
}

// HeroButton is the gradient call to action of the hero banner.
func HeroButton(label string) g.Node {
	return h.Button(
		h.Class(style.Classes(
			"group flex items-center gap-3", style.Default.GradientClasses(),
			"text-white py-4 px-8 rounded-xl text-lg font-medium",
			style.ShadowButton, style.ShadowButtonHover,
			"transition-all duration-300 ease-out hover:scale-105 active:scale-[0.98]",
		)),
		reserve(),
		h.Span(g.Text(label)),
		icons.Icon("calendar-alt", "text-white group-hover:translate-x-1 transition-transform duration-300"),
	)
}

// PillButton is the rounded call to action used at the end of a section.
// Gradient selects the services variant; otherwise the flat accent is used.
func PillButton(label string, gradient bool) g.Node {
	theme := style.Default
	return h.Button(
		c.Classes{
			"px-8 py-3 rounded-full text-white hover:scale-105": true,
			"font-medium transition-transform duration-300 active:scale-[0.98]": gradient,
			style.Classes(
				theme.BgAccent(""), "font-bold shadow-[5px_5px_15px_rgba(0,0,0,0.1)]", theme.HoverBgPrimary(),
				"transition-all duration-300 active:scale-95",
			): !gradient,
		},
		g.If(gradient, h.Style(style.Declarations{}.
			Set("background", theme.Gradient()).
			Set("box-shadow", style.ShadowPill).String())),
		reserve(),
		g.Text(label),
	)
}

// Divider is the short accent bar under section headings.
func Divider(attrs ...g.Node) g.Node {
	return h.Div(
		h.Class(style.Classes("w-24 h-1 mx-auto mb-6 rounded-full", style.Default.BgAccent(""))),
		g.Group(attrs),
	)
}
