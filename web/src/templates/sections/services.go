package sections

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/reveal"
	"github.com/nfrund/gamma/internal/style"
	"github.com/nfrund/gamma/internal/textdir"
	"github.com/nfrund/gamma/web/src/templates/components"
)

// Services renders the services showcase.
func Services(services content.Services) g.Node {
	theme := style.Default

	var backdrop g.Node
	if services.BackgroundURL != "" {
		backdrop = h.Div(
			h.Class("absolute inset-0 z-0 opacity-5"),
			h.Div(
				h.Class("absolute inset-0"),
				h.Style(style.Declarations{}.
					Set("background-image", `url("`+services.BackgroundURL+`")`).
					Set("background-size", "cover").
					Set("background-position", "center").
					Set("filter", "blur(8px)").String()),
			),
		)
	}

	return h.Section(
		h.ID("services"),
		g.Attr("dir", string(textdir.First(services.Heading, services.Intro))),
		h.Class("py-16 px-4 md:px-8 relative overflow-hidden"),
		h.Style(style.Declarations{}.Set("background", theme.PageGradient()).String()),
		h.Aria("labelledby", "services-heading"),

		backdrop,

		h.Div(
			h.Class("container mx-auto relative z-10"),
			h.Div(
				h.Class("text-center mb-12"),
				reveal.HeaderDrop.Attrs(),
				h.H2(
					h.ID("services-heading"),
					h.Class(style.Classes("text-3xl md:text-4xl font-bold mb-4", theme.TextPrimary())),
					g.Text(services.Heading),
				),
				components.Divider(),
				h.P(h.Class("mt-6 text-gray-600 max-w-2xl mx-auto text-lg"), g.Text(services.Intro)),
			),

			components.ServiceGrid(services.Cards),

			h.Div(
				h.Class("mt-16 text-center"),
				reveal.FadeIn.After(500*time.Millisecond).Attrs(),
				components.PillButton(services.CTALabel, true),
			),
		),
	)
}
