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

var aboutHeaderStagger = reveal.Stagger{DelayChildren: 300 * time.Millisecond, Step: 200 * time.Millisecond}

// About renders the "about us" section: header, feature cards, team image,
// story block and a closing call to action.
func About(about content.About) g.Node {
	theme := style.Default
	headerItem := func(i int) g.Node {
		return reveal.FadeUp.On(reveal.OnGroup).Staggered(aboutHeaderStagger, i).Attrs()
	}
	settle := reveal.FadeUp.From(reveal.Variant{OffsetY: 30, Scale: 1}).Lasting(800 * time.Millisecond)

	paragraphs := make([]g.Node, len(about.Story.Paragraphs))
	for i, p := range about.Story.Paragraphs {
		class := "text-gray-700 text-right"
		if i < len(about.Story.Paragraphs)-1 {
			class = "text-gray-700 mb-4 text-right"
		}
		paragraphs[i] = h.P(h.Class(class), g.Text(p))
	}

	return h.Section(
		h.ID("about"),
		g.Attr("dir", string(textdir.First(about.Heading, about.Intro))),
		h.Class("py-16 px-4 md:px-8 lg:px-16 relative overflow-hidden bg-gradient-to-br from-gray-50 to-gray-100"),
		h.Aria("labelledby", "about-heading"),

		h.Div(
			h.Class("absolute top-0 left-0 w-full h-full overflow-hidden pointer-events-none z-0"),
			h.Div(h.Class(style.Classes("absolute top-20 right-10 w-64 h-64 rounded-full blur-3xl", theme.BgAccent("10")))),
			h.Div(h.Class(style.Classes("absolute bottom-20 left-10 w-80 h-80 rounded-full blur-3xl", theme.BgPrimary("10")))),
		),

		h.Div(
			h.Class("max-w-7xl mx-auto relative z-10"),

			h.Div(
				h.Class("text-center mb-16"),
				reveal.Group(),
				h.H2(
					h.ID("about-heading"),
					h.Class(style.Classes("text-4xl md:text-5xl font-bold mb-6", theme.TextPrimary())),
					headerItem(0),
					g.Text(about.Heading),
				),
				components.Divider(headerItem(1)),
				h.P(h.Class("text-xl text-gray-700 max-w-3xl mx-auto text-right"), headerItem(2), g.Text(about.Intro)),
			),

			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 gap-8 mb-16"),
				h.Div(h.Class("order-2 md:order-1"), components.FeatureGrid(about.Features)),
				h.Div(
					h.Class(style.Classes("order-1 md:order-2 relative h-[400px] md:h-full rounded-2xl overflow-hidden", style.ShadowImage)),
					reveal.SlideInX.After(200*time.Millisecond).Attrs(),
					h.Img(
						h.Src(about.TeamImage.URL),
						h.Alt(about.TeamImage.Alt),
						h.Class("absolute inset-0 w-full h-full object-cover"),
						g.Attr("sizes", "(max-width: 768px) 100vw, 50vw"),
					),
					h.Div(
						h.Class("absolute inset-0 bg-gradient-to-t from-black/60 to-transparent flex items-end p-6"),
						h.H3(h.Class("text-white text-2xl font-bold"), g.Text(about.TeamCaption)),
					),
				),
			),

			h.Div(
				h.Class(style.Classes("relative rounded-2xl overflow-hidden bg-white/30 backdrop-blur-md border border-white/20", style.ShadowRaised, "p-8")),
				settle.After(400*time.Millisecond).Attrs(),
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-2 gap-8 items-center"),
					h.Div(
						h.Class("relative h-[300px] rounded-xl overflow-hidden"),
						h.Img(
							h.Src(about.Story.Image.URL),
							h.Alt(about.Story.Image.Alt),
							h.Class("absolute inset-0 w-full h-full object-cover"),
						),
					),
					h.Div(
						h.H3(h.Class(style.Classes("text-2xl font-bold mb-4 text-right", theme.TextPrimary())), g.Text(about.Story.Heading)),
						g.Group(paragraphs),
					),
				),
			),

			h.Div(
				h.Class("mt-16 text-center"),
				settle.After(600*time.Millisecond).Attrs(),
				h.H3(h.Class(style.Classes("text-2xl font-bold mb-6", theme.TextPrimary())), g.Text(about.VisitHeading)),
				components.PillButton(about.CTALabel, false),
			),
		),
	)
}
