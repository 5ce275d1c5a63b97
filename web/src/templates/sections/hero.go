package sections

import (
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/icons"
	"github.com/nfrund/gamma/internal/reveal"
	"github.com/nfrund/gamma/internal/style"
	"github.com/nfrund/gamma/internal/textdir"
	"github.com/nfrund/gamma/web/src/templates/components"
)

// heroStagger spaces the banner items as they settle in on load.
var heroStagger = reveal.Stagger{Step: 300 * time.Millisecond}

// heroItem is the entrance of each banner item.
var heroItem = reveal.FadeUp.
	On(reveal.OnMount).
	Lasting(800 * time.Millisecond)

// Hero renders the full-viewport banner. An empty business name shows
// content.DefaultBusinessName.
func Hero(hero content.Hero) g.Node {
	theme := style.Default
	name := hero.BusinessName
	if name == "" {
		name = content.DefaultBusinessName
	}

	item := func(i int) g.Node {
		a := heroItem.Staggered(heroStagger, i)
		a.Transition.Ease = reveal.HeroEase
		return a.Attrs()
	}

	items := []g.Node{
		h.Div(
			h.Class("mb-6 inline-block"),
			item(0),
			h.Div(
				h.Class(style.Classes("w-16 h-16 md:w-20 md:h-20 flex items-center justify-center rounded-full", theme.BgAccent("90"), "backdrop-blur-md border border-white/20 shadow-lg")),
				icons.Icon("utensils", "text-white text-3xl md:text-4xl"),
			),
		),
		h.H2(h.Class("text-lg md:text-xl font-medium text-white mb-2"), h.Data("field", "business-name"), item(1), g.Text(name)),
		h.H1(h.Class("text-4xl md:text-5xl lg:text-6xl font-bold text-white mb-4"), item(2), g.Text(hero.Headline)),
		h.P(h.Class("text-lg md:text-xl text-white/90 mb-8"), item(3), g.Text(hero.Tagline)),
		h.Div(item(4), components.HeroButton(hero.CTALabel)),
	}
	if hero.Blurb != "" {
		items = append(items, h.Div(
			h.Class("mt-12 p-6 rounded-2xl backdrop-blur-md bg-white/10 border border-white/20 shadow-lg"),
			item(5),
			h.P(h.Class("text-white/90 text-right"), g.Text(hero.Blurb)),
		))
	}

	return h.Section(
		h.ID("hero"),
		g.Attr("dir", string(textdir.First(hero.Headline, name))),
		h.Class("relative w-full h-screen overflow-hidden bg-gradient-to-br from-[#f8f9fa] to-[#e9ecef]"),

		h.Div(
			h.Class("absolute inset-0 z-0"),
			reveal.ZoomOut.Attrs(),
			h.Img(
				h.Src(hero.Image.URL),
				h.Alt(hero.Image.Alt),
				h.Class("absolute inset-0 w-full h-full object-cover"),
				g.Attr("fetchpriority", "high"),
			),
			h.Div(h.Class("absolute inset-0 bg-black/40 backdrop-blur-[2px]")),
		),

		h.Div(
			h.Class("relative z-10 flex flex-col items-end justify-center h-full px-6 md:px-12 lg:px-24 max-w-7xl mx-auto"),
			h.Div(h.Class("w-full md:w-3/5 lg:w-1/2 text-right"), g.Group(items)),
		),

		h.Div(
			h.Class(style.Classes("absolute bottom-10 left-10 w-32 h-32 rounded-full", theme.BgAccent("20"), "backdrop-blur-md border border-white/10")),
			reveal.FadeUp.On(reveal.OnMount).
				From(reveal.Variant{OffsetY: 50, Scale: 1}).
				Lasting(time.Second).
				After(1200*time.Millisecond).
				Attrs(),
		),
		h.Div(
			h.Class(style.Classes("absolute top-20 left-20 w-24 h-24 rounded-full", theme.BgPrimary("20"), "backdrop-blur-md border border-white/10")),
			reveal.FadeUp.On(reveal.OnMount).
				From(reveal.Variant{OffsetY: -50, Scale: 1}).
				Lasting(time.Second).
				After(1400*time.Millisecond).
				Attrs(),
		),
	)
}
