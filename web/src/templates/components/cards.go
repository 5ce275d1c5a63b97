package components

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/icons"
	"github.com/nfrund/gamma/internal/reveal"
	"github.com/nfrund/gamma/internal/style"
)

// FeatureStagger spaces the about-section feature cards.
var FeatureStagger = reveal.Stagger{DelayChildren: 300 * time.Millisecond, Step: 200 * time.Millisecond}

// ServiceStagger spaces the service cards.
var ServiceStagger = reveal.Stagger{Step: 100 * time.Millisecond}

// FeatureCard renders an icon badge, a title and a description on a glass
// panel. id must be unique on the page; the title is labelled from it.
func FeatureCard(id string, card content.Card, anim reveal.Animation) g.Node {
	theme := style.Default
	titleID := id + "-title"

	return h.Div(
		h.Class(style.Classes(
			"flex flex-col items-end p-6 rounded-2xl", style.Glass, style.ShadowRaised,
			"transition-all", style.ShadowLifted, "hover:translate-y-[-5px]",
		)),
		h.ID(id),
		h.Aria("labelledby", titleID),
		h.Data("card", "feature"),
		anim.Attrs(),
		h.Div(
			h.Class("flex items-center justify-end w-full mb-4"),
			h.H3(h.ID(titleID), h.Class(style.Classes("text-xl font-bold text-right mr-3", theme.TextPrimary())), g.Text(card.Title)),
			h.Div(
				h.Class(style.Classes("p-3 rounded-full", theme.BgAccent("20"), theme.TextPrimary())),
				icons.Icon(card.Icon, "text-2xl"),
			),
		),
		h.P(h.Class("text-right text-gray-700"), g.Text(card.Description)),
	)
}

// ServiceCard renders an icon, a title and a description over a faded image.
func ServiceCard(card content.Card, anim reveal.Animation) g.Node {
	theme := style.Default

	return h.Div(
		h.Class("relative overflow-hidden rounded-2xl bg-white/20 backdrop-blur-md p-6 h-full transition-all duration-300 hover:-translate-y-[5px] hover:shadow-[0_10px_25px_rgba(150,206,180,0.3)]"),
		h.Data("card", "service"),
		anim.Attrs(
			style.Declaration{Property: "box-shadow", Value: style.ShadowCard},
			style.Declaration{Property: "border", Value: "1px solid rgba(255, 255, 255, 0.2)"},
		),
		g.If(card.ImageURL != "",
			h.Div(
				h.Class("absolute top-0 left-0 w-full h-full opacity-10 z-0"),
				h.Img(
					h.Src(card.ImageURL),
					h.Alt(card.Title),
					h.Class("w-full h-full object-cover"),
					g.Attr("sizes", "(max-width: 768px) 100vw, (max-width: 1200px) 50vw, 33vw"),
				),
			),
		),
		h.Div(
			h.Class("relative z-10"),
			h.Div(
				h.Class("w-16 h-16 rounded-full flex items-center justify-center mb-4 mx-auto"),
				h.Style(style.Declarations{}.
					Set("background", theme.Gradient()).
					Set("box-shadow", style.ShadowBadge).String()),
				h.Div(h.Class("text-white text-2xl"), icons.Icon(card.Icon, "")),
			),
			h.H3(h.Class("text-xl font-bold mb-3 text-right text-gray-800"), g.Text(card.Title)),
			h.P(h.Class("text-gray-600 text-right"), g.Text(card.Description)),
		),
	)
}

// FeatureID is the element id of the i-th feature card.
func FeatureID(i int) string {
	return "feature-" + strconv.Itoa(i+1)
}

// FeatureGrid renders one FeatureCard per entry, in order, each revealed on
// view with its stagger offset.
func FeatureGrid(cards []content.Card) g.Node {
	nodes := make([]g.Node, len(cards))
	for i, c := range cards {
		nodes[i] = FeatureCard(FeatureID(i), c, reveal.FadeUp.Staggered(FeatureStagger, i))
	}
	return h.Div(
		h.Class("grid grid-cols-1 sm:grid-cols-2 gap-6 h-full"),
		reveal.ScaleIn.Attrs(),
		g.Group(nodes),
	)
}

// ServiceGrid renders one ServiceCard per entry, in order.
func ServiceGrid(cards []content.Card) g.Node {
	nodes := make([]g.Node, len(cards))
	for i, c := range cards {
		nodes[i] = ServiceCard(c, reveal.CardFadeUp.Staggered(ServiceStagger, i))
	}
	return h.Div(
		h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-4 gap-8"),
		g.Group(nodes),
	)
}
