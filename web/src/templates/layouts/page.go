package layouts

import (
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/internal/icons"
	"github.com/nfrund/gamma/internal/reveal"
	"github.com/nfrund/gamma/internal/textdir"
	"github.com/nfrund/gamma/internal/view"
	"github.com/nfrund/gamma/web/src/templates/components"
)

// Third-party scripts loaded by every page.
const (
	TailwindScript = "https://cdn.tailwindcss.com"
	HtmxScript     = "https://unpkg.com/htmx.org@2.0.4"
)

// RevealSettingsID is the id of the JSON element reveal.js reads.
const RevealSettingsID = "reveal-settings"

// Page wraps the given body nodes in the HTML document shell.
func Page(p *content.Page, body ...g.Node) g.Node {
	dir := textdir.First(p.Hero.Headline, p.About.Heading, p.Services.Heading)

	return h.Doctype(
		h.HTML(
			h.Lang(textdir.Lang(p.Lang, language.Hebrew)),
			g.Attr("dir", string(dir)),
			h.Class("no-js scroll-smooth"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
				h.TitleEl(g.Text(CalculateTitle(p.Title, p.Hero.BusinessName))),
				g.If(p.Description != "", h.Meta(h.Name("description"), h.Content(p.Description))),
				h.Meta(g.Attr("property", "og:title"), h.Content(p.Hero.BusinessName)),
				h.Meta(g.Attr("property", "og:image"), h.Content(p.Hero.Image.URL)),
				g.If(p.BaseURL != "", g.Group{
					h.Link(h.Rel("canonical"), h.Href(CanonicalURL(p.BaseURL))),
					h.Meta(g.Attr("property", "og:url"), h.Content(CanonicalURL(p.BaseURL))),
				}),
				h.Script(h.Src(TailwindScript)),
				h.Link(h.Rel("stylesheet"), h.Href(icons.Stylesheet)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/reveal.css")),
				view.JSONScript(RevealSettingsID, reveal.DefaultSettings()),
				h.Script(h.Src(HtmxScript), g.Attr("defer")),
				h.Script(h.Src("/static/reveal.js"), g.Attr("defer")),
			),
			h.Body(
				h.Class("bg-gray-50 text-gray-900 antialiased"),
				h.Main(g.Group(body)),
				h.Div(h.ID(components.DialogID), g.Attr("aria-live", "polite")),
			),
		),
	)
}
