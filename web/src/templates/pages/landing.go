package pages

import (
	g "maragu.dev/gomponents"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/web/src/templates/layouts"
	"github.com/nfrund/gamma/web/src/templates/sections"
)

// Landing is the complete landing page: hero, about and services in sequence.
func Landing(p *content.Page) g.Node {
	return layouts.Page(p, sections.All(p)...)
}
