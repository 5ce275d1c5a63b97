// Package sections holds the three top-level blocks of the landing page.
// Each is a pure function of its content; none depends on another.
package sections

import (
	"errors"

	g "maragu.dev/gomponents"

	"github.com/nfrund/gamma/internal/content"
)

// ErrUnknownSection is returned by ByName for names not in Names.
var ErrUnknownSection = errors.New("unknown section")

// Names lists the sections in page order.
var Names = []string{"hero", "about", "services"}

// All renders every section of p in page order.
func All(p *content.Page) []g.Node {
	return []g.Node{Hero(p.Hero), About(p.About), Services(p.Services)}
}

// ByName renders a single section of p.
func ByName(p *content.Page, name string) (g.Node, error) {
	switch name {
	case "hero":
		return Hero(p.Hero), nil
	case "about":
		return About(p.About), nil
	case "services":
		return Services(p.Services), nil
	default:
		return nil, ErrUnknownSection
	}
}
