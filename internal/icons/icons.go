// Package icons resolves symbolic icon names to Font Awesome glyphs.
package icons

import (
	"sort"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Fallback is rendered for names that are not registered.
const Fallback = "utensils"

// Stylesheet is the Font Awesome build the glyph classes belong to.
const Stylesheet = "https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.2/css/all.min.css"

var glyphs = map[string]string{
	"utensils":     "fa-utensils",
	"leaf":         "fa-leaf",
	"users":        "fa-users",
	"award":        "fa-award",
	"seedling":     "fa-seedling",
	"apple-alt":    "fa-apple-whole",
	"carrot":       "fa-carrot",
	"calendar-alt": "fa-calendar-days",
}

// Known reports whether name is a registered icon.
func Known(name string) bool {
	_, ok := glyphs[name]
	return ok
}

// Names lists the registered icon names in sorted order.
func Names() []string {
	names := make([]string, 0, len(glyphs))
	for name := range glyphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Class returns the glyph classes for name, using Fallback for unknown names.
func Class(name string) string {
	glyph, ok := glyphs[name]
	if !ok {
		glyph = glyphs[Fallback]
	}
	return "fa-solid " + glyph
}

// Icon renders the glyph as a decorative <i> element.
func Icon(name string, class string) g.Node {
	classes := Class(name)
	if class != "" {
		classes += " " + class
	}
	return h.I(h.Class(classes), h.Aria("hidden", "true"), h.Data("icon", name))
}
