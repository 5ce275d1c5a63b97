// Package style holds the shared color and effect vocabulary of the landing page.
//
// Sections never spell out a hex color or a shadow themselves; they ask the
// Theme for the utility class or inline declaration they need.
package style

import (
	"strings"
)

// Theme is the palette and effect set used across all sections.
type Theme struct {
	// Primary is the deep sage used for headings and text accents.
	Primary string
	// Accent is the light mint used for dividers, badges and buttons.
	Accent string
	// PageFrom and PageTo are the two stops of the section background gradient.
	PageFrom string
	PageTo   string
}

// Default is the Gamma palette.
var Default = Theme{
	Primary:  "#588C7E",
	Accent:   "#96CEB4",
	PageFrom: "#f5f7fa",
	PageTo:   "#e4e8eb",
}

// Neumorphic shadows. The raised variants are used at rest, the lifted ones on hover.
const (
	ShadowRaised      = "shadow-[5px_5px_15px_rgba(0,0,0,0.1),-5px_-5px_15px_rgba(255,255,255,0.1)]"
	ShadowLifted      = "hover:shadow-[8px_8px_20px_rgba(0,0,0,0.12),-8px_-8px_20px_rgba(255,255,255,0.12)]"
	ShadowButton      = "shadow-[5px_5px_10px_rgba(0,0,0,0.2),-5px_-5px_10px_rgba(255,255,255,0.1)]"
	ShadowButtonHover = "hover:shadow-[8px_8px_15px_rgba(0,0,0,0.3),-8px_-8px_15px_rgba(255,255,255,0.1)]"
	ShadowImage       = "shadow-[10px_10px_30px_rgba(0,0,0,0.15),-10px_-10px_30px_rgba(255,255,255,0.15)]"
	ShadowCard        = "8px 8px 16px rgba(0, 0, 0, 0.05), -8px -8px 16px rgba(255, 255, 255, 0.8)"
	ShadowBadge       = "4px 4px 8px rgba(0, 0, 0, 0.1), -4px -4px 8px rgba(255, 255, 255, 0.5)"
	ShadowPill        = "4px 4px 10px rgba(0, 0, 0, 0.1), -4px -4px 10px rgba(255, 255, 255, 0.7)"
)

// Glass is the frosted panel treatment shared by cards.
const Glass = "bg-white/20 backdrop-blur-md border border-white/10"

// TextPrimary returns the utility class coloring text with the primary color.
func (t Theme) TextPrimary() string { return arbitrary("text", t.Primary, "") }

// BgAccent returns a background utility in the accent color, optionally with
// an opacity modifier such as "20" or "90".
func (t Theme) BgAccent(opacity string) string { return arbitrary("bg", t.Accent, opacity) }

// BgPrimary is BgAccent for the primary color.
func (t Theme) BgPrimary(opacity string) string { return arbitrary("bg", t.Primary, opacity) }

// HoverBgPrimary is the hover state used by the pill buttons.
func (t Theme) HoverBgPrimary() string { return "hover:" + arbitrary("bg", t.Primary, "") }

// GradientClasses returns the accent-to-primary gradient as utility classes.
func (t Theme) GradientClasses() string {
	return "bg-gradient-to-br from-[" + t.Accent + "] to-[" + t.Primary + "]"
}

// Gradient returns the accent-to-primary gradient as a CSS value.
func (t Theme) Gradient() string {
	return "linear-gradient(135deg, " + t.Accent + ", " + t.Primary + ")"
}

// PageGradient returns the pale background gradient as a CSS value.
func (t Theme) PageGradient() string {
	return "linear-gradient(135deg, " + t.PageFrom + " 0%, " + t.PageTo + " 100%)"
}

func arbitrary(prefix, color, opacity string) string {
	s := prefix + "-[" + color + "]"
	if opacity != "" {
		s += "/" + opacity
	}
	return s
}

// Classes joins the non-empty class fragments with single spaces.
func Classes(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}
