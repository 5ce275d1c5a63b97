package reveal

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/nfrund/gamma/internal/style"
)

// Trigger selects what starts an animation.
type Trigger string

const (
	// OnMount starts as soon as the page is ready.
	OnMount Trigger = "mount"
	// OnView starts when the element itself first enters the viewport.
	OnView Trigger = "view"
	// OnGroup starts when the nearest enclosing group enters the viewport.
	// Used for staggered children of a container.
	OnGroup Trigger = "group"
)

// Variant is one visual state of an element.
type Variant struct {
	Opacity float64
	OffsetX float64
	OffsetY float64
	Scale   float64
}

// Rest is the resting state every reveal ends in.
var Rest = Variant{Opacity: 1, Scale: 1}

// Ease is a CSS timing function.
type Ease string

// EaseOut is the default timing function.
const EaseOut Ease = "ease-out"

// CubicBezier builds a cubic-bezier timing function. CSS requires both x
// coordinates to lie in [0, 1], so they are clamped.
func CubicBezier(x1, y1, x2, y2 float64) Ease {
	return Ease(fmt.Sprintf("cubic-bezier(%s,%s,%s,%s)",
		num(clamp01(x1)), num(y1), num(clamp01(x2)), num(y2)))
}

// Transition is the timing of an animation.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
}

// Animation is a complete reveal description for one element.
type Animation struct {
	Trigger    Trigger
	Once       bool
	Hidden     Variant
	Visible    Variant
	Transition Transition
}

// On returns a copy of a with a different trigger.
func (a Animation) On(t Trigger) Animation {
	a.Trigger = t
	return a
}

// After returns a copy of a that starts d later.
func (a Animation) After(d time.Duration) Animation {
	a.Transition.Delay += d
	return a
}

// Lasting returns a copy of a with a different duration.
func (a Animation) Lasting(d time.Duration) Animation {
	a.Transition.Duration = d
	return a
}

// From returns a copy of a with a different hidden state.
func (a Animation) From(v Variant) Animation {
	a.Hidden = v
	return a
}

// Staggered returns a copy of a delayed by the stagger of child i.
func (a Animation) Staggered(s Stagger, i int) Animation {
	return a.After(s.Delay(i))
}

// Vars returns the CSS custom properties consumed by reveal.css.
func (a Animation) Vars() style.Declarations {
	ease := a.Transition.Ease
	if ease == "" {
		ease = EaseOut
	}
	return style.Declarations{
		{Property: "--reveal-from-opacity", Value: num(a.Hidden.Opacity)},
		{Property: "--reveal-from-x", Value: px(a.Hidden.OffsetX)},
		{Property: "--reveal-from-y", Value: px(a.Hidden.OffsetY)},
		{Property: "--reveal-from-scale", Value: num(a.Hidden.Scale)},
		{Property: "--reveal-to-opacity", Value: num(a.Visible.Opacity)},
		{Property: "--reveal-to-x", Value: px(a.Visible.OffsetX)},
		{Property: "--reveal-to-y", Value: px(a.Visible.OffsetY)},
		{Property: "--reveal-to-scale", Value: num(a.Visible.Scale)},
		{Property: "--reveal-duration", Value: ms(a.Transition.Duration)},
		{Property: "--reveal-delay", Value: ms(a.Transition.Delay)},
		{Property: "--reveal-ease", Value: string(ease)},
	}
}

// Attrs renders the animation as element attributes. Extra declarations are
// merged into the same style attribute.
func (a Animation) Attrs(extra ...style.Declaration) g.Node {
	attrs := g.Group{h.Data("reveal", string(a.Trigger))}
	if a.Once {
		attrs = append(attrs, h.Data("reveal-once", ""))
	}
	return append(attrs, h.Style(a.Vars().Merge(extra).String()))
}

// Group marks a container whose OnGroup children reveal together.
func Group() g.Node {
	return h.Data("reveal-group", "")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func px(v float64) string {
	return num(v) + "px"
}

func ms(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
