// Package reveal describes the one-shot "animate when it scrolls into view"
// behavior shared by every section.
//
// The Go side owns the contract: which elements animate, from which state,
// for how long and with which stagger. The browser side (web/static/reveal.js)
// only observes intersection and applies the same one-shot rule as Latch.
package reveal

import "sync/atomic"

// Observer reports whether a target currently intersects the viewport.
type Observer interface {
	Intersecting() bool
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func() bool

// Intersecting implements Observer.
func (f ObserverFunc) Intersecting() bool { return f() }

// Latch is a one-shot trigger. It fires on the first visible observation and
// never again, even if the target leaves and re-enters the viewport.
// The zero value is ready to use and safe for concurrent use.
type Latch struct {
	fired atomic.Bool
}

// Observe records a visibility change. It returns true only for the call
// that fires the latch.
func (l *Latch) Observe(visible bool) bool {
	if !visible {
		return false
	}
	return l.fired.CompareAndSwap(false, true)
}

// Poll samples o once and feeds the result to Observe.
func (l *Latch) Poll(o Observer) bool {
	return l.Observe(o.Intersecting())
}

// Fired reports whether the latch has fired.
func (l *Latch) Fired() bool {
	return l.fired.Load()
}
