package reveal

import "time"

// Hero easing, a sharp start with a long settle.
var HeroEase = CubicBezier(0.6, 0.05, -0.01, 0.9)

// Presets used by the sections. All of them end in Rest.
var (
	// FadeUp lifts an element 20px while fading in.
	FadeUp = Animation{
		Trigger:    OnView,
		Once:       true,
		Hidden:     Variant{Opacity: 0, OffsetY: 20, Scale: 1},
		Visible:    Rest,
		Transition: Transition{Duration: 600 * time.Millisecond},
	}

	// CardFadeUp is the service card entrance.
	CardFadeUp = Animation{
		Trigger:    OnView,
		Once:       true,
		Hidden:     Variant{Opacity: 0, OffsetY: 30, Scale: 1},
		Visible:    Rest,
		Transition: Transition{Duration: 500 * time.Millisecond},
	}

	// HeaderDrop lowers a section header into place.
	HeaderDrop = Animation{
		Trigger:    OnView,
		Once:       true,
		Hidden:     Variant{Opacity: 0, OffsetY: -20, Scale: 1},
		Visible:    Rest,
		Transition: Transition{Duration: 700 * time.Millisecond},
	}

	// FadeIn only changes opacity.
	FadeIn = Animation{
		Trigger:    OnView,
		Once:       true,
		Hidden:     Variant{Opacity: 0, Scale: 1},
		Visible:    Rest,
		Transition: Transition{Duration: 700 * time.Millisecond},
	}

	// ZoomOut settles an oversized background image.
	ZoomOut = Animation{
		Trigger:    OnMount,
		Once:       true,
		Hidden:     Variant{Opacity: 0, Scale: 1.1},
		Visible:    Rest,
		Transition: Transition{Duration: 1200 * time.Millisecond, Ease: HeroEase},
	}

	// SlideInX slides an element in from the inline start.
	SlideInX = Animation{
		Trigger:    OnMount,
		Once:       true,
		Hidden:     Variant{Opacity: 0, OffsetX: 50, Scale: 1},
		Visible:    Rest,
		Transition: Transition{Duration: 800 * time.Millisecond},
	}

	// ScaleIn grows an element from 95%.
	ScaleIn = Animation{
		Trigger:    OnMount,
		Once:       true,
		Hidden:     Variant{Opacity: 0, Scale: 0.95},
		Visible:    Rest,
		Transition: Transition{Duration: 800 * time.Millisecond},
	}
)

// Settings are the observer parameters handed to the browser script.
type Settings struct {
	Threshold  float64 `json:"threshold"`
	RootMargin string  `json:"rootMargin"`
}

// DefaultSettings fire once a fifth of the element is visible.
func DefaultSettings() Settings {
	return Settings{Threshold: 0.2, RootMargin: "0px"}
}
