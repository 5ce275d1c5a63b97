package reveal

import "time"

// Stagger spreads the start of sibling animations over time.
type Stagger struct {
	// DelayChildren is added once before the first child starts.
	DelayChildren time.Duration
	// Step is the gap between consecutive children.
	Step time.Duration
}

// Delay returns the start delay of the child at index i.
// Negative indices are treated as zero.
func (s Stagger) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.DelayChildren + time.Duration(i)*s.Step
}
