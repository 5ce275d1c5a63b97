// Package textdir derives the writing direction and language of page copy.
package textdir

import (
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the value of an HTML dir attribute.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Of returns the direction of the first strongly directional character in s.
// Text without any strong character is LTR.
func Of(s string) Direction {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			break
		}
		switch p.Class() {
		case bidi.R, bidi.AL:
			return RTL
		case bidi.L:
			return LTR
		}
		s = s[size:]
	}
	return LTR
}

// First returns the direction of the first argument that has a strong character.
func First(texts ...string) Direction {
	for _, t := range texts {
		if hasStrong(t) {
			return Of(t)
		}
	}
	return LTR
}

func hasStrong(s string) bool {
	for len(s) > 0 {
		p, size := bidi.LookupString(s)
		if size == 0 {
			return false
		}
		switch p.Class() {
		case bidi.R, bidi.AL, bidi.L:
			return true
		}
		s = s[size:]
	}
	return false
}

// Lang normalizes a BCP 47 tag, returning fallback when tag does not parse.
func Lang(tag string, fallback language.Tag) string {
	t, err := language.Parse(tag)
	if err != nil {
		return fallback.String()
	}
	return t.String()
}
