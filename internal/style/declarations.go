package style

import "strings"

// Declaration is a single inline CSS property.
type Declaration struct {
	Property string
	Value    string
}

// Declarations is an ordered list of inline CSS properties.
type Declarations []Declaration

// Set appends a property, skipping empty values.
func (d Declarations) Set(property, value string) Declarations {
	if value == "" {
		return d
	}
	return append(d, Declaration{Property: property, Value: value})
}

// Merge appends all properties of other.
func (d Declarations) Merge(other Declarations) Declarations {
	return append(d, other...)
}

// String renders the declarations for a style attribute.
func (d Declarations) String() string {
	var b strings.Builder
	for i, decl := range d {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(decl.Property)
		b.WriteByte(':')
		b.WriteString(decl.Value)
	}
	return b.String()
}
