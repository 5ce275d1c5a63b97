package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeClasses(t *testing.T) {
	assert.Equal(t, "text-[#588C7E]", Default.TextPrimary())
	assert.Equal(t, "bg-[#96CEB4]/20", Default.BgAccent("20"))
	assert.Equal(t, "bg-[#588C7E]", Default.BgPrimary(""))
	assert.Equal(t, "hover:bg-[#588C7E]", Default.HoverBgPrimary())
	assert.Equal(t, "bg-gradient-to-br from-[#96CEB4] to-[#588C7E]", Default.GradientClasses())
	assert.Equal(t, "linear-gradient(135deg, #96CEB4, #588C7E)", Default.Gradient())
}

func TestClasses(t *testing.T) {
	assert.Equal(t, "a b c", Classes("a", "", "  b ", "c"))
	assert.Equal(t, "", Classes())
}

func TestDeclarations(t *testing.T) {
	var d Declarations
	d = d.Set("color", "red").Set("margin", "").Set("padding", "1px")
	d = d.Merge(Declarations{{Property: "top", Value: "0"}})
	assert.Equal(t, "color:red;padding:1px;top:0", d.String())
}
