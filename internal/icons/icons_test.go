package icons

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClass(t *testing.T) {
	assert.Equal(t, "fa-solid fa-leaf", Class("leaf"))
	assert.Equal(t, "fa-solid fa-apple-whole", Class("apple-alt"))
	assert.Equal(t, Class(Fallback), Class("does-not-exist"))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("carrot"))
	assert.False(t, Known(""))
	assert.Contains(t, Names(), "calendar-alt")
	assert.IsIncreasing(t, Names())
}

func TestIcon(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Icon("seedling", "text-white").Render(&buf))
	assert.Equal(t, `<i class="fa-solid fa-seedling text-white" aria-hidden="true" data-icon="seedling"></i>`, buf.String())
}
