package web

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevealScript(t *testing.T) {
	data, err := fs.ReadFile(FS, "static/reveal.js")
	require.NoError(t, err)
	js := string(data)

	t.Run("mount reveals commit the hidden state first", func(t *testing.T) {
		body := js[strings.Index(js, "function revealAfterPaint"):]
		body = body[:strings.Index(body, "function scan")]

		flush := strings.Index(body, "offsetHeight")
		frame := strings.Index(body, "requestAnimationFrame")
		require.NotEqual(t, -1, flush, "style flush")
		require.NotEqual(t, -1, frame)
		assert.Less(t, flush, frame)
		assert.Equal(t, 2, strings.Count(body, "requestAnimationFrame("), "class is added two frames later")
		assert.Contains(t, js, `revealAfterPaint(within(root, '[data-reveal="mount"]'))`)
	})

	t.Run("swapped fragments are scanned", func(t *testing.T) {
		assert.Contains(t, js, "htmx:afterSwap")
	})

	t.Run("observer options come from the settings element", func(t *testing.T) {
		assert.Contains(t, js, `getElementById("reveal-settings")`)
		assert.NotContains(t, js, "threshold:", "no second copy of the threshold")
	})
}

func TestRevealStylesheet(t *testing.T) {
	data, err := fs.ReadFile(FS, "static/reveal.css")
	require.NoError(t, err)
	css := string(data)

	assert.Contains(t, css, "[data-reveal].is-revealed")
	assert.Contains(t, css, "prefers-reduced-motion")
}
