package pages_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/web/src/templates/pages"
)

func renderLanding(t *testing.T, page *content.Page) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, pages.Landing(page).Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestLandingRevealsAreOneShot(t *testing.T) {
	doc := renderLanding(t, content.Default())

	animated := doc.Find("[data-reveal]")
	require.NotZero(t, animated.Length())

	triggers := map[string]int{}
	animated.Each(func(_ int, s *goquery.Selection) {
		trigger := s.AttrOr("data-reveal", "")
		triggers[trigger]++

		_, once := s.Attr("data-reveal-once")
		assert.True(t, once, "reveal %q on <%s> must fire once", trigger, goquery.NodeName(s))
		assert.Contains(t, []string{"mount", "view", "group"}, trigger)
		assert.Contains(t, s.AttrOr("style", ""), "--reveal-duration:")

		if trigger == "group" {
			assert.Equal(t, 1, s.ParentsFiltered("[data-reveal-group]").Length(),
				"group reveal needs an enclosing group")
		}
	})

	assert.NotZero(t, triggers["mount"], "hero items animate on mount")
	assert.NotZero(t, triggers["view"], "cards animate on view")
	assert.NotZero(t, triggers["group"], "about header animates as a group")
}

func TestLandingRevealSettings(t *testing.T) {
	doc := renderLanding(t, content.Default())
	script := doc.Find(`script#reveal-settings[type="application/json"]`)
	require.Equal(t, 1, script.Length())
	assert.JSONEq(t, `{"threshold":0.2,"rootMargin":"0px"}`, script.Text())
}

func TestLandingCanonicalURL(t *testing.T) {
	t.Run("without base URL", func(t *testing.T) {
		doc := renderLanding(t, content.Default())
		assert.Zero(t, doc.Find(`link[rel="canonical"]`).Length())
		assert.Zero(t, doc.Find(`meta[property="og:url"]`).Length())
	})

	t.Run("with base URL", func(t *testing.T) {
		page := content.Default()
		page.BaseURL = "https://gamma.example"

		doc := renderLanding(t, page)
		assert.Equal(t, "https://gamma.example/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
		assert.Equal(t, "https://gamma.example/", doc.Find(`meta[property="og:url"]`).AttrOr("content", ""))
	})
}
