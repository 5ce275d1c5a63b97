package sections_test

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/nfrund/gamma/internal/content"
	"github.com/nfrund/gamma/web/src/templates/pages"
	"github.com/nfrund/gamma/web/src/templates/sections"
)

func render(t *testing.T, node g.Node) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestHero(t *testing.T) {
	t.Run("missing business name shows the default", func(t *testing.T) {
		hero := content.Default().Hero
		hero.BusinessName = ""

		doc := render(t, sections.Hero(hero))
		assert.Equal(t, content.DefaultBusinessName, doc.Find(`[data-field="business-name"]`).Text())
	})

	t.Run("configured business name", func(t *testing.T) {
		hero := content.Default().Hero
		hero.BusinessName = "Gamma Bistro"

		doc := render(t, sections.Hero(hero))
		assert.Equal(t, "Gamma Bistro", doc.Find(`[data-field="business-name"]`).Text())
		assert.Equal(t, hero.Headline, doc.Find("h1").Text())
	})

	t.Run("reveals on mount with growing stagger", func(t *testing.T) {
		doc := render(t, sections.Hero(content.Default().Hero))
		assert.Equal(t, "rtl", doc.Find("section#hero").AttrOr("dir", ""))
		assert.GreaterOrEqual(t, doc.Find(`[data-reveal="mount"]`).Length(), 6)
		assert.Zero(t, doc.Find(`[data-reveal="view"]`).Length())
	})

	t.Run("blurb card is optional", func(t *testing.T) {
		hero := content.Default().Hero
		hero.Blurb = ""
		doc := render(t, sections.Hero(hero))
		assert.Zero(t, doc.Find("p.text-right").Length())
	})
}

func TestAbout(t *testing.T) {
	about := content.Default().About
	doc := render(t, sections.About(about))

	section := doc.Find("section#about")
	require.Equal(t, 1, section.Length())
	assert.Equal(t, about.Heading, section.Find("#about-heading").Text())
	assert.Equal(t, len(about.Features), section.Find(`[data-card="feature"]`).Length())
	assert.Equal(t, 1, section.Find("[data-reveal-group]").Length())
	assert.Equal(t, 3, section.Find(`[data-reveal="group"]`).Length())
	assert.Equal(t, about.TeamCaption, section.Find("h3.text-white").Text())
	assert.Contains(t, section.Text(), about.Story.Paragraphs[2])
	assert.Equal(t, about.CTALabel, section.Find("button").Text())
}

func TestServicesRendersEveryCardInOrder(t *testing.T) {
	services := content.Default().Services
	require.Len(t, services.Cards, 4)

	doc := render(t, sections.Services(services))
	cards := doc.Find(`[data-card="service"]`)
	require.Equal(t, 4, cards.Length())

	cards.Each(func(i int, card *goquery.Selection) {
		want := services.Cards[i]
		assert.Equal(t, want.Title, card.Find("h3").Text())
		assert.Equal(t, want.Description, card.Find("p").Text())
		assert.Equal(t, want.ImageURL, card.Find("img").AttrOr("src", ""))
		assert.Equal(t, want.Icon, card.Find("i[data-icon]").AttrOr("data-icon", ""))
	})
}

func TestByName(t *testing.T) {
	page := content.Default()
	for _, name := range sections.Names {
		t.Run(name, func(t *testing.T) {
			node, err := sections.ByName(page, name)
			require.NoError(t, err)
			assert.Equal(t, 1, render(t, node).Find("section#"+name).Length())
		})
	}

	_, err := sections.ByName(page, "menu")
	assert.ErrorIs(t, err, sections.ErrUnknownSection)
}

func TestLandingPage(t *testing.T) {
	page := content.Default()
	doc := render(t, pages.Landing(page))

	assert.Equal(t, "he", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, "rtl", doc.Find("html").AttrOr("dir", ""))
	assert.Equal(t, page.Title+" - "+page.Hero.BusinessName, doc.Find("title").Text())

	ids := doc.Find("main > section").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("id", "")
	})
	assert.Equal(t, sections.Names, ids)

	settings := doc.Find(`script#reveal-settings`)
	require.Equal(t, 1, settings.Length())
	assert.Contains(t, settings.Text(), `"threshold":0.2`)
	assert.Equal(t, 1, doc.Find(`script[src="/static/reveal.js"]`).Length())
	assert.Equal(t, 1, doc.Find("#cta-dialog").Length())
}
