package seo

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/config"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builtAt = datetime.MustParseTime(datetime.AtomLayout, "2026-03-05T14:30:00Z")

func testSite() Site {
	return NewSite(config.SiteConfig{
		BaseURL:       "https://calc.example.com/",
		Title:         "Example Calculators",
		Description:   "Calculators & formulas",
		Language:      "en-us",
		TwitterHandle: "@examplecalc",
		Image:         "/static/og.png",
	})
}

func TestSiteURL(t *testing.T) {
	site := testSite()

	assert.Equal(t, "https://calc.example.com/", site.URL("/"))
	assert.Equal(t, "https://calc.example.com/", site.URL(""))
	assert.Equal(t, "https://calc.example.com/about", site.URL("/about"))
	assert.Equal(t, "https://calc.example.com/rss.xml", site.URL("rss.xml"))
	assert.Equal(t, "https://cdn.example.com/x.png", site.URL("https://cdn.example.com/x.png"))
	assert.Equal(t, "https://calc.example.com/static/og.png", site.ImageURL())
	assert.Equal(t, "/calculators/capital-gains-tax", CalculatorPath(calculator.CapitalGainsTaxID))
}

func TestCalculatorMeta(t *testing.T) {
	site := testSite()
	def, err := calculator.Default().Lookup(calculator.CapitalGainsTaxID)
	require.NoError(t, err)

	meta, err := CalculatorMeta(site, def)
	require.NoError(t, err)

	assert.Equal(t, def.Name+" | Example Calculators", meta.Title)
	assert.Equal(t, def.Description, meta.Description)
	assert.Equal(t, "https://calc.example.com/calculators/capital-gains-tax", meta.Canonical)
	assert.Equal(t, RobotsIndex, meta.Robots)
	assert.Equal(t, meta.Canonical, meta.OpenGraph.URL)
	assert.Equal(t, "en_US", meta.OpenGraph.Locale)
	assert.Equal(t, "summary_large_image", meta.Twitter.Card)
	assert.Equal(t, "@examplecalc", meta.Twitter.Site)
	assert.Contains(t, meta.KeywordString(), "capital gains")
	require.Len(t, meta.JSONLD, 2)

	var app map[string]any
	require.NoError(t, json.Unmarshal([]byte(meta.JSONLD[0]), &app))
	assert.Equal(t, "WebApplication", app["@type"])
	assert.Equal(t, "FinanceApplication", app["applicationCategory"])
	assert.Equal(t, meta.Canonical, app["url"])
	offers, ok := app["offers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "0", offers["price"])

	var crumbs map[string]any
	require.NoError(t, json.Unmarshal([]byte(meta.JSONLD[1]), &crumbs))
	assert.Equal(t, "BreadcrumbList", crumbs["@type"])
	items, ok := crumbs["itemListElement"].([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestHomeMetaListsEveryCalculator(t *testing.T) {
	defs := calculator.Default().List()
	meta, err := HomeMeta(testSite(), defs)
	require.NoError(t, err)

	assert.Equal(t, "Example Calculators", meta.Title)
	require.Len(t, meta.JSONLD, 2)
	assert.NotContains(t, meta.JSONLD[0], "<")

	var list struct {
		Type     string `json:"@type"`
		Elements []struct {
			Position int    `json:"position"`
			Name     string `json:"name"`
			URL      string `json:"url"`
		} `json:"itemListElement"`
	}
	require.NoError(t, json.Unmarshal([]byte(meta.JSONLD[1]), &list))
	assert.Equal(t, "ItemList", list.Type)
	require.Len(t, list.Elements, len(defs))
	for i, def := range defs {
		assert.Equal(t, i+1, list.Elements[i].Position)
		assert.Equal(t, def.Name, list.Elements[i].Name)
		assert.True(t, strings.HasSuffix(list.Elements[i].URL, def.Identifier))
	}
}

func TestStructuredDataEscapesMarkup(t *testing.T) {
	site := testSite()
	site.Title = "</script><script>alert(1)</script>"
	meta, err := AboutMeta(site, "About", "About us")
	require.NoError(t, err)
	require.Len(t, meta.JSONLD, 1)
	assert.NotContains(t, meta.JSONLD[0], "</script>")
	assert.Contains(t, meta.JSONLD[0], `"Organization"`)
}

func TestNotFoundMetaIsNotIndexed(t *testing.T) {
	meta := NotFoundMeta(testSite(), "/missing")
	assert.Equal(t, RobotsNoIndex, meta.Robots)
	assert.Empty(t, meta.JSONLD)
}

func TestSitemap(t *testing.T) {
	defs := calculator.Default().List()
	data, err := Sitemap(testSite(), defs, StaticPages(), builtAt)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))

	var set urlSet
	require.NoError(t, xml.Unmarshal(data, &set))
	require.Len(t, set.URLs, 1+len(defs)+len(StaticPages()))

	assert.Equal(t, "https://calc.example.com/", set.URLs[0].Loc)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	for i, def := range defs {
		assert.Equal(t, "https://calc.example.com/calculators/"+def.Identifier, set.URLs[i+1].Loc)
		assert.Equal(t, "2026-03-05", set.URLs[i+1].LastMod)
	}
	assert.Equal(t, "https://calc.example.com/contact", set.URLs[len(set.URLs)-1].Loc)
	assert.Contains(t, string(data), `xmlns="http://www.sitemaps.org/schemas/sitemap/0.9"`)
}

func TestRSS(t *testing.T) {
	defs := calculator.Default().List()
	data, err := RSS(testSite(), defs, builtAt, 0)
	require.NoError(t, err)

	var doc rssDocument
	require.NoError(t, xml.Unmarshal(data, &doc))
	assert.Equal(t, "2.0", doc.Version)
	assert.Equal(t, "Calculators & formulas", doc.Channel.Description)
	assert.Equal(t, "Thu, 05 Mar 2026 14:30:00 +0000", doc.Channel.LastBuildDate)
	require.Len(t, doc.Channel.Items, len(defs))
	for i, def := range defs {
		item := doc.Channel.Items[i]
		assert.Equal(t, def.Name, item.Title)
		assert.Equal(t, def.Description, item.Description)
		assert.Equal(t, item.Link, item.GUID.Value)
		assert.True(t, item.GUID.IsPermaLink)
	}

	text := string(data)
	assert.Contains(t, text, `xmlns:atom="http://www.w3.org/2005/Atom"`)
	assert.Contains(t, text, `<atom:link href="https://calc.example.com/rss.xml" rel="self" type="application/rss+xml">`)
	assert.Contains(t, text, "Calculators &amp; formulas")
}

func TestRSSLimit(t *testing.T) {
	data, err := RSS(testSite(), calculator.Default().List(), builtAt, 2)
	require.NoError(t, err)

	var doc rssDocument
	require.NoError(t, xml.Unmarshal(data, &doc))
	assert.Len(t, doc.Channel.Items, 2)
}

func TestAtom(t *testing.T) {
	defs := calculator.Default().List()
	data, err := Atom(testSite(), defs, builtAt, 0)
	require.NoError(t, err)

	var feed atomFeed
	require.NoError(t, xml.Unmarshal(data, &feed))
	assert.Equal(t, "Example Calculators", feed.Title)
	assert.Equal(t, "2026-03-05T14:30:00Z", feed.Updated)
	assert.True(t, strings.HasPrefix(feed.ID, "urn:uuid:"))
	require.Len(t, feed.Entries, len(defs))

	seen := make(map[string]bool)
	for i, entry := range feed.Entries {
		assert.Equal(t, defs[i].Name, entry.Title)
		assert.False(t, seen[entry.ID], "duplicate entry id %s", entry.ID)
		seen[entry.ID] = true
	}

	again, err := Atom(testSite(), defs, builtAt.Add(time.Hour), 0)
	require.NoError(t, err)
	var second atomFeed
	require.NoError(t, xml.Unmarshal(again, &second))
	assert.Equal(t, feed.ID, second.ID)
	assert.Equal(t, feed.Entries[0].ID, second.Entries[0].ID)
	assert.Contains(t, string(data), `<feed xmlns="http://www.w3.org/2005/Atom">`)
}

func TestFeedID(t *testing.T) {
	a := FeedID("https://calc.example.com/calculators/a")
	b := FeedID("https://calc.example.com/calculators/b")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, FeedID("https://calc.example.com/calculators/a"))
}

func TestRobots(t *testing.T) {
	robots := string(Robots(testSite()))
	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Disallow: /api/")
	assert.Contains(t, robots, "Sitemap: https://calc.example.com/sitemap.xml")
}
