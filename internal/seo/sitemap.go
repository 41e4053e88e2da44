package seo

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// StaticPage is a non-calculator page listed in the sitemap.
type StaticPage struct {
	Path       string
	ChangeFreq string
	Priority   float64
}

// StaticPages returns the informational pages in sitemap order.
func StaticPages() []StaticPage {
	return []StaticPage{
		{Path: AboutPath, ChangeFreq: "monthly", Priority: 0.5},
		{Path: ContactPath, ChangeFreq: "yearly", Priority: 0.3},
	}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Sitemap renders a sitemaps.org urlset with the home page, every calculator
// in registration order, then the static pages.
func Sitemap(site Site, defs []calculator.Definition, pages []StaticPage, lastmod time.Time) ([]byte, error) {
	date := datetime.SitemapDate(lastmod)

	set := urlSet{Xmlns: sitemapNamespace}
	set.URLs = append(set.URLs, sitemapURL{
		Loc: site.URL(HomePath), LastMod: date, ChangeFreq: "weekly", Priority: "1.0",
	})
	for _, def := range defs {
		set.URLs = append(set.URLs, sitemapURL{
			Loc: site.URL(CalculatorPath(def.Identifier)), LastMod: date, ChangeFreq: "monthly", Priority: "0.8",
		})
	}
	for _, page := range pages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        site.URL(page.Path),
			LastMod:    date,
			ChangeFreq: page.ChangeFreq,
			Priority:   fmt.Sprintf("%.1f", page.Priority),
		})
	}

	return marshalXML(set)
}

func marshalXML(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode XML: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
