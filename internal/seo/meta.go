package seo

import (
	"strings"

	"github.com/iwvelando/finance-calculators/internal/calculator"
)

// Robots directives.
const (
	RobotsIndex   = "index, follow"
	RobotsNoIndex = "noindex, follow"
)

// PageMeta is everything a page needs in its <head>.
type PageMeta struct {
	Title       string
	Description string
	Canonical   string
	Keywords    []string
	Robots      string
	OpenGraph   OpenGraph
	Twitter     TwitterCard
	JSONLD      []string
}

// OpenGraph holds og:* properties.
type OpenGraph struct {
	Type        string
	Title       string
	Description string
	URL         string
	SiteName    string
	Image       string
	Locale      string
}

// TwitterCard holds twitter:* properties.
type TwitterCard struct {
	Card        string
	Site        string
	Title       string
	Description string
	Image       string
}

// KeywordString joins the keywords for the keywords meta tag.
func (m PageMeta) KeywordString() string {
	return joinKeywords(m.Keywords)
}

func joinKeywords(keywords []string) string {
	return strings.Join(keywords, ", ")
}

func (s Site) pageTitle(title string) string {
	if title == "" || title == s.Title {
		return s.Title
	}
	return title + " | " + s.Title
}

// locale converts a language tag such as en-us to the og:locale form en_US.
func (s Site) locale() string {
	parts := strings.SplitN(s.Language, "-", 2)
	if len(parts) != 2 {
		return s.Language
	}
	return strings.ToLower(parts[0]) + "_" + strings.ToUpper(parts[1])
}

func (s Site) newMeta(title, description, path, ogType string) PageMeta {
	fullTitle := s.pageTitle(title)
	canonical := s.URL(path)
	image := s.ImageURL()

	card := "summary"
	if image != "" {
		card = "summary_large_image"
	}

	return PageMeta{
		Title:       fullTitle,
		Description: description,
		Canonical:   canonical,
		Robots:      RobotsIndex,
		OpenGraph: OpenGraph{
			Type:        ogType,
			Title:       fullTitle,
			Description: description,
			URL:         canonical,
			SiteName:    s.Title,
			Image:       image,
			Locale:      s.locale(),
		},
		Twitter: TwitterCard{
			Card:        card,
			Site:        s.TwitterHandle,
			Title:       fullTitle,
			Description: description,
			Image:       image,
		},
	}
}

// HomeMeta describes the home page listing every calculator.
func HomeMeta(site Site, defs []calculator.Definition) (PageMeta, error) {
	meta := site.newMeta(site.Title, site.Description, HomePath, "website")
	for _, def := range defs {
		meta.Keywords = append(meta.Keywords, def.Keywords...)
	}

	ld, err := homeStructuredData(site, defs)
	if err != nil {
		return PageMeta{}, err
	}
	meta.JSONLD = ld
	return meta, nil
}

// CalculatorMeta describes a single calculator page.
func CalculatorMeta(site Site, def calculator.Definition) (PageMeta, error) {
	meta := site.newMeta(def.Name, def.Description, CalculatorPath(def.Identifier), "website")
	meta.Keywords = append([]string(nil), def.Keywords...)

	ld, err := calculatorStructuredData(site, def)
	if err != nil {
		return PageMeta{}, err
	}
	meta.JSONLD = ld
	return meta, nil
}

// AboutMeta describes the About page.
func AboutMeta(site Site, title, description string) (PageMeta, error) {
	meta := site.newMeta(title, description, AboutPath, "website")

	ld, err := organizationStructuredData(site)
	if err != nil {
		return PageMeta{}, err
	}
	meta.JSONLD = ld
	return meta, nil
}

// ContactMeta describes the Contact page.
func ContactMeta(site Site, title, description string) PageMeta {
	return site.newMeta(title, description, ContactPath, "website")
}

// NotFoundMeta describes the not-found page, which must not be indexed.
func NotFoundMeta(site Site, path string) PageMeta {
	meta := site.newMeta("Page not found", "The page you requested does not exist.", path, "website")
	meta.Robots = RobotsNoIndex
	return meta
}
