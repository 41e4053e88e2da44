package seo

import (
	"encoding/xml"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
)

const (
	atomNamespace = "http://www.w3.org/2005/Atom"
	generatorName = "finance-calculators"
)

type rssDocument struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	AtomNS  string     `xml:"xmlns:atom,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language,omitempty"`
	Generator     string    `xml:"generator"`
	LastBuildDate string    `xml:"lastBuildDate"`
	AtomLink      atomLink  `xml:"atom:link"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	Category    string  `xml:"category,omitempty"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
	Type string `xml:"type,attr,omitempty"`
}

type atomFeed struct {
	XMLName   xml.Name    `xml:"http://www.w3.org/2005/Atom feed"`
	Title     string      `xml:"title"`
	Subtitle  string      `xml:"subtitle,omitempty"`
	ID        string      `xml:"id"`
	Updated   string      `xml:"updated"`
	Links     []atomLink  `xml:"link"`
	Author    atomPerson  `xml:"author"`
	Generator string      `xml:"generator"`
	Entries   []atomEntry `xml:"entry"`
}

type atomPerson struct {
	Name string `xml:"name"`
	URI  string `xml:"uri,omitempty"`
}

type atomEntry struct {
	Title    string        `xml:"title"`
	ID       string        `xml:"id"`
	Updated  string        `xml:"updated"`
	Links    []atomLink    `xml:"link"`
	Summary  string        `xml:"summary"`
	Category *atomCategory `xml:"category,omitempty"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// FeedID returns a stable urn:uuid identifier derived from an absolute URL.
func FeedID(absoluteURL string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(absoluteURL)).URN()
}

// limitDefinitions applies the feed item limit; limit <= 0 keeps everything.
func limitDefinitions(defs []calculator.Definition, limit int) []calculator.Definition {
	if limit > 0 && len(defs) > limit {
		return defs[:limit]
	}
	return defs
}

// RSS renders an RSS 2.0 channel with one item per calculator.
func RSS(site Site, defs []calculator.Definition, builtAt time.Time, limit int) ([]byte, error) {
	built := datetime.RSSDate(builtAt)

	channel := rssChannel{
		Title:         site.Title,
		Link:          site.URL(HomePath),
		Description:   site.Description,
		Language:      site.Language,
		Generator:     generatorName,
		LastBuildDate: built,
		AtomLink: atomLink{
			Href: site.URL(constants.RSSFile),
			Rel:  "self",
			Type: "application/rss+xml",
		},
	}
	for _, def := range limitDefinitions(defs, limit) {
		link := site.URL(CalculatorPath(def.Identifier))
		channel.Items = append(channel.Items, rssItem{
			Title:       def.Name,
			Link:        link,
			Description: def.Description,
			Category:    def.Category,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			PubDate:     built,
		})
	}

	return marshalXML(rssDocument{
		Version: "2.0",
		AtomNS:  atomNamespace,
		Channel: channel,
	})
}

// Atom renders an Atom 1.0 feed with one entry per calculator. Entry ids are
// derived from page URLs so they do not change between builds.
func Atom(site Site, defs []calculator.Definition, builtAt time.Time, limit int) ([]byte, error) {
	updated := datetime.AtomDate(builtAt)
	home := site.URL(HomePath)

	feed := atomFeed{
		Title:    site.Title,
		Subtitle: site.Description,
		ID:       FeedID(home),
		Updated:  updated,
		Links: []atomLink{
			{Href: site.URL(constants.AtomFile), Rel: "self", Type: "application/atom+xml"},
			{Href: home, Rel: "alternate", Type: "text/html"},
		},
		Author:    atomPerson{Name: site.Publisher(), URI: home},
		Generator: generatorName,
	}
	for _, def := range limitDefinitions(defs, limit) {
		link := site.URL(CalculatorPath(def.Identifier))
		entry := atomEntry{
			Title:   def.Name,
			ID:      FeedID(link),
			Updated: updated,
			Links:   []atomLink{{Href: link, Rel: "alternate", Type: "text/html"}},
			Summary: def.Description,
		}
		if def.Category != "" {
			entry.Category = &atomCategory{Term: def.Category}
		}
		feed.Entries = append(feed.Entries, entry)
	}

	return marshalXML(feed)
}
