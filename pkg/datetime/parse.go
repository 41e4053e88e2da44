// Package datetime provides date formatting for feeds and sitemaps.
package datetime

import (
	"time"
)

const (
	// SitemapLayout is the W3C date form used for sitemap <lastmod>.
	SitemapLayout = "2006-01-02"

	// RSSLayout is the RFC 822 form (with four-digit year) required by RSS 2.0.
	RSSLayout = time.RFC1123Z

	// AtomLayout is the RFC 3339 form required by Atom.
	AtomLayout = time.RFC3339
)

// SitemapDate formats t for a sitemap <lastmod> element.
func SitemapDate(t time.Time) string {
	return t.UTC().Format(SitemapLayout)
}

// RSSDate formats t for RSS <pubDate> and <lastBuildDate> elements.
func RSSDate(t time.Time) string {
	return t.UTC().Format(RSSLayout)
}

// AtomDate formats t for Atom <updated> elements.
func AtomDate(t time.Time) string {
	return t.UTC().Format(AtomLayout)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// TruncateToSecond drops sub-second precision so that timestamps written to
// feeds compare equal after a format/parse round trip.
func TruncateToSecond(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}
