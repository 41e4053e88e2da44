// Package publish builds the sitemap, feeds and robots.txt for the site and
// keeps a current copy of them for the HTTP server.
package publish

import (
	"fmt"
	"time"

	"github.com/iwvelando/finance-calculators/internal/calculator"
	"github.com/iwvelando/finance-calculators/internal/seo"
	"github.com/iwvelando/finance-calculators/pkg/datetime"
)

// Documents is one consistent build of every published document.
type Documents struct {
	Sitemap []byte
	RSS     []byte
	Atom    []byte
	Robots  []byte
	BuiltAt time.Time
}

// Builder renders Documents from a registry.
type Builder struct {
	site      seo.Site
	registry  *calculator.Registry
	itemLimit int
	now       func() time.Time
}

// NewBuilder returns a Builder. itemLimit caps feed entries; 0 means no cap.
func NewBuilder(site seo.Site, registry *calculator.Registry, itemLimit int) *Builder {
	return &Builder{
		site:      site,
		registry:  registry,
		itemLimit: itemLimit,
		now:       time.Now,
	}
}

// Build renders every document against the current registry contents.
func (b *Builder) Build() (*Documents, error) {
	builtAt := datetime.TruncateToSecond(b.now())
	defs := b.registry.List()

	sitemap, err := seo.Sitemap(b.site, defs, seo.StaticPages(), builtAt)
	if err != nil {
		return nil, fmt.Errorf("failed to build sitemap: %w", err)
	}
	rss, err := seo.RSS(b.site, defs, builtAt, b.itemLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build RSS feed: %w", err)
	}
	atom, err := seo.Atom(b.site, defs, builtAt, b.itemLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to build Atom feed: %w", err)
	}

	return &Documents{
		Sitemap: sitemap,
		RSS:     rss,
		Atom:    atom,
		Robots:  seo.Robots(b.site),
		BuiltAt: builtAt,
	}, nil
}
