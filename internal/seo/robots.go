package seo

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

// Robots renders robots.txt. The JSON API is excluded from crawling and the
// sitemap location is advertised.
func Robots(site Site) []byte {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", site.URL(constants.SitemapFile))
	return []byte(b.String())
}
