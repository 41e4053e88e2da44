// Package seo builds the search-engine and syndication documents for the
// site: page metadata, JSON-LD, sitemap, RSS and Atom feeds and robots.txt.
package seo

import (
	"strings"

	"github.com/iwvelando/finance-calculators/internal/config"
)

// Well-known page paths.
const (
	HomePath        = "/"
	AboutPath       = "/about"
	ContactPath     = "/contact"
	CalculatorsPath = "/calculators/"
)

// Site carries the public identity of the site.
type Site struct {
	BaseURL       string
	Title         string
	Description   string
	Author        string
	Language      string
	TwitterHandle string
	Image         string
}

// NewSite builds a Site from configuration.
func NewSite(cfg config.SiteConfig) Site {
	return Site{
		BaseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		Title:         cfg.Title,
		Description:   cfg.Description,
		Author:        cfg.Author,
		Language:      cfg.Language,
		TwitterHandle: cfg.TwitterHandle,
		Image:         cfg.Image,
	}
}

// URL resolves path against the base URL. Absolute URLs are returned as is.
func (s Site) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" || path == "/" {
		return s.BaseURL + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.BaseURL + path
}

// ImageURL returns the absolute social preview image, or "" when unset.
func (s Site) ImageURL() string {
	if s.Image == "" {
		return ""
	}
	return s.URL(s.Image)
}

// Publisher is the author when set, else the site title.
func (s Site) Publisher() string {
	if s.Author != "" {
		return s.Author
	}
	return s.Title
}

// CalculatorPath returns the page path for a calculator.
func CalculatorPath(identifier string) string {
	return CalculatorsPath + identifier
}
