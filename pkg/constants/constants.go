// Package constants provides shared constants for the finance-calculators application.
package constants

import "time"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier converts whole-number percents (15) to fractions (0.15)
	PercentageMultiplier = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultEnvFile is the default dotenv file loaded before configuration
	DefaultEnvFile = ".env"

	// EnvPrefix prefixes environment overrides, e.g. FINCALC_SITE_BASEURL
	EnvPrefix = "FINCALC"
)

// Site defaults
const (
	DefaultBaseURL         = "http://localhost:8080"
	DefaultSiteTitle       = "Finance Calculators"
	DefaultSiteDescription = "Free financial calculators for investing, taxes, loans and savings, with the formulas explained."
	DefaultLanguage        = "en-us"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes caps API request bodies (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultRateLimit is the sustained API request rate per second
	DefaultRateLimit = 20.0

	// DefaultRateBurst is the API burst size
	DefaultRateBurst = 40

	// DefaultBatchLimit caps the number of items in one batch evaluation
	DefaultBatchLimit = 50

	// DefaultReadTimeout bounds reading a full request
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout bounds writing a response
	DefaultWriteTimeout = 15 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown
	DefaultShutdownTimeout = 10 * time.Second
)

// Feed defaults
const (
	// DefaultFeedSchedule rebuilds sitemap and feeds once an hour
	DefaultFeedSchedule = "@hourly"

	// DefaultFeedItemLimit caps RSS and Atom entries
	DefaultFeedItemLimit = 50
)

// Published document names
const (
	SitemapFile = "sitemap.xml"
	RSSFile     = "rss.xml"
	AtomFile    = "atom.xml"
	RobotsFile  = "robots.txt"
)
