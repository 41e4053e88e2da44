// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/iwvelando/finance-calculators/pkg/constants"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatYAML:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatJSON, constants.OutputFormatYAML, format)
}

// ValidateIdentifier checks that a calculator identifier is a lowercase,
// hyphen-separated slug usable as a URL path segment.
func ValidateIdentifier(identifier string) error {
	if identifier == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	if !identifierPattern.MatchString(identifier) {
		return fmt.Errorf("identifier %q must be a lowercase hyphenated slug", identifier)
	}
	return nil
}

// ValidateBaseURL checks that a site base URL is absolute http(s) without a
// query or fragment.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL %q must use http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL %q must include a host", raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("base URL %q must not include a query or fragment", raw)
	}
	return nil
}
