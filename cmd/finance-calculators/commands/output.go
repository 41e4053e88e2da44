package commands

import (
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/validation"
)

// outputFormat resolves the output format; the flag takes precedence over
// configuration.
func (a *app) outputFormat(flagValue string) (string, error) {
	format := a.conf.Output.Format
	if override := strings.ToLower(strings.TrimSpace(flagValue)); override != "" {
		format = override
	}
	if err := validation.ValidateOutputFormat(format); err != nil {
		return "", err
	}
	return format, nil
}
