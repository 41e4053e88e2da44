package config

import (
	"fmt"

	"github.com/iwvelando/finance-calculators/pkg/validation"
	"github.com/robfig/cron/v3"
	"go.uber.org/multierr"
)

// Validate checks the configuration and returns every problem found,
// combined into a single error.
func (c *Configuration) Validate() error {
	var errs error

	if err := validation.ValidateBaseURL(c.Site.BaseURL); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Site.Title == "" {
		errs = multierr.Append(errs, fmt.Errorf("site title cannot be empty"))
	}
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		errs = multierr.Append(errs, err)
	}
	if _, err := ParseSize(c.Server.MaxBodySize); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("server maxBodySize: %w", err))
	}
	if c.Server.RateLimit < 0 {
		errs = multierr.Append(errs, fmt.Errorf("server rateLimit cannot be negative, got %v", c.Server.RateLimit))
	}
	if c.Server.RateLimit > 0 && c.Server.RateBurst < 1 {
		errs = multierr.Append(errs, fmt.Errorf("server rateBurst must be at least 1 when rateLimit is set, got %d", c.Server.RateBurst))
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		errs = multierr.Append(errs, fmt.Errorf("server timeouts cannot be negative"))
	}
	if c.Feeds.RefreshSchedule != "" {
		if _, err := cron.ParseStandard(c.Feeds.RefreshSchedule); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("feeds refreshSchedule %q: %w", c.Feeds.RefreshSchedule, err))
		}
	}
	if c.Feeds.ItemLimit < 0 {
		errs = multierr.Append(errs, fmt.Errorf("feeds itemLimit cannot be negative, got %d", c.Feeds.ItemLimit))
	}

	return errs
}
