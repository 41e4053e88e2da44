// Package config defines the runtime configuration for the calculators site
// and the functions for loading and validating it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-calculators.
type Configuration struct {
	Site    SiteConfig    `mapstructure:"site" yaml:"site"`
	Server  ServerConfig  `mapstructure:"server" yaml:"server"`
	Feeds   FeedsConfig   `mapstructure:"feeds" yaml:"feeds"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
}

// SiteConfig describes the public site used in page metadata and feeds.
type SiteConfig struct {
	BaseURL       string `mapstructure:"baseUrl" yaml:"baseUrl"`
	Title         string `mapstructure:"title" yaml:"title"`
	Description   string `mapstructure:"description" yaml:"description"`
	Author        string `mapstructure:"author" yaml:"author,omitempty"`
	Language      string `mapstructure:"language" yaml:"language"`
	TwitterHandle string `mapstructure:"twitterHandle" yaml:"twitterHandle,omitempty"`
	Image         string `mapstructure:"image" yaml:"image,omitempty"` // social preview, relative or absolute
}

// ServerConfig defines runtime parameters for the HTTP server.
type ServerConfig struct {
	Address         string        `mapstructure:"address" yaml:"address"`
	MaxBodySize     string        `mapstructure:"maxBodySize" yaml:"maxBodySize"` // e.g. 64K, 1M
	RateLimit       float64       `mapstructure:"rateLimit" yaml:"rateLimit"`     // API requests per second
	RateBurst       int           `mapstructure:"rateBurst" yaml:"rateBurst"`
	ReadTimeout     time.Duration `mapstructure:"readTimeout" yaml:"readTimeout"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout" yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout" yaml:"shutdownTimeout"`
}

// FeedsConfig controls how often the sitemap and feeds are rebuilt.
type FeedsConfig struct {
	RefreshSchedule string `mapstructure:"refreshSchedule" yaml:"refreshSchedule"` // cron spec or descriptor
	ItemLimit       int    `mapstructure:"itemLimit" yaml:"itemLimit"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, json, yaml
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Configuration {
	return &Configuration{
		Site: SiteConfig{
			BaseURL:     constants.DefaultBaseURL,
			Title:       constants.DefaultSiteTitle,
			Description: constants.DefaultSiteDescription,
			Language:    constants.DefaultLanguage,
		},
		Server: ServerConfig{
			Address:         constants.DefaultServerAddress,
			MaxBodySize:     fmt.Sprintf("%d", constants.DefaultMaxBodySizeBytes),
			RateLimit:       constants.DefaultRateLimit,
			RateBurst:       constants.DefaultRateBurst,
			ReadTimeout:     constants.DefaultReadTimeout,
			WriteTimeout:    constants.DefaultWriteTimeout,
			ShutdownTimeout: constants.DefaultShutdownTimeout,
		},
		Feeds: FeedsConfig{
			RefreshSchedule: constants.DefaultFeedSchedule,
			ItemLimit:       constants.DefaultFeedItemLimit,
		},
		Output: OutputConfig{
			Format: constants.OutputFormatPretty,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Values missing from the file keep their defaults and
// any key can be overridden from the environment, e.g. FINCALC_SITE_BASEURL.
// If the path is empty or the file does not exist, defaults are used.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	configuration.normalize()

	return &configuration, nil
}

func setDefaults(v *viper.Viper, d *Configuration) {
	v.SetDefault("site.baseUrl", d.Site.BaseURL)
	v.SetDefault("site.title", d.Site.Title)
	v.SetDefault("site.description", d.Site.Description)
	v.SetDefault("site.author", d.Site.Author)
	v.SetDefault("site.language", d.Site.Language)
	v.SetDefault("site.twitterHandle", d.Site.TwitterHandle)
	v.SetDefault("site.image", d.Site.Image)

	v.SetDefault("server.address", d.Server.Address)
	v.SetDefault("server.maxBodySize", d.Server.MaxBodySize)
	v.SetDefault("server.rateLimit", d.Server.RateLimit)
	v.SetDefault("server.rateBurst", d.Server.RateBurst)
	v.SetDefault("server.readTimeout", d.Server.ReadTimeout)
	v.SetDefault("server.writeTimeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdownTimeout", d.Server.ShutdownTimeout)

	v.SetDefault("feeds.refreshSchedule", d.Feeds.RefreshSchedule)
	v.SetDefault("feeds.itemLimit", d.Feeds.ItemLimit)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.outputFile", d.Logging.OutputFile)

	v.SetDefault("output.format", d.Output.Format)
}

// normalize trims user-entered strings so that validation and URL building
// see canonical values.
func (c *Configuration) normalize() {
	c.Site.BaseURL = strings.TrimRight(strings.TrimSpace(c.Site.BaseURL), "/")
	c.Site.Title = strings.TrimSpace(c.Site.Title)
	c.Site.Description = strings.TrimSpace(c.Site.Description)
	c.Site.Language = strings.ToLower(strings.TrimSpace(c.Site.Language))
	c.Site.TwitterHandle = strings.TrimSpace(c.Site.TwitterHandle)
	if c.Site.TwitterHandle != "" && !strings.HasPrefix(c.Site.TwitterHandle, "@") {
		c.Site.TwitterHandle = "@" + c.Site.TwitterHandle
	}
	c.Server.Address = strings.TrimSpace(c.Server.Address)
	if c.Server.Address == "" {
		c.Server.Address = constants.DefaultServerAddress
	}
	c.Feeds.RefreshSchedule = strings.TrimSpace(c.Feeds.RefreshSchedule)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
}

// MaxBodySizeBytes returns the configured request body limit in bytes.
func (c *ServerConfig) MaxBodySizeBytes() int64 {
	size, err := ParseSize(c.MaxBodySize)
	if err != nil || size <= 0 {
		return constants.DefaultMaxBodySizeBytes
	}
	return size
}
