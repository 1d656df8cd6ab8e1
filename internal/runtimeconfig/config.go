package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrDefaultLocaleRequired      = errors.New("translate config: default locale is required")
	ErrDefaultLocaleNotSupported  = errors.New("translate config: default locale must be in the supported set")
	ErrLocalesRequired            = errors.New("translate config: at least one supported locale is required")
	ErrProviderProjectRequired    = errors.New("translate config: provider project is required when the provider is enabled")
	ErrProviderTimeoutInvalid     = errors.New("translate config: provider timeout must be zero or positive")
	ErrRateLimitInvalid           = errors.New("translate config: rate limit delays must be zero or positive")
	ErrSchedulingRequiresProvider = errors.New("translate config: scheduling requires the provider to be enabled")
	ErrLoggingProviderUnknown     = errors.New("translate config: logging provider is invalid")
	ErrLoggingLevelInvalid        = errors.New("translate config: logging level is invalid")
	ErrLoggingFormatInvalid       = errors.New("translate config: logging format is invalid")
)

// Config aggregates locale, provider, and feature settings for the module.
// Fields use simple types so host applications can bind them from their own
// configuration layer.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Locales       []string
	Provider      ProviderConfig
	Bulk          BulkConfig
	Cache         CacheConfig
	HTTP          HTTPConfig
	Features      Features
	Logging       LoggingConfig
}

// ProviderConfig captures the external translation service binding.
type ProviderConfig struct {
	Enabled        bool
	BaseURL        string
	APIKey         string
	Project        string
	Location       string
	GlossaryPrefix string
	CallTimeout    time.Duration
	RetryAttempts  int
}

// BulkConfig paces the background translator.
type BulkConfig struct {
	MinDelay     time.Duration
	PerCharDelay time.Duration
}

// CacheConfig controls the translation cache.
type CacheConfig struct {
	Enabled  bool
	PruneAge time.Duration
}

// HTTPConfig controls handler mounting.
type HTTPConfig struct {
	BasePath string
}

// Features toggles module functionality.
type Features struct {
	Glossary   bool
	Scheduling bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns opinionated defaults: Japanese-authored content
// served in the locales the marketplace supports.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "ja",
		Locales:       []string{"ja", "en", "zh-tw", "zh-cn", "ko", "fr", "es", "de"},
		Provider: ProviderConfig{
			Location:      "global",
			CallTimeout:   5 * time.Second,
			RetryAttempts: 3,
		},
		Bulk: BulkConfig{
			MinDelay:     100 * time.Millisecond,
			PerCharDelay: 2 * time.Millisecond,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		HTTP: HTTPConfig{
			BasePath: "/api/i18n",
		},
		Features: Features{
			Glossary: true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if len(cfg.Locales) == 0 {
		return ErrLocalesRequired
	}
	if !containsLocale(cfg.Locales, cfg.DefaultLocale) {
		return fmt.Errorf("%w: %s", ErrDefaultLocaleNotSupported, cfg.DefaultLocale)
	}
	if cfg.Provider.Enabled && strings.TrimSpace(cfg.Provider.Project) == "" {
		return ErrProviderProjectRequired
	}
	if cfg.Provider.CallTimeout < 0 {
		return ErrProviderTimeoutInvalid
	}
	if cfg.Bulk.MinDelay < 0 || cfg.Bulk.PerCharDelay < 0 {
		return ErrRateLimitInvalid
	}
	if cfg.Features.Scheduling && !cfg.Provider.Enabled {
		return ErrSchedulingRequiresProvider
	}
	if provider := normalizeToken(cfg.Logging.Provider); provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := normalizeToken(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if format := normalizeToken(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
	}
	return nil
}

func containsLocale(locales []string, target string) bool {
	target = normalizeToken(target)
	for _, locale := range locales {
		if normalizeToken(locale) == target {
			return true
		}
	}
	return false
}

func normalizeToken(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "gologger", "noop":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch format {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
