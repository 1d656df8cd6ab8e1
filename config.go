package translate

import "github.com/goliatone/go-translate/internal/runtimeconfig"

// Config aggregates module configuration.
type Config = runtimeconfig.Config

// ProviderConfig captures the external translation service binding.
type ProviderConfig = runtimeconfig.ProviderConfig

// BulkConfig paces the background translator.
type BulkConfig = runtimeconfig.BulkConfig

// CacheConfig controls the translation cache.
type CacheConfig = runtimeconfig.CacheConfig

// HTTPConfig controls handler mounting.
type HTTPConfig = runtimeconfig.HTTPConfig

// Features toggles module functionality.
type Features = runtimeconfig.Features

// LoggingConfig captures runtime logging options.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns the module defaults.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
