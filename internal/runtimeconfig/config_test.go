package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateDefaultLocale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLocale = ""
	if err := cfg.Validate(); !errors.Is(err, ErrDefaultLocaleRequired) {
		t.Fatalf("Validate() error = %v, want ErrDefaultLocaleRequired", err)
	}

	cfg = DefaultConfig()
	cfg.DefaultLocale = "pt"
	if err := cfg.Validate(); !errors.Is(err, ErrDefaultLocaleNotSupported) {
		t.Fatalf("Validate() error = %v, want ErrDefaultLocaleNotSupported", err)
	}

	// membership check is case-insensitive
	cfg = DefaultConfig()
	cfg.DefaultLocale = "JA"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateLocalesRequired(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locales = nil
	if err := cfg.Validate(); !errors.Is(err, ErrLocalesRequired) {
		t.Fatalf("Validate() error = %v, want ErrLocalesRequired", err)
	}
}

func TestValidateProviderProject(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider.Enabled = true
	if err := cfg.Validate(); !errors.Is(err, ErrProviderProjectRequired) {
		t.Fatalf("Validate() error = %v, want ErrProviderProjectRequired", err)
	}
	cfg.Provider.Project = "tcg-market"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateSchedulingRequiresProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Scheduling = true
	if err := cfg.Validate(); !errors.Is(err, ErrSchedulingRequiresProvider) {
		t.Fatalf("Validate() error = %v, want ErrSchedulingRequiresProvider", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("Validate() error = %v, want ErrLoggingProviderUnknown", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("Validate() error = %v, want ErrLoggingLevelInvalid", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("Validate() error = %v, want ErrLoggingFormatInvalid", err)
	}
}
