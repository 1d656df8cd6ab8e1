package logging

import (
	"context"

	"github.com/goliatone/go-translate/pkg/interfaces"
)

const (
	rootModule     = "translate"
	cacheModule    = "translate.cache"
	providerModule = "translate.provider"
	bulkModule     = "translate.bulk"
	httpModule     = "translate.http"
	jobsModule     = "translate.jobs"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// CacheLogger returns the logger namespace reserved for the translation cache.
func CacheLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, cacheModule)
}

// ProviderLogger returns the logger namespace reserved for provider adapters.
func ProviderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, providerModule)
}

// BulkLogger returns the logger namespace reserved for the bulk translator.
func BulkLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, bulkModule)
}

// HTTPLogger returns the logger namespace reserved for HTTP handlers.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// JobsLogger returns the logger namespace reserved for scheduler workers.
func JobsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, jobsModule)
}

// WithTranslationContext enriches the provided logger with the common
// translation fields. Empty values are ignored.
func WithTranslationContext(logger interfaces.Logger, sourceLocale, targetLocale string) interfaces.Logger {
	fields := map[string]any{}
	if sourceLocale != "" {
		fields["source_locale"] = sourceLocale
	}
	if targetLocale != "" {
		fields["target_locale"] = targetLocale
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
