package provider

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// ErrClientRequired indicates the adapter was constructed without a client.
var ErrClientRequired = errors.New("provider: translation client is required")

const defaultCallTimeout = 5 * time.Second

// Option mutates the adapter configuration.
type Option func(*Adapter)

// WithLogger overrides the adapter logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(a *Adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithCallTimeout bounds each provider call. Zero restores the default.
func WithCallTimeout(timeout time.Duration) Option {
	return func(a *Adapter) {
		if timeout > 0 {
			a.timeout = timeout
		}
	}
}

// Adapter wraps a raw translation client with the module's degradation
// policy: same-locale requests never reach the provider, and provider
// failures of any kind return the source text unchanged rather than an
// error. Failures are logged with enough context to diagnose later.
type Adapter struct {
	client  interfaces.TranslationProvider
	logger  interfaces.Logger
	timeout time.Duration
}

// NewAdapter constructs an adapter around a raw client.
func NewAdapter(client interfaces.TranslationProvider, opts ...Option) *Adapter {
	adapter := &Adapter{
		client:  client,
		logger:  logging.NoOp(),
		timeout: defaultCallTimeout,
	}
	for _, opt := range opts {
		opt(adapter)
	}
	return adapter
}

// Name reports the wrapped client's service identifier.
func (a *Adapter) Name() string {
	if a.client == nil {
		return ""
	}
	return a.client.Name()
}

// Translate performs a single translation. The returned result always holds
// usable text; the boolean degraded flag reports that the provider failed
// and the source text was passed through.
func (a *Adapter) Translate(ctx context.Context, req interfaces.TranslationRequest) (interfaces.TranslationResult, bool) {
	source := locales.Normalize(req.SourceLocale)
	target := locales.Normalize(req.TargetLocale)

	if source == target || target == "" {
		return interfaces.TranslationResult{TranslatedText: req.Text, Skipped: true}, false
	}
	if req.Text == "" {
		return interfaces.TranslationResult{TranslatedText: "", Skipped: true}, false
	}
	if a.client == nil {
		a.logger.Error("translation client missing", "target_locale", target.String())
		return interfaces.TranslationResult{TranslatedText: req.Text}, true
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	normalized := interfaces.TranslationRequest{
		Text:         req.Text,
		SourceLocale: source.String(),
		TargetLocale: target.String(),
		UseGlossary:  req.UseGlossary,
	}
	result, err := a.client.Translate(callCtx, normalized)
	if err != nil {
		a.logger.Warn("provider call failed, returning source text",
			"service", a.client.Name(),
			"source_locale", source.String(),
			"target_locale", target.String(),
			"chars", len(req.Text),
			"error", err,
		)
		return interfaces.TranslationResult{TranslatedText: req.Text, Service: a.client.Name()}, true
	}
	if result.TranslatedText == "" {
		result.TranslatedText = req.Text
	}
	if result.Service == "" {
		result.Service = a.client.Name()
	}
	return result, false
}

// ProviderTag renders a normalized tag in the casing external services
// expect: lower-case language, upper-case region ("zh-tw" -> "zh-TW").
func ProviderTag(tag locales.Tag) string {
	value := tag.String()
	idx := strings.IndexByte(value, '-')
	if idx < 0 {
		return value
	}
	return value[:idx] + "-" + strings.ToUpper(value[idx+1:])
}
