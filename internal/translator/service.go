package translator

import (
	"context"
	"errors"

	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/internal/provider"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// ErrAdapterRequired indicates the service was constructed without a provider adapter.
var ErrAdapterRequired = errors.New("translator: provider adapter is required")

// Result is the outcome of a read-through translation.
type Result struct {
	TranslatedText string
	// Cached reports the translation was served from the cache.
	Cached bool
	// Skipped reports no translation was needed (same source and target).
	Skipped bool
	// Degraded reports the provider failed and the source text was returned.
	Degraded bool
}

// Option mutates the service configuration.
type Option func(*Service)

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithGlossary toggles glossary-biased provider calls for ad hoc requests.
func WithGlossary(enabled bool) Option {
	return func(s *Service) {
		s.useGlossary = enabled
	}
}

// Service is the read-through translation path for free-form user text:
// consult the cache, fall back to the provider adapter on a miss, and write
// the fresh translation back. Translation is best-effort end to end; callers
// always receive displayable text.
type Service struct {
	adapter     *provider.Adapter
	cache       interfaces.TranslationCache
	logger      interfaces.Logger
	useGlossary bool
}

// NewService constructs a translator service. The cache is optional; without
// one every request goes to the provider.
func NewService(adapter *provider.Adapter, cache interfaces.TranslationCache, opts ...Option) *Service {
	svc := &Service{
		adapter: adapter,
		cache:   cache,
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Translate resolves text for the (source, target) pair. Cache failures are
// logged and bypassed, never surfaced: the cache is an optimization, not a
// dependency of the read path.
func (s *Service) Translate(ctx context.Context, text, sourceLocale, targetLocale string) (Result, error) {
	if s.adapter == nil {
		return Result{}, ErrAdapterRequired
	}

	source := locales.Normalize(sourceLocale)
	target := locales.Normalize(targetLocale)
	if source == target || text == "" {
		return Result{TranslatedText: text, Skipped: true}, nil
	}

	if s.cache != nil {
		cached, found, err := s.cache.Lookup(ctx, text, source.String(), target.String())
		if err != nil {
			s.logger.Warn("cache lookup failed, calling provider",
				"source_locale", source.String(),
				"target_locale", target.String(),
				"error", err,
			)
		} else if found {
			return Result{TranslatedText: cached.TranslatedText, Cached: true}, nil
		}
	}

	result, degraded := s.adapter.Translate(ctx, interfaces.TranslationRequest{
		Text:         text,
		SourceLocale: source.String(),
		TargetLocale: target.String(),
		UseGlossary:  s.useGlossary,
	})
	if result.Skipped {
		return Result{TranslatedText: result.TranslatedText, Skipped: true}, nil
	}

	// A degraded result is the source text; caching it would pin the
	// failure until the entry is pruned.
	if !degraded && s.cache != nil {
		if err := s.cache.Store(ctx, text, source.String(), target.String(), result.TranslatedText, result.Service); err != nil {
			s.logger.Warn("cache store failed",
				"source_locale", source.String(),
				"target_locale", target.String(),
				"error", err,
			)
		}
	}
	return Result{TranslatedText: result.TranslatedText, Degraded: degraded}, nil
}
