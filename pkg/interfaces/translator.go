package interfaces

import "context"

// TranslationRequest carries a single text translation request.
type TranslationRequest struct {
	Text         string
	SourceLocale string
	TargetLocale string
	UseGlossary  bool
}

// TranslationResult is the outcome of a provider call. Translated text is
// always populated; when the provider failed or the call was skipped it holds
// the original source text.
type TranslationResult struct {
	TranslatedText string
	// Skipped reports that no provider call was made because source and
	// target locales match.
	Skipped bool
	// GlossaryApplied reports that glossary-biased output was used.
	GlossaryApplied bool
	// Service identifies the provider that produced the translation.
	Service string
}

// TranslationProvider performs machine translation against an external
// service. Implementations must degrade gracefully: a failed call returns the
// source text in the result together with the error for logging, never a
// partial or empty translation.
type TranslationProvider interface {
	Translate(ctx context.Context, req TranslationRequest) (TranslationResult, error)
	// Name identifies the provider for cache bookkeeping (service_used).
	Name() string
}
