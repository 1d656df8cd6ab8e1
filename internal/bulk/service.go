package bulk

import (
	"context"
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/internal/records"
	"github.com/goliatone/go-translate/internal/translator"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

var (
	// ErrStoreRequired indicates the service was constructed without a record store.
	ErrStoreRequired = errors.New("bulk: record store is required")
	// ErrTranslatorRequired indicates the service was constructed without a translator.
	ErrTranslatorRequired = errors.New("bulk: translator is required")
)

const (
	defaultMinDelay     = 100 * time.Millisecond
	defaultPerCharDelay = 2 * time.Millisecond
)

// Report summarizes one bulk translation run.
type Report struct {
	Table            records.Table `json:"table"`
	ID               uuid.UUID     `json:"id"`
	FieldsTranslated int           `json:"fields_translated"`
	LanguagesCount   int           `json:"languages_count"`
	Status           i18n.Status   `json:"status"`
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

// WithRateLimit overrides the pacing between provider calls. A zero minimum
// and per-character delay disables pacing, which tests rely on.
func WithRateLimit(minDelay, perChar time.Duration) Option {
	return func(s *Service) {
		s.minDelay = minDelay
		s.perCharDelay = perChar
	}
}

// Service translates whole content records into every configured target
// locale. It runs from admin actions or deferred jobs, never from a render
// path: the work is sequential, paced, and can take minutes for long bodies.
type Service struct {
	store        records.Store
	translator   *translator.Service
	baseLocale   locales.Tag
	targets      []locales.Tag
	logger       interfaces.Logger
	minDelay     time.Duration
	perCharDelay time.Duration
}

// NewService constructs a bulk translator over the supported locale set.
// Targets are every supported locale except the base.
func NewService(store records.Store, trans *translator.Service, baseLocale locales.Tag, supported locales.Set, opts ...Option) *Service {
	svc := &Service{
		store:        store,
		translator:   trans,
		baseLocale:   baseLocale,
		logger:       logging.NoOp(),
		minDelay:     defaultMinDelay,
		perCharDelay: defaultPerCharDelay,
	}
	for _, tag := range supported.Tags() {
		if tag != baseLocale {
			svc.targets = append(svc.targets, tag)
		}
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// TranslateRecord translates the named fields of one record into every
// target locale and writes the result back in a single update. Provider
// failures degrade per locale; only load, write-back, and cancellation
// errors surface.
func (s *Service) TranslateRecord(ctx context.Context, table string, id uuid.UUID, fields []string) (Report, error) {
	if s.store == nil {
		return Report{}, ErrStoreRequired
	}
	if s.translator == nil {
		return Report{}, ErrTranslatorRequired
	}

	parsed, err := records.ParseTable(table)
	if err != nil {
		return Report{}, err
	}
	record, err := s.store.Load(ctx, parsed, id)
	if err != nil {
		return Report{}, err
	}
	if len(fields) == 0 {
		fields = records.DefaultFields()
	}

	report := Report{Table: parsed, ID: id, LanguagesCount: len(s.targets)}
	fellBack := false

	for _, name := range fields {
		base, _, ok := record.Field(name)
		if !ok {
			s.logger.Warn("skipping unknown field", "table", parsed, "field", name)
			continue
		}
		if base == "" {
			continue
		}

		m := i18n.Map{s.baseLocale: base}
		for _, target := range s.targets {
			translated, degraded, err := s.translateText(ctx, base, target)
			if err != nil {
				return Report{}, err
			}
			m[target] = translated
			fellBack = fellBack || degraded
		}
		record.SetFieldMap(name, m)
		report.FieldsTranslated++
	}

	if carrier, ok := record.(records.CardCarrier); ok {
		done, degraded, err := s.translateCards(ctx, carrier)
		if err != nil {
			return Report{}, err
		}
		if done {
			report.FieldsTranslated++
			fellBack = fellBack || degraded
		}
	}

	status := i18n.StatusComplete
	if fellBack {
		status = i18n.StatusPartial
	}
	record.SetTranslationStatus(status)
	report.Status = status

	if err := s.store.Save(ctx, parsed, record); err != nil {
		return Report{}, err
	}

	s.logger.Info("bulk translation finished",
		"table", parsed,
		"id", id.String(),
		"fields", report.FieldsTranslated,
		"languages", report.LanguagesCount,
		"status", status,
	)
	return report, nil
}

// translateCards localizes the pack name of every card for every target
// locale, producing one transformed card list per locale. A failed element
// keeps its original pack name without poisoning its neighbors.
func (s *Service) translateCards(ctx context.Context, carrier records.CardCarrier) (bool, bool, error) {
	cards := carrier.CardList()
	if len(cards) == 0 {
		return false, false, nil
	}

	fellBack := false
	byLocale := make(map[locales.Tag][]records.DeckCard, len(s.targets))
	for _, target := range s.targets {
		localized := make([]records.DeckCard, len(cards))
		copy(localized, cards)
		for i := range localized {
			if localized[i].PackName == "" {
				continue
			}
			translated, degraded, err := s.translateText(ctx, localized[i].PackName, target)
			if err != nil {
				return false, false, err
			}
			localized[i].PackName = translated
			fellBack = fellBack || degraded
		}
		byLocale[target] = localized
	}
	carrier.SetLocalizedCards(byLocale)
	return true, fellBack, nil
}

func (s *Service) translateText(ctx context.Context, text string, target locales.Tag) (string, bool, error) {
	result, err := s.translator.Translate(ctx, text, s.baseLocale.String(), target.String())
	if err != nil {
		return "", false, err
	}
	if result.Degraded {
		s.logger.Warn("provider fallback, storing source text",
			"target_locale", target.String(),
			"chars", utf8.RuneCountInString(text),
		)
	}
	// Pace only real provider calls; cache hits and skips cost nothing.
	if !result.Cached && !result.Skipped {
		if err := s.pause(ctx, s.delayFor(text)); err != nil {
			return "", false, err
		}
	}
	return result.TranslatedText, result.Degraded, nil
}

func (s *Service) delayFor(text string) time.Duration {
	d := time.Duration(utf8.RuneCountInString(text)) * s.perCharDelay
	if d < s.minDelay {
		d = s.minDelay
	}
	return d
}

func (s *Service) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
