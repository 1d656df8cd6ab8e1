package translationcache

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// ErrRepositoryRequired indicates the service was constructed without a repository.
var ErrRepositoryRequired = errors.New("translationcache: repository is required")

// Option mutates the service configuration.
type Option func(*Service)

// WithClock overrides the clock used for access bookkeeping.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Service exposes the read-through cache contract over a repository. Lookups
// spawn a best-effort bookkeeping update that never blocks or fails the read
// path: a failed counter update is logged and dropped.
type Service struct {
	repo   Repository
	logger interfaces.Logger
	clock  func() time.Time

	bookkeeping sync.WaitGroup
}

var _ interfaces.TranslationCache = (*Service)(nil)

// NewService constructs a cache service.
func NewService(repo Repository, opts ...Option) *Service {
	svc := &Service{
		repo:   repo,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Lookup returns the cached translation for the exact key tuple.
func (s *Service) Lookup(ctx context.Context, text, sourceLocale, targetLocale string) (interfaces.CachedTranslation, bool, error) {
	if s.repo == nil {
		return interfaces.CachedTranslation{}, false, ErrRepositoryRequired
	}
	key := Key{SourceText: text, SourceLanguage: sourceLocale, TargetLanguage: targetLocale}
	entry, err := s.repo.Find(ctx, key)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return interfaces.CachedTranslation{}, false, nil
		}
		return interfaces.CachedTranslation{}, false, err
	}

	s.touchAsync(key)

	return interfaces.CachedTranslation{
		TranslatedText: entry.TranslatedText,
		Service:        entry.ServiceUsed,
	}, true, nil
}

// Store persists a translation result. The write is an idempotent upsert so
// two requests racing on the same text never surface a duplicate-key error.
func (s *Service) Store(ctx context.Context, text, sourceLocale, targetLocale, translated, service string) error {
	if s.repo == nil {
		return ErrRepositoryRequired
	}
	entry := &Entry{
		SourceText:     text,
		SourceLanguage: sourceLocale,
		TargetLanguage: targetLocale,
		TranslatedText: translated,
		ServiceUsed:    service,
		CharCount:      utf8.RuneCountInString(text),
		CreatedAt:      s.clock().UTC(),
	}
	return s.repo.Upsert(ctx, entry)
}

// Prune removes stale entries. No pruning runs automatically; hosts decide
// the retention policy and call this from their own maintenance jobs.
func (s *Service) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	if s.repo == nil {
		return 0, ErrRepositoryRequired
	}
	return s.repo.Prune(ctx, olderThan)
}

// Flush waits for in-flight bookkeeping updates. Intended for tests and
// shutdown paths.
func (s *Service) Flush() {
	s.bookkeeping.Wait()
}

func (s *Service) touchAsync(key Key) {
	at := s.clock().UTC()
	s.bookkeeping.Add(1)
	go func() {
		defer s.bookkeeping.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.Touch(ctx, key, at); err != nil {
			s.logger.Warn("cache access bookkeeping failed",
				"source_language", key.SourceLanguage,
				"target_language", key.TargetLanguage,
				"error", err,
			)
		}
	}()
}
