// Package di wires module configuration into concrete services. Hosts hand
// the container a database and a logger provider; everything else defaults
// to in-process implementations so the module works embedded with no
// external infrastructure.
package di

import (
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translate/internal/bulk"
	transporthttp "github.com/goliatone/go-translate/internal/http"
	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/jobs"
	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/internal/logging/gologger"
	"github.com/goliatone/go-translate/internal/provider"
	"github.com/goliatone/go-translate/internal/records"
	"github.com/goliatone/go-translate/internal/runtimeconfig"
	"github.com/goliatone/go-translate/internal/scheduler"
	"github.com/goliatone/go-translate/internal/translationcache"
	"github.com/goliatone/go-translate/internal/translator"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	Config runtimeconfig.Config

	bunDB          *bun.DB
	loggerProvider interfaces.LoggerProvider
	cacheService   repocache.CacheService
	keySerializer  repocache.KeySerializer
	providerClient interfaces.TranslationProvider
	store          records.Store
	sched          interfaces.Scheduler
	audit          jobs.AuditRecorder

	supported  locales.Set
	baseLocale locales.Tag

	resolver      *locales.Resolver
	projector     i18n.Projector
	cacheSvc      *translationcache.Service
	adapter       *provider.Adapter
	translatorSvc *translator.Service
	bulkSvc       *bulk.Service
	worker        *jobs.Worker
	api           *transporthttp.API
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds the host database. Without it the module runs on
// in-memory storage.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the logger provider built from config.
func WithLoggerProvider(lp interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = lp
	}
}

// WithRepositoryCache enables read caching on record repositories.
func WithRepositoryCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithProviderClient overrides the translation client built from config.
// Tests and offline setups bind a static client here.
func WithProviderClient(client interfaces.TranslationProvider) Option {
	return func(c *Container) {
		c.providerClient = client
	}
}

// WithRecordStore overrides the default record store binding.
func WithRecordStore(store records.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithScheduler overrides the default scheduler binding.
func WithScheduler(sched interfaces.Scheduler) Option {
	return func(c *Container) {
		c.sched = sched
	}
}

// WithAuditRecorder binds a best-effort audit sink for the job worker.
func WithAuditRecorder(recorder jobs.AuditRecorder) Option {
	return func(c *Container) {
		c.audit = recorder
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	c.supported = locales.NewSet(cfg.Locales...)
	c.baseLocale = locales.Normalize(cfg.DefaultLocale)
	c.resolver = locales.NewResolver(c.supported, c.baseLocale)
	c.projector = i18n.NewProjector(c.baseLocale)

	if c.loggerProvider == nil {
		if err := c.buildLoggerProvider(); err != nil {
			return nil, err
		}
	}

	if cfg.Cache.Enabled {
		var cacheRepo translationcache.Repository
		if c.bunDB != nil {
			cacheRepo = translationcache.NewBunRepository(c.bunDB)
		} else {
			cacheRepo = translationcache.NewMemoryRepository()
		}
		c.cacheSvc = translationcache.NewService(cacheRepo,
			translationcache.WithLogger(logging.CacheLogger(c.loggerProvider)))
	}

	if c.providerClient == nil && cfg.Provider.Enabled {
		c.providerClient = provider.NewGoogleClient(provider.GoogleConfig{
			BaseURL:        cfg.Provider.BaseURL,
			APIKey:         cfg.Provider.APIKey,
			Project:        cfg.Provider.Project,
			Location:       cfg.Provider.Location,
			GlossaryPrefix: cfg.Provider.GlossaryPrefix,
			RetryAttempts:  uint(cfg.Provider.RetryAttempts),
		})
	}

	adapterOpts := []provider.Option{
		provider.WithLogger(logging.ProviderLogger(c.loggerProvider)),
	}
	if cfg.Provider.CallTimeout > 0 {
		adapterOpts = append(adapterOpts, provider.WithCallTimeout(cfg.Provider.CallTimeout))
	}
	c.adapter = provider.NewAdapter(c.providerClient, adapterOpts...)

	var cacheContract interfaces.TranslationCache
	if c.cacheSvc != nil {
		cacheContract = c.cacheSvc
	}
	c.translatorSvc = translator.NewService(c.adapter, cacheContract,
		translator.WithLogger(logging.ModuleLogger(c.loggerProvider, "")),
		translator.WithGlossary(cfg.Features.Glossary),
	)

	if c.store == nil {
		if c.bunDB != nil {
			c.store = records.NewBunStoreWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.store = records.NewMemoryStore()
		}
	}

	c.bulkSvc = bulk.NewService(c.store, c.translatorSvc, c.baseLocale, c.supported,
		bulk.WithLogger(logging.BulkLogger(c.loggerProvider)),
		bulk.WithRateLimit(cfg.Bulk.MinDelay, cfg.Bulk.PerCharDelay),
	)

	if c.sched == nil {
		if cfg.Features.Scheduling {
			c.sched = scheduler.NewInMemory()
		} else {
			c.sched = scheduler.NewNoOp()
		}
	}
	workerOpts := []jobs.Option{
		jobs.WithLogger(logging.JobsLogger(c.loggerProvider)),
	}
	if c.audit != nil {
		workerOpts = append(workerOpts, jobs.WithAuditRecorder(c.audit))
	}
	if c.cacheSvc != nil && cfg.Cache.PruneAge > 0 {
		workerOpts = append(workerOpts, jobs.WithCachePruner(c.cacheSvc, cfg.Cache.PruneAge))
	}
	c.worker = jobs.NewWorker(c.sched, c.bulkSvc, workerOpts...)

	c.api = transporthttp.NewAPI(transporthttp.Config{
		Resolver:   c.resolver,
		Projector:  c.projector,
		Translator: c.translatorSvc,
		Bulk:       c.bulkSvc,
		Store:      c.store,
		Logger:     logging.HTTPLogger(c.loggerProvider),
	})

	return c, nil
}

func (c *Container) buildLoggerProvider() error {
	switch c.Config.Logging.Provider {
	case "gologger":
		lp, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = lp
	default:
		c.loggerProvider = nil
	}
	return nil
}

// Resolver returns the locale resolver.
func (c *Container) Resolver() *locales.Resolver { return c.resolver }

// Projector returns the multilingual field projector.
func (c *Container) Projector() i18n.Projector { return c.projector }

// BaseLocale returns the authoring locale.
func (c *Container) BaseLocale() locales.Tag { return c.baseLocale }

// SupportedLocales returns the configured supported set.
func (c *Container) SupportedLocales() locales.Set { return c.supported }

// Cache returns the translation cache service; nil when caching is disabled.
func (c *Container) Cache() *translationcache.Service { return c.cacheSvc }

// Translator returns the read-through translation service.
func (c *Container) Translator() *translator.Service { return c.translatorSvc }

// Bulk returns the background bulk translator.
func (c *Container) Bulk() *bulk.Service { return c.bulkSvc }

// Store returns the content record store.
func (c *Container) Store() records.Store { return c.store }

// Scheduler returns the job scheduler.
func (c *Container) Scheduler() interfaces.Scheduler { return c.sched }

// Worker returns the job worker draining translation jobs.
func (c *Container) Worker() *jobs.Worker { return c.worker }

// API returns the HTTP handler set.
func (c *Container) API() *transporthttp.API { return c.api }

// LoggerProvider returns the active logger provider; may be nil.
func (c *Container) LoggerProvider() interfaces.LoggerProvider { return c.loggerProvider }
