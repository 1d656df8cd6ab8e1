// Package translate is an embeddable multilingual content layer for
// bun-backed web applications: request locale resolution, multilingual
// field projection, an on-demand translation cache, and background bulk
// translation of content records.
package translate

import (
	"net/http"

	"github.com/goliatone/go-translate/internal/bulk"
	"github.com/goliatone/go-translate/internal/di"
	transporthttp "github.com/goliatone/go-translate/internal/http"
	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/jobs"
	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/records"
	"github.com/goliatone/go-translate/internal/translationcache"
	"github.com/goliatone/go-translate/internal/translator"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// LocaleTag exports the normalized locale identifier type.
type LocaleTag = locales.Tag

// LocaleSet exports the supported-locale set.
type LocaleSet = locales.Set

// Resolver exports the request locale resolver.
type Resolver = locales.Resolver

// Projector exports the multilingual field projector.
type Projector = i18n.Projector

// TranslationMap exports the multilingual sibling map type.
type TranslationMap = i18n.Map

// TranslationStatus exports the record translation lifecycle status.
type TranslationStatus = i18n.Status

// CacheService exports the translation cache service.
type CacheService = translationcache.Service

// TranslatorService exports the read-through translation service.
type TranslatorService = translator.Service

// BulkService exports the background bulk translator.
type BulkService = bulk.Service

// BulkReport exports the bulk run summary.
type BulkReport = bulk.Report

// RecordStore exports the content record store contract.
type RecordStore = records.Store

// Worker exports the scheduler job worker.
type Worker = jobs.Worker

// Scheduler exports the job scheduler contract.
type Scheduler = interfaces.Scheduler

// Module is the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module from configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Resolver returns the request locale resolver.
func (m *Module) Resolver() *Resolver {
	return m.container.Resolver()
}

// Projector returns the multilingual field projector.
func (m *Module) Projector() Projector {
	return m.container.Projector()
}

// Cache returns the translation cache service; nil when caching is disabled.
func (m *Module) Cache() *CacheService {
	return m.container.Cache()
}

// Translator returns the read-through translation service.
func (m *Module) Translator() *TranslatorService {
	return m.container.Translator()
}

// Bulk returns the background bulk translator.
func (m *Module) Bulk() *BulkService {
	return m.container.Bulk()
}

// Store returns the content record store.
func (m *Module) Store() RecordStore {
	return m.container.Store()
}

// Scheduler returns the job scheduler.
func (m *Module) Scheduler() Scheduler {
	return m.container.Scheduler()
}

// JobWorker returns the worker draining deferred translation jobs. Hosts
// call Process from their own ticker loop.
func (m *Module) JobWorker() *Worker {
	return m.container.Worker()
}

// API returns the HTTP handler set.
func (m *Module) API() *transporthttp.API {
	return m.container.API()
}

// RegisterRoutes mounts the module handlers on a host mux under the
// configured base path.
func (m *Module) RegisterRoutes(mux *http.ServeMux) {
	m.container.API().Register(mux, m.container.Config.HTTP.BasePath)
}
