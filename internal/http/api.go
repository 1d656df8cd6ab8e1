// Package http exposes the module's handlers over net/http: an ad hoc
// translation action, a bulk record translation action, and localized
// content reads. Handlers are mounted on a host-owned ServeMux.
package http

import (
	"net/http"

	"github.com/goliatone/go-translate/internal/bulk"
	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/logging"
	"github.com/goliatone/go-translate/internal/records"
	"github.com/goliatone/go-translate/internal/translator"
	"github.com/goliatone/go-translate/pkg/interfaces"
)

// API bundles the module handlers and their dependencies.
type API struct {
	resolver   *locales.Resolver
	projector  i18n.Projector
	translator *translator.Service
	bulk       *bulk.Service
	store      records.Store
	logger     interfaces.Logger
}

// Config collects the services the API serves. Nil services disable their
// routes with a 503 rather than panicking.
type Config struct {
	Resolver   *locales.Resolver
	Projector  i18n.Projector
	Translator *translator.Service
	Bulk       *bulk.Service
	Store      records.Store
	Logger     interfaces.Logger
}

// NewAPI constructs the handler set.
func NewAPI(cfg Config) *API {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &API{
		resolver:   cfg.Resolver,
		projector:  cfg.Projector,
		translator: cfg.Translator,
		bulk:       cfg.Bulk,
		store:      cfg.Store,
		logger:     logger,
	}
}

// Register mounts all routes under the base path.
func (api *API) Register(mux *http.ServeMux, base string) {
	if mux == nil {
		return
	}
	mux.HandleFunc("POST "+joinPath(base, "translate"), api.handleTranslate)
	mux.HandleFunc("POST "+joinPath(base, "translate/bulk"), api.handleBulkTranslate)
	mux.HandleFunc("GET "+joinPath(base, "content")+"/{table}/{id}", api.handleLocalizedContent)
}
