package http

import (
	"net/http"
	"time"

	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/records"
)

type localizedCard struct {
	Name     string `json:"name"`
	PackName string `json:"packName"`
	Count    int    `json:"count"`
}

type localizedContentResponse struct {
	ID                string          `json:"id"`
	Slug              string          `json:"slug"`
	Locale            string          `json:"locale"`
	Title             string          `json:"title"`
	Description       string          `json:"description,omitempty"`
	Body              string          `json:"body,omitempty"`
	Cards             []localizedCard `json:"cards,omitempty"`
	EventDate         *time.Time      `json:"eventDate,omitempty"`
	TranslationStatus string          `json:"translationStatus"`
}

// handleLocalizedContent resolves the request locale, loads the record, and
// projects every multilingual field. Missing translations degrade to the
// base language; the response always reports the locale that was resolved,
// not necessarily the one that was asked for.
func (api *API) handleLocalizedContent(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.store == nil || api.resolver == nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "service_unavailable"})
		return
	}
	table, err := records.ParseTable(r.PathValue("table"))
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := parseUUID(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "bad_request", Message: "invalid id"})
		return
	}

	locale := api.resolver.Resolve(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"))
	record, err := api.store.Load(r.Context(), table, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.localizeRecord(record, locale))
}

func (api *API) localizeRecord(record records.Record, locale locales.Tag) localizedContentResponse {
	resp := localizedContentResponse{
		ID:                record.RecordID().String(),
		Locale:            locale.String(),
		TranslationStatus: string(record.TranslationState()),
	}
	if base, m, ok := record.Field(records.FieldTitle); ok {
		resp.Title = api.projector.Project(base, m, locale)
	}
	if base, m, ok := record.Field(records.FieldDescription); ok {
		resp.Description = api.projector.Project(base, m, locale)
	}
	if base, m, ok := record.Field(records.FieldBody); ok {
		resp.Body = api.projector.Project(base, m, locale)
	}

	switch rec := record.(type) {
	case *records.InfoPage:
		resp.Slug = rec.Slug
	case *records.DeckPage:
		resp.Slug = rec.Slug
		resp.Cards = api.localizeCards(rec, locale)
	case *records.Tournament:
		resp.Slug = rec.Slug
		resp.EventDate = rec.EventDate
	}
	return resp
}

// localizeCards prefers the pre-translated card list stored by the bulk
// translator and falls back to element-wise projection of per-card pack
// maps, so one untranslated card degrades alone.
func (api *API) localizeCards(deck *records.DeckPage, locale locales.Tag) []localizedCard {
	var source []records.DeckCard
	if localized, ok := deck.CardsI18N[locale]; ok && locale != api.projector.BaseLocale() {
		source = localized
	} else {
		source = i18n.ProjectSlice(api.projector, deck.Cards, locale,
			func(card records.DeckCard, p i18n.Projector, tag locales.Tag) records.DeckCard {
				card.PackName = p.Project(card.PackName, card.PackI18N, tag)
				return card
			})
	}

	out := make([]localizedCard, len(source))
	for i, card := range source {
		out[i] = localizedCard{Name: card.Name, PackName: card.PackName, Count: card.Count}
	}
	return out
}
