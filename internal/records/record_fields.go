package records

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/locales"
)

// Translatable field names shared across record types.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldBody        = "body"
)

// DefaultFields is the field set used when a bulk request omits fields.
func DefaultFields() []string {
	return []string{FieldTitle, FieldDescription}
}

func (p *InfoPage) RecordID() uuid.UUID { return p.ID }

func (p *InfoPage) Field(name string) (string, i18n.Map, bool) {
	switch name {
	case FieldTitle:
		return p.Title, p.TitleI18N, true
	case FieldDescription:
		return p.Description, p.DescriptionI18N, true
	case FieldBody:
		return p.Body, p.BodyI18N, true
	}
	return "", nil, false
}

func (p *InfoPage) SetFieldMap(name string, m i18n.Map) {
	switch name {
	case FieldTitle:
		p.TitleI18N = m
	case FieldDescription:
		p.DescriptionI18N = m
	case FieldBody:
		p.BodyI18N = m
	}
}

func (p *InfoPage) SetTranslationStatus(status i18n.Status) { p.Status = status }
func (p *InfoPage) TranslationState() i18n.Status           { return p.Status }

func (d *DeckPage) RecordID() uuid.UUID { return d.ID }

func (d *DeckPage) Field(name string) (string, i18n.Map, bool) {
	switch name {
	case FieldTitle:
		return d.Title, d.TitleI18N, true
	case FieldDescription:
		return d.Description, d.DescriptionI18N, true
	}
	return "", nil, false
}

func (d *DeckPage) SetFieldMap(name string, m i18n.Map) {
	switch name {
	case FieldTitle:
		d.TitleI18N = m
	case FieldDescription:
		d.DescriptionI18N = m
	}
}

func (d *DeckPage) SetTranslationStatus(status i18n.Status) { d.Status = status }
func (d *DeckPage) TranslationState() i18n.Status           { return d.Status }

func (d *DeckPage) CardList() []DeckCard {
	out := make([]DeckCard, len(d.Cards))
	copy(out, d.Cards)
	return out
}

func (d *DeckPage) SetLocalizedCards(byLocale map[locales.Tag][]DeckCard) {
	d.CardsI18N = byLocale
}

func (t *Tournament) RecordID() uuid.UUID { return t.ID }

func (t *Tournament) Field(name string) (string, i18n.Map, bool) {
	switch name {
	case FieldTitle:
		return t.Title, t.TitleI18N, true
	case FieldDescription:
		return t.Description, t.DescriptionI18N, true
	}
	return "", nil, false
}

func (t *Tournament) SetFieldMap(name string, m i18n.Map) {
	switch name {
	case FieldTitle:
		t.TitleI18N = m
	case FieldDescription:
		t.DescriptionI18N = m
	}
}

func (t *Tournament) SetTranslationStatus(status i18n.Status) { t.Status = status }
func (t *Tournament) TranslationState() i18n.Status           { return t.Status }

var (
	_ Record      = (*InfoPage)(nil)
	_ Record      = (*DeckPage)(nil)
	_ Record      = (*Tournament)(nil)
	_ CardCarrier = (*DeckPage)(nil)
)
