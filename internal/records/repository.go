package records

import (
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

func NewInfoPageRepository(db *bun.DB) repository.Repository[*InfoPage] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*InfoPage]{
		NewRecord: func() *InfoPage { return &InfoPage{} },
		GetID: func(p *InfoPage) uuid.UUID {
			return p.ID
		},
		SetID: func(p *InfoPage, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *InfoPage) string {
			return p.Slug
		},
	})
}

func NewDeckPageRepository(db *bun.DB) repository.Repository[*DeckPage] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*DeckPage]{
		NewRecord: func() *DeckPage { return &DeckPage{} },
		GetID: func(d *DeckPage) uuid.UUID {
			return d.ID
		},
		SetID: func(d *DeckPage, id uuid.UUID) {
			d.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(d *DeckPage) string {
			return d.Slug
		},
	})
}

func NewTournamentRepository(db *bun.DB) repository.Repository[*Tournament] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Tournament]{
		NewRecord: func() *Tournament { return &Tournament{} },
		GetID: func(t *Tournament) uuid.UUID {
			return t.ID
		},
		SetID: func(t *Tournament, id uuid.UUID) {
			t.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(t *Tournament) string {
			return t.Slug
		},
	})
}
