package records

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Store loads and saves translatable content records across the allow-listed
// tables.
type Store interface {
	Load(ctx context.Context, table Table, id uuid.UUID) (Record, error)
	Save(ctx context.Context, table Table, record Record) error
}

// BunStore is the database-backed Store.
type BunStore struct {
	infoPages   repository.Repository[*InfoPage]
	deckPages   repository.Repository[*DeckPage]
	tournaments repository.Repository[*Tournament]
}

// NewBunStore constructs a store without read caching.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache constructs a store with optional read caching.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunStore {
	return &BunStore{
		infoPages:   wrapWithCache(NewInfoPageRepository(db), cacheService, keySerializer),
		deckPages:   wrapWithCache(NewDeckPageRepository(db), cacheService, keySerializer),
		tournaments: wrapWithCache(NewTournamentRepository(db), cacheService, keySerializer),
	}
}

func (s *BunStore) Load(ctx context.Context, table Table, id uuid.UUID) (Record, error) {
	switch table {
	case TableInfoPages:
		rec, err := s.infoPages.GetByID(ctx, id.String())
		if err != nil {
			return nil, mapRepositoryError(err, table, id.String())
		}
		return rec, nil
	case TableDeckPages:
		rec, err := s.deckPages.GetByID(ctx, id.String())
		if err != nil {
			return nil, mapRepositoryError(err, table, id.String())
		}
		return rec, nil
	case TableTournaments:
		rec, err := s.tournaments.GetByID(ctx, id.String())
		if err != nil {
			return nil, mapRepositoryError(err, table, id.String())
		}
		return rec, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrTableNotAllowed, table)
}

func (s *BunStore) Save(ctx context.Context, table Table, record Record) error {
	id := record.RecordID()
	switch rec := record.(type) {
	case *InfoPage:
		_, err := s.infoPages.Update(ctx, rec,
			repository.UpdateByID(id.String()),
			repository.UpdateColumns("title_i18n", "description_i18n", "body_i18n", "translation_status", "updated_at"),
		)
		return mapRepositoryError(err, table, id.String())
	case *DeckPage:
		_, err := s.deckPages.Update(ctx, rec,
			repository.UpdateByID(id.String()),
			repository.UpdateColumns("title_i18n", "description_i18n", "cards_i18n", "translation_status", "updated_at"),
		)
		return mapRepositoryError(err, table, id.String())
	case *Tournament:
		_, err := s.tournaments.Update(ctx, rec,
			repository.UpdateByID(id.String()),
			repository.UpdateColumns("title_i18n", "description_i18n", "translation_status", "updated_at"),
		)
		return mapRepositoryError(err, table, id.String())
	}
	return fmt.Errorf("%w: %q", ErrTableNotAllowed, table)
}

func mapRepositoryError(err error, table Table, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{
			Table: table,
			Key:   key,
		}
	}
	return fmt.Errorf("%s repository error: %w", table, err)
}

func wrapWithCache[T any](base repository.Repository[T], cacheService cache.CacheService, keySerializer cache.KeySerializer) repository.Repository[T] {
	if cacheService == nil || keySerializer == nil {
		return base
	}
	return repositorycache.New(base, cacheService, keySerializer)
}
