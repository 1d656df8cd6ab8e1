package records

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/locales"
)

func TestParseTable(t *testing.T) {
	for _, raw := range []string{"info_pages", "deck_pages", "tournaments"} {
		table, err := ParseTable(raw)
		if err != nil {
			t.Fatalf("ParseTable(%q) error = %v", raw, err)
		}
		if string(table) != raw {
			t.Fatalf("ParseTable(%q) = %q", raw, table)
		}
	}

	if _, err := ParseTable("users"); !errors.Is(err, ErrTableNotAllowed) {
		t.Fatalf("ParseTable(users) error = %v, want ErrTableNotAllowed", err)
	}
	if _, err := ParseTable("info_pages; DROP TABLE"); !errors.Is(err, ErrTableNotAllowed) {
		t.Fatalf("ParseTable(injection) error = %v, want ErrTableNotAllowed", err)
	}
}

func TestRecordFieldAccess(t *testing.T) {
	page := &InfoPage{
		ID:    uuid.New(),
		Title: "Tournament Rules",
		Body:  "Full ruleset",
	}

	base, m, ok := page.Field(FieldTitle)
	if !ok || base != "Tournament Rules" || m != nil {
		t.Fatalf("Field(title) = (%q, %v, %v)", base, m, ok)
	}
	if _, _, ok := page.Field("slug"); ok {
		t.Fatal("Field(slug) should not be translatable")
	}

	page.SetFieldMap(FieldTitle, i18n.Map{"ja": "大会ルール"})
	_, m, _ = page.Field(FieldTitle)
	if m["ja"] != "大会ルール" {
		t.Fatalf("Field(title) map = %v", m)
	}

	// deck pages expose no body field
	deck := &DeckPage{ID: uuid.New(), Title: "Lost Box"}
	if _, _, ok := deck.Field(FieldBody); ok {
		t.Fatal("deck pages should not expose a body field")
	}
}

func TestDeckPageCardList(t *testing.T) {
	deck := &DeckPage{
		ID: uuid.New(),
		Cards: []DeckCard{
			{Name: "Comfey", PackName: "Lost Origin", Count: 4},
		},
	}

	cards := deck.CardList()
	cards[0].PackName = "mutated"
	if deck.Cards[0].PackName != "Lost Origin" {
		t.Fatal("CardList() must return a copy")
	}

	deck.SetLocalizedCards(map[locales.Tag][]DeckCard{
		"ja": {{Name: "Comfey", PackName: "ロストアビス", Count: 4}},
	})
	if deck.CardsI18N["ja"][0].PackName != "ロストアビス" {
		t.Fatalf("CardsI18N = %v", deck.CardsI18N)
	}
}

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	page := &InfoPage{ID: uuid.New(), Slug: "rules", Title: "Rules"}

	if err := store.Put(page); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	loaded, err := store.Load(ctx, TableInfoPages, page.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	loaded.SetTranslationStatus(i18n.StatusComplete)
	if err := store.Save(ctx, TableInfoPages, loaded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	again, err := store.Load(ctx, TableInfoPages, page.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if again.TranslationState() != i18n.StatusComplete {
		t.Fatalf("TranslationState() = %q", again.TranslationState())
	}
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Load(context.Background(), TableDeckPages, uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Load() error = %v, want *NotFoundError", err)
	}
	if notFound.Table != TableDeckPages {
		t.Fatalf("NotFoundError.Table = %q", notFound.Table)
	}
}
