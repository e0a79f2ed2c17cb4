package pagination

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/simp-lee/cardbase/internal/domain"
)

func setupScopeDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Card{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cards := []domain.Card{
		{Name: "Ancestral Vision", CardType: "Sorcery"},
		{Name: "Benalish Knight", CardType: "Creature"},
		{Name: "Coalition Victory", CardType: "Sorcery"},
		{Name: "Coalition Victory", CardType: "Sorcery"},
		{Name: "Damnation", CardType: "Sorcery"},
	}
	if err := db.Create(&cards).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func listIDs(t *testing.T, db *gorm.DB, scopes ...func(*gorm.DB) *gorm.DB) []uint {
	t.Helper()
	var cards []domain.Card
	if err := db.Model(&domain.Card{}).Scopes(scopes...).Find(&cards).Error; err != nil {
		t.Fatalf("query: %v", err)
	}
	ids := make([]uint, 0, len(cards))
	for _, c := range cards {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestAfter_SentinelMatchesAll(t *testing.T) {
	db := setupScopeDB(t)
	ids := listIDs(t, db, After(0), OrderedPage(10))
	if len(ids) != 5 {
		t.Fatalf("got %d rows, want 5", len(ids))
	}
	for i, id := range ids {
		if id != uint(i+1) {
			t.Errorf("ids[%d] = %d, want %d", i, id, i+1)
		}
	}
}

func TestAfter_ExcludesAnchor(t *testing.T) {
	db := setupScopeDB(t)
	ids := listIDs(t, db, After(3), OrderedPage(10))
	if len(ids) != 2 || ids[0] != 4 || ids[1] != 5 {
		t.Errorf("ids = %v, want [4 5]", ids)
	}
}

func TestOrderedPage_Bounds(t *testing.T) {
	db := setupScopeDB(t)
	ids := listIDs(t, db, After(0), OrderedPage(3))
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Errorf("ids = %v, want [1 2 3]", ids)
	}
}

func TestFieldEquals(t *testing.T) {
	db := setupScopeDB(t)

	ids := listIDs(t, db, After(0), FieldEquals("name", "Coalition Victory"), OrderedPage(10))
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 4 {
		t.Errorf("ids = %v, want [3 4]", ids)
	}

	// Empty value is a no-op.
	all := listIDs(t, db, After(0), FieldEquals("name", ""), OrderedPage(10))
	if len(all) != 5 {
		t.Errorf("empty filter matched %d rows, want 5", len(all))
	}

	// Unknown value yields an empty set, not an error.
	none := listIDs(t, db, After(0), FieldEquals("name", "No Such Card"), OrderedPage(10))
	if len(none) != 0 {
		t.Errorf("unknown filter matched %d rows, want 0", len(none))
	}
}

func TestFieldEquals_ValueIsParameterized(t *testing.T) {
	db := setupScopeDB(t)

	// A hostile value must be treated as data, never spliced into SQL.
	ids := listIDs(t, db, After(0), FieldEquals("name", "x' OR '1'='1"), OrderedPage(10))
	if len(ids) != 0 {
		t.Errorf("injection-shaped value matched %d rows, want 0", len(ids))
	}
}
