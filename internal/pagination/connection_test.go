package pagination

import (
	"testing"

	"github.com/simp-lee/cardbase/internal/domain"
)

func cardKey(c domain.Card) uint { return c.ID }

func makeCards(ids ...uint) []domain.Card {
	cards := make([]domain.Card, 0, len(ids))
	for _, id := range ids {
		c := domain.Card{Name: "Card"}
		c.ID = id
		cards = append(cards, c)
	}
	return cards
}

func TestNewConnection_Edges(t *testing.T) {
	conn := NewConnection(makeCards(1, 2, 3), 5, cardKey)

	if conn.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", conn.TotalCount)
	}
	if len(conn.Edges) != 3 {
		t.Fatalf("len(Edges) = %d, want 3", len(conn.Edges))
	}
	for i, edge := range conn.Edges {
		wantID := uint(i + 1)
		if edge.Node.ID != wantID {
			t.Errorf("Edges[%d].Node.ID = %d, want %d", i, edge.Node.ID, wantID)
		}
		if edge.Cursor != EncodeCursor(wantID) {
			t.Errorf("Edges[%d].Cursor = %q, want %q", i, edge.Cursor, EncodeCursor(wantID))
		}
	}
}

func TestNewConnection_LastCursor(t *testing.T) {
	conn := NewConnection(makeCards(7, 9, 12), 5, cardKey)

	if conn.PageInfo.LastCursor == nil {
		t.Fatal("LastCursor is nil, want cursor of key 12")
	}
	if got, want := *conn.PageInfo.LastCursor, EncodeCursor(12); got != want {
		t.Errorf("LastCursor = %q, want %q", got, want)
	}
}

func TestNewConnection_FullPageHeuristic(t *testing.T) {
	// Exactly limit rows: reports a next page even if none exists.
	// This false positive is the documented contract of the heuristic.
	full := NewConnection(makeCards(1, 2, 3), 3, cardKey)
	if !full.PageInfo.HasNextPage {
		t.Error("full page: HasNextPage = false, want true")
	}

	short := NewConnection(makeCards(1, 2), 3, cardKey)
	if short.PageInfo.HasNextPage {
		t.Error("undersized page: HasNextPage = true, want false")
	}
}

func TestNewConnection_Empty(t *testing.T) {
	conn := NewConnection([]domain.Card{}, 3, cardKey)

	if conn.TotalCount != 0 {
		t.Errorf("TotalCount = %d, want 0", conn.TotalCount)
	}
	if conn.PageInfo.LastCursor != nil {
		t.Errorf("LastCursor = %q, want nil", *conn.PageInfo.LastCursor)
	}
	if conn.PageInfo.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}
	if conn.Edges == nil || len(conn.Edges) != 0 {
		t.Errorf("Edges = %v, want empty non-nil slice", conn.Edges)
	}
}

func TestNewConnectionExact(t *testing.T) {
	// Exact mode: hasNext comes from the caller's limit+1 probe, so a
	// full page with no successor is reported correctly.
	conn := NewConnectionExact(makeCards(1, 2, 3), false, cardKey)
	if conn.PageInfo.HasNextPage {
		t.Error("HasNextPage = true, want false")
	}

	conn = NewConnectionExact(makeCards(1, 2, 3), true, cardKey)
	if !conn.PageInfo.HasNextPage {
		t.Error("HasNextPage = false, want true")
	}
	if conn.TotalCount != 3 {
		t.Errorf("TotalCount = %d, want 3", conn.TotalCount)
	}
}
