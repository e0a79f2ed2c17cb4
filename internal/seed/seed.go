// Package seed loads the sample card deck used by the tutorial setup.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/simp-lee/cardbase/internal/domain"
)

// sampleCards is the fixture deck inserted on first startup. Keys are
// assigned by the store in insertion order, so the deck is stable
// across runs against a fresh database.
var sampleCards = []domain.Card{
	{Name: "Ancestral Vision", CardType: "Sorcery", ManaCost: ""},
	{Name: "Benalish Knight", CardType: "Creature", ManaCost: "{1}{W}"},
	{Name: "Coalition Victory", CardType: "Sorcery", ManaCost: "{3}{W}{U}{B}{R}{G}"},
	{Name: "Damnation", CardType: "Sorcery", ManaCost: "{2}{B}{B}"},
	{Name: "Evacuation", CardType: "Instant", ManaCost: "{3}{U}{U}"},
	{Name: "Fathom Seer", CardType: "Creature", ManaCost: "{1}{U}"},
	{Name: "Gaea's Anthem", CardType: "Enchantment", ManaCost: "{1}{G}{G}"},
	{Name: "Harmonize", CardType: "Sorcery", ManaCost: "{2}{G}{G}"},
	{Name: "Icatian Crier", CardType: "Creature", ManaCost: "{1}{W}"},
	{Name: "Jedit Ojanen of Efrava", CardType: "Creature", ManaCost: "{4}{G}{G}"},
	{Name: "Kavu Primarch", CardType: "Creature", ManaCost: "{3}{G}"},
	{Name: "Lost Hours", CardType: "Sorcery", ManaCost: "{1}{B}"},
}

// Cards inserts the sample deck when the table is empty. A non-empty
// table is left untouched so reseeding never duplicates rows or
// disturbs existing keys.
func Cards(ctx context.Context, repo domain.CardRepository, logger *slog.Logger) error {
	total, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count cards: %w", err)
	}
	if total > 0 {
		return nil
	}

	for i := range sampleCards {
		card := sampleCards[i]
		if err := repo.Create(ctx, &card); err != nil {
			return fmt.Errorf("seed card %q: %w", card.Name, err)
		}
	}

	if logger != nil {
		logger.Info("sample cards seeded", slog.Int("count", len(sampleCards)))
	}
	return nil
}
