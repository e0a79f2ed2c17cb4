package domain

import "context"

// Card represents a single trading card. The auto-increment primary key
// doubles as the ordering key for cursor pagination: it is unique,
// strictly increasing in insertion order, and never reused.
type Card struct {
	BaseModel
	Name     string `gorm:"size:255;not null;index" json:"name"`
	CardType string `gorm:"size:100;not null" json:"card_type"`
	ManaCost string `gorm:"size:50" json:"mana_cost"`
}

// CardRepository defines the data access interface for cards.
type CardRepository interface {
	// ListAfter returns up to limit cards with ID greater than afterKey,
	// ordered ascending by ID. An empty name matches all cards; a
	// non-empty name restricts the result to exact name matches.
	ListAfter(ctx context.Context, afterKey uint, limit int, name string) ([]Card, error)
	GetByID(ctx context.Context, id uint) (*Card, error)
	Create(ctx context.Context, card *Card) error
	Count(ctx context.Context) (int64, error)
}

// CardService defines the business logic interface for cards.
type CardService interface {
	// ListCards resolves one page of the card connection. It decodes the
	// request cursor, runs a single bounded range query, and assembles
	// the Relay-style connection envelope.
	ListCards(ctx context.Context, req PageRequest) (*Connection[Card], error)
	GetCard(ctx context.Context, id uint) (*Card, error)
}
