package card

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/simp-lee/cardbase/internal/domain"
	"github.com/simp-lee/cardbase/internal/pagination"
)

// cardRepository implements domain.CardRepository using GORM.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new CardRepository backed by the given GORM database.
func NewCardRepository(db *gorm.DB) domain.CardRepository {
	return &cardRepository{db: db}
}

// ListAfter runs the bounded range query of one pagination step:
// rows with id > afterKey, optionally filtered by exact name match,
// ordered ascending by id, at most limit rows. One query, one
// connection from the pool, released when the query returns.
func (r *cardRepository) ListAfter(ctx context.Context, afterKey uint, limit int, name string) ([]domain.Card, error) {
	var cards []domain.Card
	err := r.db.WithContext(ctx).
		Scopes(
			pagination.After(afterKey),
			pagination.FieldEquals("name", name),
			pagination.OrderedPage(limit),
		).
		Find(&cards).Error
	if err != nil {
		return nil, mapError(err)
	}
	return cards, nil
}

// GetByID retrieves a card by its primary key.
func (r *cardRepository) GetByID(ctx context.Context, id uint) (*domain.Card, error) {
	var card domain.Card
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		return nil, mapError(err)
	}
	return &card, nil
}

// Create inserts a new card into the database.
func (r *cardRepository) Create(ctx context.Context, card *domain.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return mapError(err)
	}
	return nil
}

// Count returns the number of cards in the table.
func (r *cardRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Card{}).Count(&total).Error; err != nil {
		return 0, mapError(err)
	}
	return total, nil
}

// mapError converts GORM errors to domain errors. Everything except a
// missing record surfaces as a store error so callers see connectivity,
// timeout, and query failures instead of a silent empty page.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return domain.NewAppError(domain.CodeStore, "store error", err)
}
