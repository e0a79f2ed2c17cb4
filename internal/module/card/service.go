package card

import (
	"context"
	"fmt"

	"github.com/simp-lee/cardbase/internal/domain"
	"github.com/simp-lee/cardbase/internal/pagination"
)

// ServiceConfig tunes the pagination behavior of the card service.
type ServiceConfig struct {
	// MaxPageSize caps the requested page size. Zero or negative means
	// the default of 100.
	MaxPageSize int

	// ExactHasNext switches hasNextPage from the full-page heuristic to
	// an exact probe: each page query fetches one row beyond the page
	// boundary. Off by default; the heuristic is the documented
	// contract of the connection shape.
	ExactHasNext bool
}

const defaultMaxPageSize = 100

// cardService implements domain.CardService.
type cardService struct {
	repo         domain.CardRepository
	maxPageSize  int
	exactHasNext bool
}

// NewCardService creates a new CardService with the given repository and config.
func NewCardService(repo domain.CardRepository, cfg ServiceConfig) domain.CardService {
	maxPageSize := cfg.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = defaultMaxPageSize
	}
	return &cardService{
		repo:         repo,
		maxPageSize:  maxPageSize,
		exactHasNext: cfg.ExactHasNext,
	}
}

// cardKey extracts the ordering key used for per-edge cursors.
func cardKey(c domain.Card) uint { return c.ID }

// ListCards resolves one page of the card connection: decode the
// incoming cursor, run a single bounded range query, assemble edges and
// page metadata. Stateless per call; the cursor token is the only
// pagination state that exists between requests.
func (s *cardService) ListCards(ctx context.Context, req domain.PageRequest) (*domain.Connection[domain.Card], error) {
	if req.Limit <= 0 {
		return nil, domain.NewAppError(domain.CodeInvalidPageSize,
			fmt.Sprintf("page size must be positive, got %d", req.Limit), nil)
	}

	limit := req.Limit
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	// Decode before touching the store: a malformed cursor aborts the
	// request without a query.
	var afterKey uint
	if req.After != "" {
		key, err := pagination.DecodeCursor(req.After)
		if err != nil {
			return nil, err
		}
		afterKey = key
	}

	if s.exactHasNext {
		rows, err := s.repo.ListAfter(ctx, afterKey, limit+1, req.Name)
		if err != nil {
			return nil, err
		}
		hasNext := len(rows) > limit
		if hasNext {
			rows = rows[:limit]
		}
		return pagination.NewConnectionExact(rows, hasNext, cardKey), nil
	}

	rows, err := s.repo.ListAfter(ctx, afterKey, limit, req.Name)
	if err != nil {
		return nil, err
	}
	return pagination.NewConnection(rows, limit, cardKey), nil
}

// GetCard retrieves a card by ID.
func (s *cardService) GetCard(ctx context.Context, id uint) (*domain.Card, error) {
	return s.repo.GetByID(ctx, id)
}
