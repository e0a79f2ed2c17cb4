package graphql

import (
	"context"
	"strconv"

	graphqlgo "github.com/graph-gophers/graphql-go"

	"github.com/simp-lee/cardbase/internal/domain"
)

// Resolver is the root query resolver. It delegates all work to the
// card service; errors from the service (malformed cursor, invalid page
// size, store failure) propagate into the GraphQL errors array.
type Resolver struct {
	svc domain.CardService
}

// NewResolver creates the root resolver around the given card service.
// Panics if svc is nil.
func NewResolver(svc domain.CardService) *Resolver {
	if svc == nil {
		panic("graphql.NewResolver: service must not be nil")
	}
	return &Resolver{svc: svc}
}

type paginatedCardsArgs struct {
	First int32
	After *string
	Name  *string
}

// PaginatedCards resolves the paginatedCards query.
func (r *Resolver) PaginatedCards(ctx context.Context, args paginatedCardsArgs) (*cardConnectionResolver, error) {
	req := domain.PageRequest{Limit: int(args.First)}
	if args.After != nil {
		req.After = *args.After
	}
	if args.Name != nil {
		req.Name = *args.Name
	}

	conn, err := r.svc.ListCards(ctx, req)
	if err != nil {
		return nil, err
	}
	return &cardConnectionResolver{conn: conn}, nil
}

// Card resolves the card query.
func (r *Resolver) Card(ctx context.Context, args struct{ ID graphqlgo.ID }) (*cardResolver, error) {
	id, err := strconv.ParseUint(string(args.ID), 10, 64)
	if err != nil || id == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "id must be a positive integer", err)
	}

	card, err := r.svc.GetCard(ctx, uint(id))
	if err != nil {
		return nil, err
	}
	return &cardResolver{card: *card}, nil
}

type cardConnectionResolver struct {
	conn *domain.Connection[domain.Card]
}

func (r *cardConnectionResolver) TotalCount() int32 {
	return int32(r.conn.TotalCount)
}

func (r *cardConnectionResolver) PageInfo() *pageInfoResolver {
	return &pageInfoResolver{info: r.conn.PageInfo}
}

func (r *cardConnectionResolver) Edges() []*cardEdgeResolver {
	edges := make([]*cardEdgeResolver, 0, len(r.conn.Edges))
	for _, edge := range r.conn.Edges {
		edges = append(edges, &cardEdgeResolver{edge: edge})
	}
	return edges
}

type cardEdgeResolver struct {
	edge domain.Edge[domain.Card]
}

func (r *cardEdgeResolver) Cursor() string {
	return r.edge.Cursor
}

func (r *cardEdgeResolver) Node() *cardResolver {
	return &cardResolver{card: r.edge.Node}
}

type pageInfoResolver struct {
	info domain.PageInfo
}

func (r *pageInfoResolver) LastCursor() *string {
	return r.info.LastCursor
}

func (r *pageInfoResolver) HasNextPage() bool {
	return r.info.HasNextPage
}

type cardResolver struct {
	card domain.Card
}

func (r *cardResolver) ID() graphqlgo.ID {
	return graphqlgo.ID(strconv.FormatUint(uint64(r.card.ID), 10))
}

func (r *cardResolver) Name() string {
	return r.card.Name
}

func (r *cardResolver) CardType() string {
	return r.card.CardType
}

func (r *cardResolver) ManaCost() *string {
	if r.card.ManaCost == "" {
		return nil
	}
	cost := r.card.ManaCost
	return &cost
}
