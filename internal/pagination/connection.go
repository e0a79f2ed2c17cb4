package pagination

import "github.com/simp-lee/cardbase/internal/domain"

// NewConnection assembles a connection from one page of ordered rows
// using the full-page heuristic: hasNextPage is true iff the page came
// back with exactly limit rows. A full page suggests more rows may
// exist; an undersized page implies exhaustion. The heuristic reports a
// false positive when the matching dataset's size is an exact multiple
// of limit: the follow-up page then comes back empty with
// hasNextPage=false. Callers that need an exact answer fetch limit+1
// rows and use NewConnectionExact instead.
func NewConnection[T any](items []T, limit int, key func(T) uint) *domain.Connection[T] {
	return NewConnectionExact(items, len(items) == limit, key)
}

// NewConnectionExact assembles a connection with a caller-determined
// hasNextPage value, for use when the caller probed one row beyond the
// page boundary and knows the answer exactly.
func NewConnectionExact[T any](items []T, hasNext bool, key func(T) uint) *domain.Connection[T] {
	edges := make([]domain.Edge[T], 0, len(items))
	for _, item := range items {
		edges = append(edges, domain.Edge[T]{
			Cursor: EncodeCursor(key(item)),
			Node:   item,
		})
	}

	info := domain.PageInfo{HasNextPage: hasNext}
	if len(edges) > 0 {
		last := edges[len(edges)-1].Cursor
		info.LastCursor = &last
	}

	return &domain.Connection[T]{
		TotalCount: len(edges),
		PageInfo:   info,
		Edges:      edges,
	}
}
