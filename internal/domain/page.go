package domain

// PageRequest holds the parameters of one forward pagination step.
// After is the raw, still-encoded cursor as received from the client;
// an empty string means "start from the beginning". Name is an optional
// exact-match filter on the card name; empty means no filter.
type PageRequest struct {
	Limit int
	After string
	Name  string
}

// Edge pairs one record with the cursor that bookmarks its position.
type Edge[T any] struct {
	Cursor string `json:"cursor"`
	Node   T      `json:"node"`
}

// PageInfo describes the continuation state of a page.
// LastCursor is nil when the page is empty.
type PageInfo struct {
	LastCursor  *string `json:"lastCursor"`
	HasNextPage bool    `json:"hasNextPage"`
}

// Connection is a Relay-style envelope combining one page of edges with
// pagination metadata.
//
// TotalCount is the number of edges in THIS page, not the size of the
// full matching dataset. The name is kept for wire compatibility with
// the exposed connection shape; do not read it as a dataset total.
type Connection[T any] struct {
	TotalCount int       `json:"totalCount"`
	PageInfo   PageInfo  `json:"pageInfo"`
	Edges      []Edge[T] `json:"edges"`
}
