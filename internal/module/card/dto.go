package card

// ListCardsRequest represents the query parameters of a card page request.
// First is deliberately unguarded by a "required" binding: the service
// owns the page-size rule and rejects a non-positive (or absent) value
// with a dedicated error rather than a generic binding failure.
type ListCardsRequest struct {
	First int    `form:"first"`
	After string `form:"after" binding:"omitempty,max=128"`
	Name  string `form:"name" binding:"omitempty,max=255"`
}
