package card

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/cardbase/internal/domain"
	"github.com/simp-lee/cardbase/internal/pkg"
)

// CardHandler handles REST API requests for the card resource.
type CardHandler struct {
	svc domain.CardService
}

// NewCardHandler creates a new CardHandler with the given service.
func NewCardHandler(svc domain.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// List handles GET /api/v1/cards. The first/after/name query parameters
// mirror the GraphQL paginatedCards arguments; the response body is the
// connection envelope.
func (h *CardHandler) List(c *gin.Context) {
	var req ListCardsRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	conn, err := h.svc.ListCards(c.Request.Context(), domain.PageRequest{
		Limit: req.First,
		After: req.After,
		Name:  req.Name,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, conn)
}

// Get handles GET /api/v1/cards/:id.
func (h *CardHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		pkg.Error(c, domain.NewAppError(domain.CodeValidation, err.Error(), nil))
		return
	}

	card, err := h.svc.GetCard(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, card)
}

// parseID extracts and validates the :id path parameter.
func parseID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return uint(id), nil
}
