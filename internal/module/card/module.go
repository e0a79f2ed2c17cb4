package card

import "github.com/gin-gonic/gin"

// CardModule implements the app.Module interface for the card domain.
type CardModule struct {
	handler *CardHandler
}

// NewModule creates a new CardModule with the given handler.
// Panics if h is nil.
func NewModule(h *CardHandler) *CardModule {
	if h == nil {
		panic("card.NewModule: handler must not be nil")
	}
	return &CardModule{handler: h}
}

// RegisterRoutes registers card API routes.
func (m *CardModule) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/cards", m.handler.List)
	api.GET("/cards/:id", m.handler.Get)
}
