package graphql

import (
	"github.com/gin-gonic/gin"
	graphqlgo "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/simp-lee/cardbase/internal/domain"
)

// NewSchema parses the schema against a root resolver for the given
// card service.
func NewSchema(svc domain.CardService) (*graphqlgo.Schema, error) {
	return graphqlgo.ParseSchema(Schema, NewResolver(svc))
}

// Handler returns a gin handler serving the GraphQL endpoint over the
// standard relay-style HTTP transport (POST with a JSON body of
// {query, operationName, variables}).
func Handler(schema *graphqlgo.Schema) gin.HandlerFunc {
	return gin.WrapH(&relay.Handler{Schema: schema})
}
