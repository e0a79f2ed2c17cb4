// Package graphql exposes the card connection over a GraphQL endpoint.
// The schema is hand-written and served with graph-gophers/graphql-go;
// paginatedCards maps one-to-one onto the domain PageRequest.
package graphql

// Schema is the GraphQL schema definition served at /graphql.
const Schema = `
	schema {
		query: Query
	}

	type Query {
		# One page of the card connection. first is the page size,
		# after the cursor returned as lastCursor by the previous page,
		# name an optional exact-match filter on the card name.
		paginatedCards(first: Int!, after: String, name: String): CardConnection!

		# A single card by its ID.
		card(id: ID!): Card!
	}

	type Card {
		id: ID!
		name: String!
		cardType: String!
		manaCost: String
	}

	type CardEdge {
		# Opaque token bookmarking this card's position in the ordered set.
		cursor: String!
		node: Card!
	}

	type PageInfo {
		# Cursor of the last edge in this page; null when the page is empty.
		lastCursor: String

		# Best-effort continuation signal: true when this page came back
		# full, which can be a false positive at exact dataset boundaries.
		hasNextPage: Boolean!
	}

	type CardConnection {
		# Number of edges in this page, not in the whole dataset.
		totalCount: Int!
		pageInfo: PageInfo!
		edges: [CardEdge!]!
	}
`
