package artblocks

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// graphQLQuery is a parsed query document with a single named operation
type graphQLQuery struct {
	OperationName string
	Document      string
}

// mustParseQuery checks a query document at startup so a typo fails fast
// instead of on the first Hasura round trip
func mustParseQuery(document string) graphQLQuery {
	q, err := parseQuery(document)
	if err != nil {
		panic(err)
	}
	return q
}

func parseQuery(document string) (graphQLQuery, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: document})
	if err != nil {
		return graphQLQuery{}, fmt.Errorf("invalid GraphQL query: %w", err)
	}
	if len(doc.Operations) != 1 || doc.Operations[0].Name == "" {
		return graphQLQuery{}, fmt.Errorf("query must hold exactly one named operation, got %d", len(doc.Operations))
	}
	return graphQLQuery{
		OperationName: doc.Operations[0].Name,
		Document:      document,
	}, nil
}

var allProjectsQuery = mustParseQuery(`query GetAllProjects($limit: Int!, $offset: Int!) {
	projects_metadata(limit: $limit, offset: $offset, order_by: {id: asc}) {
		id
		project_id
		contract_address
		invocations
		max_invocations
		name
		description
		active
		artist_name
		vertical_name
		vertical {
			category_name
		}
		tags {
			tag_name
		}
		start_datetime
	}
}`)

var openProjectsQuery = mustParseQuery(`query GetOpenProjects {
	projects_metadata(where: {active: {_eq: true}, complete: {_eq: false}, paused: {_eq: false}}) {
		id
		name
	}
}`)

var projectInvocationsQuery = mustParseQuery(`query GetProjectInvocations($id: String!) {
	projects_metadata_by_pk(id: $id) {
		invocations
	}
}`)

var projectFloorQuery = mustParseQuery(`query GetProjectFloor($projectId: String!) {
	tokens_metadata(
		where: {project_id: {_eq: $projectId}, list_eth_price: {_is_null: false}}
		order_by: {list_eth_price: asc}
		limit: 1
	) {
		id
		invocation
		list_eth_price
	}
}`)

var tokenOwnerQuery = mustParseQuery(`query GetTokenOwner($id: String!) {
	tokens_metadata_by_pk(id: $id) {
		id
		owner_address
	}
}`)

var walletTokensQuery = mustParseQuery(`query GetWalletTokens($wallet: String!, $limit: Int!, $offset: Int!) {
	tokens_metadata(where: {owner_address: {_eq: $wallet}}, limit: $limit, offset: $offset, order_by: {id: asc}) {
		id
		token_id
		invocation
		contract_address
		project {
			name
		}
	}
}`)
