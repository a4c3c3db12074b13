package query

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Order is one sortable expression. Expr is a column or SQL expression
// without a direction suffix.
type Order struct {
	Expr string
	Desc bool
}

// SortSet is the closed set of sort tokens an endpoint accepts.
type SortSet struct {
	Default string
	Tokens  map[string]Order
}

// InvalidSortError reports an unrecognized sort token together with the
// tokens that would have been accepted.
type InvalidSortError struct {
	Token string
	Valid []string
}

func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("invalid sort %q, valid sorts are: %s", e.Token, strings.Join(e.Valid, ", "))
}

// ValidTokens lists the accepted sort tokens in lexical order.
func (ss SortSet) ValidTokens() []string {
	tokens := make([]string, 0, len(ss.Tokens))
	for token := range ss.Tokens {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// Apply orders the query by the named sort, falling back to the default
// when token is empty. Every sort ends with an ascending id so rows that
// tie on the sort key still come back in a stable order across pages.
func (ss SortSet) Apply(db *gorm.DB, token string) (*gorm.DB, error) {
	if token == "" {
		token = ss.Default
	}
	order, ok := ss.Tokens[token]
	if !ok {
		return nil, &InvalidSortError{Token: token, Valid: ss.ValidTokens()}
	}

	dir := " ASC"
	if order.Desc {
		dir = " DESC"
	}
	return db.Order(order.Expr + dir).Order("id ASC"), nil
}
