// Package query implements the core types of the file query engine:
// compiled queries, the per-file evaluation context, and the entries
// that queries are evaluated against. The expression terms themselves
// live in the query/term package.
package query

import (
	"github.com/google/uuid"
)

// CaseSensitivity controls how a term compares strings.
type CaseSensitivity int

const (
	// CaseSensitive compares strings exactly.
	CaseSensitive CaseSensitivity = iota
	// CaseInSensitive compares strings after case-folding.
	CaseInSensitive
)

func (cs CaseSensitivity) String() string {
	if cs == CaseInSensitive {
		return "case-insensitive"
	}
	return "case-sensitive"
}

// Expr is a single node of a compiled query's expression tree.
// Evaluate reports whether the given entry satisfies the node. It has
// no side effects and no failure modes; any input validation happens
// when the node is parsed, never during evaluation.
type Expr interface {
	Evaluate(ctx *Context, e Entry) bool
}

// Query is a compiled query. It is immutable once compilation finishes,
// so a single Query can be shared by any number of goroutines that
// evaluate it against different entries concurrently.
type Query struct {
	// ID identifies the query in log output.
	ID string
	// CaseSensitive is the query's ambient case sensitivity. Terms
	// that honor it (like "name") capture it at parse time.
	CaseSensitive CaseSensitivity
	// Expr is the root of the query's expression tree. It is set by
	// term.Compile once the whole expression has parsed successfully.
	Expr Expr
}

// New creates an empty query with the given ambient case sensitivity.
func New(cs CaseSensitivity) *Query {
	return &Query{
		ID:            uuid.New().String(),
		CaseSensitive: cs,
	}
}
