// Package term implements the query engine's expression terms and the
// registry that maps term names to their parsers. A term's on-the-wire
// shape is a JSON array tagged by the term name (["name", "foo.c"]);
// the handful of argument-less terms may also appear as bare strings
// ("true").
package term

import (
	"github.com/qianniaoge/watchman/query"
)

// ParseFunc parses one term's raw JSON value into an expression node.
// The query carries ambient state (like its case sensitivity) that
// some terms capture at parse time.
type ParseFunc func(q *query.Query, term []interface{}) (query.Expr, error)

// parsers is the term registry. It is populated once, before any query
// compiles, and never written afterwards, so lookups need no
// synchronization. The table cannot be a package-level literal: the
// logical combinators parse their sub-expressions through Parse, which
// reads the table, and Go rejects that reference loop in an
// initializer.
var parsers map[string]ParseFunc

func init() {
	parsers = map[string]ParseFunc{
		"allof":    parseAllOf,
		"anyof":    parseAnyOf,
		"dirname":  parseDirName,
		"empty":    parseEmpty,
		"exists":   parseExists,
		"false":    parseFalse,
		"idirname": parseIDirName,
		"imatch":   parseIMatch,
		"iname":    parseIName,
		"match":    parseMatch,
		"name":     parseName,
		"not":      parseNot,
		"since":    parseSince,
		"size":     parseSize,
		"suffix":   parseSuffix,
		"true":     parseTrue,
		"type":     parseType,
	}
}

// Parse parses one node of a query expression. raw is the decoded JSON
// value of the node: either a bare string naming an argument-less term,
// or an array whose first element names the term.
func Parse(q *query.Query, raw interface{}) (query.Expr, error) {
	switch t := raw.(type) {
	case string:
		p, ok := parsers[t]
		if !ok {
			return nil, query.NewParseError(t, "unknown expression term")
		}
		return p(q, []interface{}{t})
	case []interface{}:
		if len(t) == 0 {
			return nil, query.NewParseError("", "expected a term name as the first element of the array")
		}
		name, ok := t[0].(string)
		if !ok {
			return nil, query.NewParseError("", "expected a term name as the first element of the array")
		}
		p, found := parsers[name]
		if !found {
			return nil, query.NewParseError(name, "unknown expression term")
		}
		return p(q, t)
	default:
		return nil, query.NewParseError("", "expected each term to be either a string or an array")
	}
}

// Compile compiles a whole query expression. The returned query is
// immutable and can be evaluated concurrently.
func Compile(raw interface{}, cs query.CaseSensitivity) (*query.Query, error) {
	q := query.New(cs)
	expr, err := Parse(q, raw)
	if err != nil {
		return nil, err
	}
	q.Expr = expr
	return q, nil
}
