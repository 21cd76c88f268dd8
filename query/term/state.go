package term

import (
	"github.com/qianniaoge/watchman/query"
)

// existsExpr matches entries that were present when visited.
type existsExpr struct{}

func (x *existsExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	return e.Exists
}

// emptyExpr matches zero-length files and directories with no entries.
type emptyExpr struct{}

func (x *emptyExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	return e.Exists && e.Empty
}

func parseExists(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 1 {
		return nil, query.NewParseError("exists", "term takes no arguments")
	}
	return &existsExpr{}, nil
}

func parseEmpty(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 1 {
		return nil, query.NewParseError("empty", "term takes no arguments")
	}
	return &emptyExpr{}, nil
}
