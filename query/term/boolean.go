package term

import (
	"github.com/qianniaoge/watchman/query"
)

// booleanExpr is the constant "true"/"false" term.
type booleanExpr struct {
	value bool
}

func (x *booleanExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	return x.value
}

func parseBooleanTerm(which string, term []interface{}, value bool) (query.Expr, error) {
	if len(term) != 1 {
		return nil, query.NewParseError(which, "term takes no arguments")
	}
	return &booleanExpr{value: value}, nil
}

func parseTrue(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseBooleanTerm("true", term, true)
}

func parseFalse(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseBooleanTerm("false", term, false)
}
