package term

import (
	"github.com/qianniaoge/watchman/query"
)

// The logical combinators. They hold already-parsed sub-expressions,
// so evaluation is plain short-circuiting recursion.

type notExpr struct {
	expr query.Expr
}

func (x *notExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	return !x.expr.Evaluate(ctx, e)
}

type allOfExpr struct {
	exprs []query.Expr
}

func (x *allOfExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	for _, expr := range x.exprs {
		if !expr.Evaluate(ctx, e) {
			return false
		}
	}
	return true
}

type anyOfExpr struct {
	exprs []query.Expr
}

func (x *anyOfExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	for _, expr := range x.exprs {
		if expr.Evaluate(ctx, e) {
			return true
		}
	}
	return false
}

func parseNot(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 2 {
		return nil, query.NewParseError("not", "must have exactly one sub-expression")
	}
	expr, err := Parse(q, term[1])
	if err != nil {
		return nil, err
	}
	return &notExpr{expr: expr}, nil
}

func parseSubExprs(which string, q *query.Query, term []interface{}) ([]query.Expr, error) {
	if len(term) < 2 {
		return nil, query.NewParseError(which, "must have at least one sub-expression")
	}
	exprs := make([]query.Expr, 0, len(term)-1)
	for _, raw := range term[1:] {
		expr, err := Parse(q, raw)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func parseAllOf(q *query.Query, term []interface{}) (query.Expr, error) {
	exprs, err := parseSubExprs("allof", q, term)
	if err != nil {
		return nil, err
	}
	return &allOfExpr{exprs: exprs}, nil
}

func parseAnyOf(q *query.Query, term []interface{}) (query.Expr, error) {
	exprs, err := parseSubExprs("anyof", q, term)
	if err != nil {
		return nil, err
	}
	return &anyOfExpr{exprs: exprs}, nil
}
