package term

import (
	"os"

	"github.com/qianniaoge/watchman/munge"
	"github.com/qianniaoge/watchman/query"
)

// typeExpr matches entries by file type letter ("f", "d", "l", ...).
type typeExpr struct {
	matches func(os.FileMode) bool
}

func (x *typeExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	return x.matches(e.Mode)
}

func parseType(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 2 {
		return nil, query.NewParseError("type", "invalid number of arguments")
	}
	letter, ok := term[1].(string)
	if !ok {
		return nil, query.NewParseError("type", "argument 2 must be a string")
	}
	matches, err := munge.ToFileType(letter)
	if err != nil {
		return nil, query.NewParseError("type", "%v", err)
	}
	return &typeExpr{matches: matches}, nil
}
