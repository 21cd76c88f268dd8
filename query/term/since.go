package term

import (
	"time"

	"github.com/qianniaoge/watchman/munge"
	"github.com/qianniaoge/watchman/query"
)

// sinceExpr matches entries modified after a fixed point in time. The
// timespec is resolved once at parse time, so every evaluation of the
// same compiled query compares against the same instant.
type sinceExpr struct {
	since time.Time
}

func (x *sinceExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	return e.MTime.After(x.since)
}

func parseSince(q *query.Query, term []interface{}) (query.Expr, error) {
	if len(term) != 2 {
		return nil, query.NewParseError("since", "invalid number of arguments")
	}
	since, err := munge.ToTime(term[1])
	if err != nil {
		return nil, query.NewParseError("since", "%v", err)
	}
	return &sinceExpr{since: since}, nil
}
