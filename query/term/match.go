package term

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/qianniaoge/watchman/munge"
	"github.com/qianniaoge/watchman/query"
)

// MatchExpr is the glob sibling of the "name" term: it matches entries
// whose basename (or wholename) satisfies a glob pattern. "imatch"
// compiles a case-folded pattern and folds the candidate per
// evaluation; glob matching itself has no case-insensitive mode.
type MatchExpr struct {
	g             glob.Glob
	caseSensitive query.CaseSensitivity
	wholename     bool
}

func (x *MatchExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	var str string
	if x.wholename {
		str = ctx.WholeName()
	} else {
		str = e.CName
	}
	if x.caseSensitive == query.CaseInSensitive {
		str = strings.ToLower(str)
	}
	return x.g.Match(str)
}

func parseMatchTerm(which string, term []interface{}, cs query.CaseSensitivity) (query.Expr, error) {
	if len(term) < 2 || len(term) > 3 {
		return nil, query.NewParseError(which, "invalid number of arguments")
	}

	wholename := false
	if len(term) == 3 {
		scope, ok := term[2].(string)
		if !ok {
			return nil, query.NewParseError(which, "argument 3 must be a string")
		}
		if scope != "basename" && scope != "wholename" {
			return nil, query.NewParseError(which, "invalid scope '%v'", scope)
		}
		wholename = scope == "wholename"
	}

	pattern, ok := term[1].(string)
	if !ok {
		return nil, query.NewParseError(which, "argument 2 must be a string")
	}
	pattern = munge.NormalizeSeparators(pattern)
	if cs == query.CaseInSensitive {
		pattern = strings.ToLower(pattern)
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, query.NewParseError(which, "invalid pattern: %v", err)
	}

	return &MatchExpr{g: g, caseSensitive: cs, wholename: wholename}, nil
}

func parseMatch(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseMatchTerm("match", term, q.CaseSensitive)
}

func parseIMatch(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseMatchTerm("imatch", term, query.CaseInSensitive)
}
