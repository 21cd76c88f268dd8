package term

import (
	"path"
	"strings"

	"github.com/qianniaoge/watchman/munge"
	"github.com/qianniaoge/watchman/query"
)

// dirNameExpr matches entries that live under a given directory: the
// directory part of the entry's wholename must equal the pattern or
// have it as a path prefix. The pattern is separator-normalized at
// parse time, and "idirname" folds it there too.
type dirNameExpr struct {
	dir           string
	caseSensitive query.CaseSensitivity
}

func (x *dirNameExpr) Evaluate(ctx *query.Context, e query.Entry) bool {
	dir := path.Dir(ctx.WholeName())
	if dir == "." {
		// Entry is directly under the query root.
		dir = ""
	}
	if x.caseSensitive == query.CaseInSensitive {
		dir = strings.ToLower(dir)
	}
	return dir == x.dir || strings.HasPrefix(dir, x.dir+"/")
}

func parseDirNameTerm(which string, term []interface{}, cs query.CaseSensitivity) (query.Expr, error) {
	if len(term) != 2 {
		return nil, query.NewParseError(which, "invalid number of arguments")
	}
	dir, ok := term[1].(string)
	if !ok {
		return nil, query.NewParseError(which, "argument 2 must be a string")
	}
	dir = munge.NormalizeSeparators(dir)
	if cs == query.CaseInSensitive {
		dir = strings.ToLower(dir)
	}
	return &dirNameExpr{dir: dir, caseSensitive: cs}, nil
}

func parseDirName(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseDirNameTerm("dirname", term, q.CaseSensitive)
}

func parseIDirName(q *query.Query, term []interface{}) (query.Expr, error) {
	return parseDirNameTerm("idirname", term, query.CaseInSensitive)
}
